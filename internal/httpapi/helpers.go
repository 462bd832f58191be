package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
)

func parseBoolParam(r *http.Request, key string) bool {
	value := strings.ToLower(strings.TrimSpace(r.URL.Query().Get(key)))
	return value == "1" || value == "true" || value == "yes"
}

// render executes the template into a buffer first so a template failure
// can still produce a clean 500.
func (a *API) render(w http.ResponseWriter, r *http.Request, statusCode int, view FormView) {
	var buf bytes.Buffer
	if err := a.renderer.Render(&buf, view); err != nil {
		a.logger.ErrorContext(r.Context(), "template render failed", slog.Any("error", err))
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if r.Method != http.MethodHead {
		_, _ = buf.WriteTo(w)
	}
}

// session returns the flash session, or nil when sessions are disabled. A
// cookie that fails to decode yields a fresh session.
func (a *API) session(r *http.Request) *sessions.Session {
	if a.sessions == nil {
		return nil
	}
	session, err := a.sessions.Get(r, a.sessionName)
	if err != nil {
		a.logger.DebugContext(r.Context(), "session decode failed, starting fresh", slog.Any("error", err))
	}
	return session
}

func (a *API) addFlash(w http.ResponseWriter, r *http.Request, message string) {
	session := a.session(r)
	if session == nil {
		return
	}
	session.AddFlash(message)
	if err := session.Save(r, w); err != nil {
		a.logger.WarnContext(r.Context(), "session save failed", slog.Any("error", err))
	}
}

func (a *API) popFlashes(w http.ResponseWriter, r *http.Request) []string {
	session := a.session(r)
	if session == nil {
		return nil
	}

	flashes := session.Flashes()
	if len(flashes) == 0 {
		return nil
	}
	if err := session.Save(r, w); err != nil {
		a.logger.WarnContext(r.Context(), "session save failed", slog.Any("error", err))
	}

	messages := make([]string, 0, len(flashes))
	for _, flash := range flashes {
		messages = append(messages, fmt.Sprint(flash))
	}
	return messages
}

func writeMethodNotAllowed(w http.ResponseWriter, allowed string) {
	w.Header().Set("Allow", allowed)
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}
