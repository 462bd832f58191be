package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"

	"quiz-topics/internal/topic"
	"quiz-topics/pkg/ctxutil"
)

const (
	// MsgSaveFailed is the only storage failure detail users ever see.
	MsgSaveFailed = "save failed, please check the data format"
	msgBadForm    = "the submitted form could not be read"
	successURL    = "/?success=true"
)

// HandleIndex serves the topic form: GET shows it, POST validates and
// stores a submission, redirecting on success and re-rendering otherwise.
func (a *API) HandleIndex(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		a.showForm(w, r)
	case http.MethodPost:
		a.submitForm(w, r)
	default:
		writeMethodNotAllowed(w, http.MethodGet+", "+http.MethodPost)
	}
}

func (a *API) showForm(w http.ResponseWriter, r *http.Request) {
	view := newFormView(nil, nil)
	view.Success = parseBoolParam(r, "success")
	view.Flashes = a.popFlashes(w, r)
	a.render(w, r, http.StatusOK, view)
}

func (a *API) submitForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		a.logger.WarnContext(ctx, "topic.form unreadable",
			slog.Any("error", err),
			slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
		)
		view := newFormView(nil, nil)
		view.FormErrors = []string{msgBadForm}
		a.render(w, r, http.StatusBadRequest, view)
		return
	}

	result := topic.Validate(r.PostForm)
	if !result.Valid() {
		a.render(w, r, http.StatusOK, newFormView(result.Values, result.Errors))
		return
	}

	created, err := a.service.Create(ctx, result.Submission)
	if err != nil {
		a.logger.ErrorContext(ctx, "topic.create failed",
			slog.String("reason", string(topic.KindOf(err))),
			slog.Any("error", err),
			slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
		)
		view := newFormView(result.Values, nil)
		view.FormErrors = []string{MsgSaveFailed}
		a.render(w, r, http.StatusOK, view)
		return
	}

	a.logger.InfoContext(ctx, "topic.created",
		slog.Int64("topic_id", created.ID),
		slog.String("topic_type", created.TopicType),
		slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
	)
	a.addFlash(w, r, fmt.Sprintf("topic #%d saved", created.ID))
	http.Redirect(w, r, successURL, http.StatusFound)
}
