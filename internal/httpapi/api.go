package httpapi

import (
	"log/slog"

	"github.com/gorilla/sessions"

	"quiz-topics/internal/topic"
)

const defaultSessionName = "topic_session"

type API struct {
	service     *topic.Service
	renderer    Renderer
	sessions    sessions.Store
	sessionName string
	logger      *slog.Logger
}

// NewAPI wires the topic form handler. A nil session store disables flash
// messages; a nil logger discards logs.
func NewAPI(service *topic.Service, renderer Renderer, store sessions.Store, sessionName string, logger *slog.Logger) *API {
	if sessionName == "" {
		sessionName = defaultSessionName
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &API{
		service:     service,
		renderer:    renderer,
		sessions:    store,
		sessionName: sessionName,
		logger:      logger,
	}
}
