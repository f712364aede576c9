package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jezdibolt/backend-go/internal/handler/http/response"
	"github.com/jezdibolt/backend-go/internal/pkg/events"
)

type EventsHandler interface {
	Subscribe(w http.ResponseWriter, r *http.Request)
}

type EventsHandlerImpl struct {
	hub *events.Hub
}

func NewEventsHandler(hub *events.Hub) EventsHandler {
	return &EventsHandlerImpl{hub: hub}
}

// Subscribe implements EventsHandler. Streams hub events to the client
// as server-sent events until the client disconnects.
func (h *EventsHandlerImpl) Subscribe(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ch, cleanup := h.hub.Subscribe()
	defer cleanup()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, open := <-ch:
			if !open {
				return
			}
			payload, err := json.Marshal(event)
			if err != nil {
				slog.Error("Event encode error", "error", err)
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, payload)
			flusher.Flush()
		}
	}
}
