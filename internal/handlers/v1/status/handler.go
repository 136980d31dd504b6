package status

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/carson-networks/budget-projector/internal/logging"
)

const pingTimeout = 2 * time.Second

// pinger reports whether a dependency is reachable. *storage.Storage implements it.
type pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db pinger
}

// NewHandler creates the status handler. A nil db reports liveness only.
func NewHandler(db pinger) Handler {
	return Handler{db: db}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(req.Context(), pingTimeout)
		defer cancel()

		stopTimer := logData.AddTiming("pingMs")
		err := h.db.Ping(ctx)
		stopTimer()
		if err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return err
		}
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
