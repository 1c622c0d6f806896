package dashboard

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/bornholm/burnin/internal/poll"
	"github.com/bornholm/burnin/internal/slogx"
)

type healthStatus struct {
	Status    string      `json:"status"`
	Poller    poll.Status `json:"poller"`
	UpdatedAt *time.Time  `json:"updatedAt,omitempty"`
	Error     string      `json:"error,omitempty"`
}

// getHealthCheck reports the dashboard healthy while the poller runs and
// its last complete read of the repository is recent enough.
func (h *Handler) getHealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status := healthStatus{
		Status: "healthy",
		Poller: h.poller.Status(),
	}

	statusCode := http.StatusOK

	updatedAt := h.collections.UpdatedAt()
	if !updatedAt.IsZero() {
		utc := updatedAt.UTC()
		status.UpdatedAt = &utc
	}

	switch {
	case status.Poller != poll.StatusPolling:
		status.Status = "unhealthy"
		status.Error = "poller is idle"
		statusCode = http.StatusServiceUnavailable

	case updatedAt.IsZero():
		status.Status = "unhealthy"
		status.Error = "no poll result yet"
		statusCode = http.StatusServiceUnavailable

	case h.now().Sub(updatedAt) > h.healthMaxAge:
		status.Status = "unhealthy"
		status.Error = "poll results are stale"
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(status); err != nil {
		h.logger.ErrorContext(ctx, "could not encode health status", slogx.Error(err))
	}
}
