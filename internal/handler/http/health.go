package http

import (
	"net/http"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/clock"
)

type HealthHandler interface {
	Health(w http.ResponseWriter, r *http.Request)
}

type healthHandlerImpl struct {
	clock clock.Clock
}

func NewHealthHandler(clk clock.Clock) HealthHandler {
	return &healthHandlerImpl{clock: clk}
}

// Health handles GET /api/health
func (h *healthHandlerImpl) Health(w http.ResponseWriter, r *http.Request) {
	response.Success(w, response.Body{
		"status":    "OK",
		"message":   "Server is running",
		"timestamp": h.clock.Now().UTC().Format(time.RFC3339),
	})
}
