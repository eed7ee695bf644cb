package handler

import (
	"log/slog"
	"net/http"
	"time"

	"plow/internal/delivery/http/response"
	"plow/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DispatchHandlerParams holds dependencies for DispatchHandler, injected by Fx.
type DispatchHandlerParams struct {
	fx.In

	DispatchUC usecase.DispatchUsecase
	Logger     *slog.Logger
}

// DispatchHandler holds dependencies for dispatch-related handlers
type DispatchHandler struct {
	dispatchUC usecase.DispatchUsecase
	logger     *slog.Logger
}

// NewDispatchHandler is the constructor for DispatchHandler
func NewDispatchHandler(params DispatchHandlerParams) *DispatchHandler {
	return &DispatchHandler{
		dispatchUC: params.DispatchUC,
		logger:     params.Logger,
	}
}

// DispatchStatusResponse is the JSON shape of the trigger evaluation
type DispatchStatusResponse struct {
	ThresholdInches float64    `json:"threshold_inches"`
	CurrentInches   float64    `json:"current_inches"`
	IsTriggered     bool       `json:"is_triggered"`
	NextDispatchAt  *time.Time `json:"next_dispatch_at,omitempty"`
	Message         string     `json:"message"`
}

// GetStatus handles GET /dispatch/status
func (h *DispatchHandler) GetStatus(c echo.Context) error {
	status, err := h.dispatchUC.Evaluate(c.Request().Context())
	if err != nil {
		return err
	}

	resp := DispatchStatusResponse{
		ThresholdInches: status.ThresholdInches,
		CurrentInches:   status.CurrentInches,
		IsTriggered:     status.IsTriggered,
		NextDispatchAt:  status.NextDispatchAt,
		Message:         status.Message,
	}

	return response.Success(c, http.StatusOK, resp, "Dispatch status evaluated successfully")
}
