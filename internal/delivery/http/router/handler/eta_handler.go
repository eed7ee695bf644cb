package handler

import (
	"log/slog"
	"net/http"
	"time"

	"plow/internal/delivery/http/response"
	"plow/internal/usecase"
	"plow/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ETAHandlerParams holds dependencies for ETAHandler, injected by Fx.
type ETAHandlerParams struct {
	fx.In

	ETAUC  usecase.ETAUsecase
	Logger *slog.Logger
}

// ETAHandler holds dependencies for ETA-related handlers
type ETAHandler struct {
	etaUC  usecase.ETAUsecase
	logger *slog.Logger
}

// NewETAHandler is the constructor for ETAHandler
func NewETAHandler(params ETAHandlerParams) *ETAHandler {
	return &ETAHandler{
		etaUC:  params.ETAUC,
		logger: params.Logger,
	}
}

// ETAResponse is the JSON shape of a customer arrival estimate
type ETAResponse struct {
	JobID         uuid.UUID `json:"job_id"`
	Minutes       int       `json:"minutes"`
	WaitLabel     string    `json:"wait_label"`
	ArrivalAt     time.Time `json:"arrival_at"`
	ArrivalClock  string    `json:"arrival_clock"`
	DistanceMiles float64   `json:"distance_miles"`
	JobsAhead     int       `json:"jobs_ahead"`
}

// GetETA handles GET /jobs/:id/eta
func (h *ETAHandler) GetETA(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid job ID")
	}

	estimate, err := h.etaUC.ProjectETA(c.Request().Context(), jobID)
	if err != nil {
		return err
	}

	resp := ETAResponse{
		JobID:         jobID,
		Minutes:       estimate.Minutes,
		WaitLabel:     util.FormatMinutes(float64(estimate.Minutes)),
		ArrivalAt:     estimate.ArrivalAt,
		ArrivalClock:  util.FormatClock(estimate.ArrivalAt),
		DistanceMiles: estimate.DistanceMiles,
		JobsAhead:     estimate.JobsAhead,
	}

	return response.Success(c, http.StatusOK, resp, "ETA projected successfully")
}
