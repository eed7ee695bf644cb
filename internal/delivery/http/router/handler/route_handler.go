// Package handler contains the HTTP handlers for the routing API.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"plow/internal/delivery/http/response"
	"plow/internal/domain/entity"
	"plow/internal/usecase"
	"plow/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouteHandlerParams holds dependencies for RouteHandler, injected by Fx.
type RouteHandlerParams struct {
	fx.In

	RouteUC usecase.RouteUsecase
	Logger  *slog.Logger
}

// RouteHandler holds dependencies for route-related handlers
type RouteHandler struct {
	routeUC usecase.RouteUsecase
	logger  *slog.Logger
}

// NewRouteHandler is the constructor for RouteHandler
func NewRouteHandler(params RouteHandlerParams) *RouteHandler {
	return &RouteHandler{
		routeUC: params.RouteUC,
		logger:  params.Logger,
	}
}

// BuildRouteRequest represents the request body for computing a route
type BuildRouteRequest struct {
	PriorityWeight *float64   `json:"priority_weight,omitempty" validate:"omitempty,min=0,max=1"`
	StartTime      *time.Time `json:"start_time,omitempty"`
}

// ReorderRouteRequest represents the request body for moving a stop
type ReorderRouteRequest struct {
	FromIndex int `json:"from_index" validate:"min=0"`
	ToIndex   int `json:"to_index" validate:"min=0"`
}

// RouteStopResponse is the JSON shape of a single routed stop
type RouteStopResponse struct {
	JobID                     uuid.UUID `json:"job_id"`
	CustomerID                uuid.UUID `json:"customer_id"`
	Order                     int       `json:"order"`
	Status                    string    `json:"status"`
	Priority                  string    `json:"priority"`
	Tier                      string    `json:"tier"`
	EstimatedArrival          time.Time `json:"estimated_arrival"`
	ArrivalClock              string    `json:"arrival_clock"`
	EstimatedDeparture        time.Time `json:"estimated_departure"`
	DistanceFromPreviousMiles float64   `json:"distance_from_previous_miles"`
	TravelMinutesFromPrevious int       `json:"travel_minutes_from_previous"`
}

// RouteStatsResponse is the JSON shape of the route summary
type RouteStatsResponse struct {
	TotalStops          int       `json:"total_stops"`
	CompletedStops      int       `json:"completed_stops"`
	TotalDistanceMiles  float64   `json:"total_distance_miles"`
	TotalDistanceLabel  string    `json:"total_distance_label"`
	TotalTravelMinutes  int       `json:"total_travel_minutes"`
	TotalServiceMinutes int       `json:"total_service_minutes"`
	TotalMinutes        int       `json:"total_minutes"`
	TotalDurationLabel  string    `json:"total_duration_label"`
	EstimatedEnd        time.Time `json:"estimated_end"`
}

// RouteResponse is the JSON shape of a computed route
type RouteResponse struct {
	OperatorID uuid.UUID           `json:"operator_id"`
	Stops      []RouteStopResponse `json:"stops"`
	Stats      RouteStatsResponse  `json:"stats"`
	Path       [][2]float64        `json:"path"` // [lng, lat] positions, operator first.
}

// BuildRoute handles POST /operators/:id/route
func (h *RouteHandler) BuildRoute(c echo.Context) error {
	operatorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid operator ID")
	}

	var req BuildRouteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid route input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.BuildRouteInput{
		PriorityWeight: req.PriorityWeight,
		StartTime:      req.StartTime,
	}

	route, err := h.routeUC.BuildRoute(c.Request().Context(), operatorID, input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toRouteResponse(route), "Route computed successfully")
}

// ReorderRoute handles POST /operators/:id/route/reorder
func (h *RouteHandler) ReorderRoute(c echo.Context) error {
	operatorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid operator ID")
	}

	var req ReorderRouteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reorder input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	route, err := h.routeUC.ReorderRoute(c.Request().Context(), operatorID, req.FromIndex, req.ToIndex)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toRouteResponse(route), "Route reordered successfully")
}

func toRouteResponse(route *entity.Route) RouteResponse {
	stops := make([]RouteStopResponse, 0, len(route.Stops))
	for _, stop := range route.Stops {
		stops = append(stops, RouteStopResponse{
			JobID:                     stop.Job.ID,
			CustomerID:                stop.Job.CustomerID,
			Order:                     stop.Order,
			Status:                    string(stop.Job.Status),
			Priority:                  string(stop.Job.Priority),
			Tier:                      string(stop.Job.Tier),
			EstimatedArrival:          stop.EstimatedArrival,
			ArrivalClock:              util.FormatClock(stop.EstimatedArrival),
			EstimatedDeparture:        stop.EstimatedDeparture,
			DistanceFromPreviousMiles: stop.DistanceFromPreviousMiles,
			TravelMinutesFromPrevious: stop.TravelMinutesFromPrevious,
		})
	}

	path := make([][2]float64, 0, len(route.Path))
	for _, point := range route.Path {
		path = append(path, [2]float64{point[0], point[1]})
	}

	return RouteResponse{
		OperatorID: route.OperatorID,
		Stops:      stops,
		Stats: RouteStatsResponse{
			TotalStops:          route.Stats.TotalStops,
			CompletedStops:      len(route.Completed),
			TotalDistanceMiles:  route.Stats.TotalDistanceMiles,
			TotalDistanceLabel:  util.FormatMiles(route.Stats.TotalDistanceMiles),
			TotalTravelMinutes:  route.Stats.TotalTravelMinutes,
			TotalServiceMinutes: route.Stats.TotalServiceMinutes,
			TotalMinutes:        route.Stats.TotalMinutes,
			TotalDurationLabel:  util.FormatMinutes(float64(route.Stats.TotalMinutes)),
			EstimatedEnd:        route.Stats.EstimatedEnd,
		},
		Path: path,
	}
}
