// Package impl provides the concrete usecase implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"plow/config"
	"plow/internal/domain/entity"
	domainerrors "plow/internal/domain/errors"
	"plow/internal/domain/planning"
	"plow/internal/domain/repository"
	"plow/internal/errors"
	"plow/internal/usecase"
)

// routeService builds and reorders operator routes. Concurrent recomputes
// for the same operator follow latest-wins: each request bumps the
// operator's generation, and a build only becomes the adopted route if no
// newer request started while it ran.
type routeService struct {
	logger       *slog.Logger
	cfg          *config.Config
	jobRepo      repository.JobRepository
	operatorRepo repository.OperatorRepository
	profileRepo  repository.PropertyProfileRepository

	mu          sync.Mutex
	generations map[uuid.UUID]uint64
	lastRoutes  map[uuid.UUID]*entity.Route
}

// NewRouteService creates a new route service.
func NewRouteService(
	logger *slog.Logger,
	cfg *config.Config,
	jobRepo repository.JobRepository,
	operatorRepo repository.OperatorRepository,
	profileRepo repository.PropertyProfileRepository,
) usecase.RouteUsecase {
	return &routeService{
		logger:       logger,
		cfg:          cfg,
		jobRepo:      jobRepo,
		operatorRepo: operatorRepo,
		profileRepo:  profileRepo,
		generations:  make(map[uuid.UUID]uint64),
		lastRoutes:   make(map[uuid.UUID]*entity.Route),
	}
}

// BuildRoute implements usecase.RouteUsecase.
func (s *routeService) BuildRoute(ctx context.Context, operatorID uuid.UUID, input *usecase.BuildRouteInput) (*entity.Route, error) {
	gen := s.beginGeneration(operatorID)

	route, err := s.compute(ctx, operatorID, input, func(operator entity.Operator, jobs []entity.Job, resolver *planning.DurationResolver, opts planning.BuildOptions) (*entity.Route, error) {
		return planning.Build(operator, jobs, resolver, opts)
	})
	if err != nil {
		return nil, err
	}

	if !s.adopt(operatorID, gen, route) {
		s.logger.Debug("route build superseded", slog.String("operator_id", operatorID.String()))

		return nil, domainerrors.ErrRouteSuperseded
	}

	s.logger.Info("route built",
		slog.String("operator_id", operatorID.String()),
		slog.Int("stops", len(route.Stops)),
		slog.Float64("total_miles", route.Stats.TotalDistanceMiles))

	return route, nil
}

// ReorderRoute implements usecase.RouteUsecase. The move applies to the
// pending portion of the operator's most recently adopted route; a route
// is built first if none has been adopted yet.
func (s *routeService) ReorderRoute(ctx context.Context, operatorID uuid.UUID, fromIndex, toIndex int) (*entity.Route, error) {
	s.mu.Lock()
	last := s.lastRoutes[operatorID]
	s.mu.Unlock()

	if last == nil {
		if _, err := s.BuildRoute(ctx, operatorID, nil); err != nil {
			return nil, err
		}
		s.mu.Lock()
		last = s.lastRoutes[operatorID]
		s.mu.Unlock()
		if last == nil {
			return nil, domainerrors.ErrRouteSuperseded
		}
	}

	order := orderIndex(last)
	gen := s.beginGeneration(operatorID)

	route, err := s.compute(ctx, operatorID, nil, func(operator entity.Operator, jobs []entity.Job, resolver *planning.DurationResolver, opts planning.BuildOptions) (*entity.Route, error) {
		sortByAdoptedOrder(jobs, order)

		return planning.Reorder(operator, jobs, fromIndex, toIndex, resolver, opts.StartTime)
	})
	if err != nil {
		return nil, err
	}

	if !s.adopt(operatorID, gen, route) {
		return nil, domainerrors.ErrRouteSuperseded
	}

	s.logger.Info("route reordered",
		slog.String("operator_id", operatorID.String()),
		slog.Int("from", fromIndex),
		slog.Int("to", toIndex))

	return route, nil
}

type planFunc func(entity.Operator, []entity.Job, *planning.DurationResolver, planning.BuildOptions) (*entity.Route, error)

func (s *routeService) compute(ctx context.Context, operatorID uuid.UUID, input *usecase.BuildRouteInput, plan planFunc) (*entity.Route, error) {
	operator, err := s.operatorRepo.FindByID(ctx, operatorID)
	if err != nil {
		if errors.Is(err, repository.ErrOperatorNotFound) {
			return nil, domainerrors.ErrOperatorNotFound
		}

		return nil, errors.Wrap(err, "find operator")
	}

	jobs, err := s.jobRepo.FindByOperator(ctx, operatorID)
	if err != nil {
		return nil, errors.Wrap(err, "find operator jobs")
	}

	resolver, err := s.resolverFor(ctx, jobs)
	if err != nil {
		return nil, err
	}

	opts := planning.BuildOptions{
		PriorityWeight: s.priorityWeight(input),
		StartTime:      startTime(input),
	}

	return plan(*operator, jobs, resolver, opts)
}

func (s *routeService) resolverFor(ctx context.Context, jobs []entity.Job) (*planning.DurationResolver, error) {
	customerIDs := make([]uuid.UUID, 0, len(jobs))
	seen := make(map[uuid.UUID]struct{}, len(jobs))
	for _, job := range jobs {
		if _, ok := seen[job.CustomerID]; ok {
			continue
		}
		seen[job.CustomerID] = struct{}{}
		customerIDs = append(customerIDs, job.CustomerID)
	}

	profiles, err := s.profileRepo.FindByCustomerIDs(ctx, customerIDs)
	if err != nil {
		return nil, errors.Wrap(err, "find property profiles")
	}

	return planning.NewDurationResolver(profiles), nil
}

func (s *routeService) priorityWeight(input *usecase.BuildRouteInput) float64 {
	if input != nil && input.PriorityWeight != nil {
		return *input.PriorityWeight
	}
	if s.cfg != nil && s.cfg.Planner != nil {
		return s.cfg.Planner.PriorityWeight
	}

	return planning.DefaultPriorityWeight
}

func (s *routeService) beginGeneration(operatorID uuid.UUID) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[operatorID]++

	return s.generations[operatorID]
}

// adopt records the route as the operator's current one unless a newer
// request started in the meantime.
func (s *routeService) adopt(operatorID uuid.UUID, gen uint64, route *entity.Route) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generations[operatorID] != gen {
		return false
	}
	s.lastRoutes[operatorID] = route

	return true
}

// orderIndex maps job IDs to their position in the adopted route's stop
// sequence so a fresh database read can be replayed in the same order.
func orderIndex(route *entity.Route) map[uuid.UUID]int {
	order := make(map[uuid.UUID]int, len(route.Stops))
	for i, stop := range route.Stops {
		order[stop.Job.ID] = i
	}

	return order
}

func sortByAdoptedOrder(jobs []entity.Job, order map[uuid.UUID]int) {
	known := func(id uuid.UUID) int {
		if pos, ok := order[id]; ok {
			return pos
		}

		return len(order)
	}
	for i := 1; i < len(jobs); i++ {
		for j := i; j > 0 && known(jobs[j].ID) < known(jobs[j-1].ID); j-- {
			jobs[j], jobs[j-1] = jobs[j-1], jobs[j]
		}
	}
}

func startTime(input *usecase.BuildRouteInput) time.Time {
	if input != nil && input.StartTime != nil {
		return *input.StartTime
	}

	return time.Now()
}
