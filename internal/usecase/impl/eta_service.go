package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"plow/internal/domain/entity"
	domainerrors "plow/internal/domain/errors"
	"plow/internal/domain/planning"
	"plow/internal/domain/repository"
	"plow/internal/errors"
	"plow/internal/usecase"
)

// etaService projects customer arrival estimates from the assigned
// operator's position, the queue depth ahead of the job, and the job's
// pricing tier modifier.
type etaService struct {
	logger       *slog.Logger
	jobRepo      repository.JobRepository
	operatorRepo repository.OperatorRepository
	tierRepo     repository.PricingTierRepository
}

// NewETAService creates a new ETA service.
func NewETAService(
	logger *slog.Logger,
	jobRepo repository.JobRepository,
	operatorRepo repository.OperatorRepository,
	tierRepo repository.PricingTierRepository,
) usecase.ETAUsecase {
	return &etaService{
		logger:       logger,
		jobRepo:      jobRepo,
		operatorRepo: operatorRepo,
		tierRepo:     tierRepo,
	}
}

// ProjectETA implements usecase.ETAUsecase.
func (s *etaService) ProjectETA(ctx context.Context, jobID uuid.UUID) (*entity.ETAEstimate, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, domainerrors.ErrJobNotFound
		}

		return nil, errors.Wrap(err, "find job")
	}

	if job.OperatorID == nil {
		return nil, domainerrors.ErrJobUnassigned
	}

	operator, err := s.operatorRepo.FindByID(ctx, *job.OperatorID)
	if err != nil {
		if errors.Is(err, repository.ErrOperatorNotFound) {
			return nil, domainerrors.ErrOperatorNotFound
		}

		return nil, errors.Wrap(err, "find operator")
	}

	jobsAhead, err := s.countJobsAhead(ctx, *job.OperatorID, jobID)
	if err != nil {
		return nil, err
	}

	tier, err := s.tierRepo.FindByID(ctx, job.Tier)
	if err != nil {
		if errors.Is(err, repository.ErrPricingTierNotFound) {
			return nil, domainerrors.ErrPricingTierNotFound
		}

		return nil, errors.Wrap(err, "find pricing tier")
	}

	estimate, err := planning.ProjectETA(operator.CurrentLocation, job.Coordinate, jobsAhead, tier.ETAModifier, time.Now())
	if err != nil {
		return nil, err
	}

	s.logger.Debug("eta projected",
		slog.String("job_id", jobID.String()),
		slog.Int("jobs_ahead", jobsAhead),
		slog.Int("minutes", estimate.Minutes))

	return estimate, nil
}

// countJobsAhead counts the operator's active jobs that will be served
// before this one. Jobs already being worked or driven to always come
// first.
func (s *etaService) countJobsAhead(ctx context.Context, operatorID, jobID uuid.UUID) (int, error) {
	jobs, err := s.jobRepo.FindByOperator(ctx, operatorID)
	if err != nil {
		return 0, errors.Wrap(err, "find operator jobs")
	}

	ahead := 0
	for _, other := range jobs {
		if other.ID == jobID {
			continue
		}
		if other.Status == entity.JobStatusInProgress || other.Status == entity.JobStatusEnRoute {
			ahead++
		}
	}

	return ahead, nil
}
