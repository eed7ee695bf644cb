package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plow/internal/domain/entity"
	domainerrors "plow/internal/domain/errors"
	"plow/internal/domain/repository"
	"plow/internal/usecase"
)

func newTestETAService(job *entity.Job, operator *entity.Operator, queue []entity.Job, tier *entity.PricingTier) usecase.ETAUsecase {
	jobRepo := &fakeJobRepo{
		findByID: func(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
			if job == nil || id != job.ID {
				return nil, repository.ErrJobNotFound
			}
			j := *job

			return &j, nil
		},
		findByOperator: func(ctx context.Context, operatorID uuid.UUID) ([]entity.Job, error) {
			return queue, nil
		},
	}
	operatorRepo := &fakeOperatorRepo{
		findByID: func(ctx context.Context, id uuid.UUID) (*entity.Operator, error) {
			if operator == nil || id != operator.ID {
				return nil, repository.ErrOperatorNotFound
			}
			op := *operator

			return &op, nil
		},
	}
	tierRepo := &fakeTierRepo{
		findByID: func(ctx context.Context, id entity.TierID) (*entity.PricingTier, error) {
			if tier == nil || id != tier.ID {
				return nil, repository.ErrPricingTierNotFound
			}
			tr := *tier

			return &tr, nil
		},
	}

	return NewETAService(newDiscardLogger(), jobRepo, operatorRepo, tierRepo)
}

func TestETAService_ProjectETA(t *testing.T) {
	operator := routeTestOperator()
	job := routeTestJob(entity.JobStatusPending, 39.34)
	job.OperatorID = &operator.ID

	ahead := routeTestJob(entity.JobStatusInProgress, 39.35)
	ahead.OperatorID = &operator.ID
	pendingPeer := routeTestJob(entity.JobStatusPending, 39.36)
	pendingPeer.OperatorID = &operator.ID

	tier := &entity.PricingTier{ID: entity.TierStandard, Name: "Standard", ETAModifier: 1.0}
	svc := newTestETAService(&job, operator, []entity.Job{job, ahead, pendingPeer}, tier)

	estimate, err := svc.ProjectETA(context.Background(), job.ID)
	require.NoError(t, err)
	// Only the in-progress peer counts toward the queue; pending peers
	// have no claim on the operator's immediate time.
	assert.Equal(t, 1, estimate.JobsAhead)
	assert.Greater(t, estimate.Minutes, 0)
	assert.Greater(t, estimate.DistanceMiles, 0.0)
}

func TestETAService_ProjectETA_PriorityTierFaster(t *testing.T) {
	operator := routeTestOperator()
	job := routeTestJob(entity.JobStatusPending, 39.40)
	job.OperatorID = &operator.ID

	standard := &entity.PricingTier{ID: entity.TierStandard, ETAModifier: 1.0}
	svcStandard := newTestETAService(&job, operator, []entity.Job{job}, standard)
	standardEst, err := svcStandard.ProjectETA(context.Background(), job.ID)
	require.NoError(t, err)

	priorityJob := job
	priorityJob.Tier = entity.TierPriority
	priority := &entity.PricingTier{ID: entity.TierPriority, ETAModifier: 0.3}
	svcPriority := newTestETAService(&priorityJob, operator, []entity.Job{priorityJob}, priority)
	priorityEst, err := svcPriority.ProjectETA(context.Background(), priorityJob.ID)
	require.NoError(t, err)

	assert.Less(t, priorityEst.Minutes, standardEst.Minutes)
}

func TestETAService_ProjectETA_JobNotFound(t *testing.T) {
	svc := newTestETAService(nil, nil, nil, nil)

	_, err := svc.ProjectETA(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrJobNotFound)
}

func TestETAService_ProjectETA_Unassigned(t *testing.T) {
	job := routeTestJob(entity.JobStatusPending, 39.34)
	svc := newTestETAService(&job, nil, nil, nil)

	_, err := svc.ProjectETA(context.Background(), job.ID)
	assert.ErrorIs(t, err, domainerrors.ErrJobUnassigned)
}

func TestETAService_ProjectETA_TierNotFound(t *testing.T) {
	operator := routeTestOperator()
	job := routeTestJob(entity.JobStatusPending, 39.34)
	job.OperatorID = &operator.ID
	svc := newTestETAService(&job, operator, []entity.Job{job}, nil)

	_, err := svc.ProjectETA(context.Background(), job.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPricingTierNotFound)
}
