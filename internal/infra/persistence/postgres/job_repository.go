package postgres

import (
	"context"

	"plow/internal/domain/entity"
	domainerrors "plow/internal/domain/errors"
	"plow/internal/domain/repository"
	"plow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// jobRepository implements the repository.JobRepository interface.
type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository is the constructor for jobRepository.
func NewJobRepository(db *gorm.DB) repository.JobRepository {
	return &jobRepository{db: db}
}

// FindByID retrieves a job by its unique ID.
func (repo *jobRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	var jobM model.JobModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&jobM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrJobNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find job by ID")
	}

	job := toJobDomain(&jobM)

	return &job, nil
}

// FindByOperator retrieves all jobs assigned to an operator, oldest
// first so tie-breaking by creation order is stable across reads.
func (repo *jobRepository) FindByOperator(ctx context.Context, operatorID uuid.UUID) ([]entity.Job, error) {
	var jobModels []model.JobModel
	if err := repo.db.WithContext(ctx).
		Where("operator_id = ?", operatorID).
		Order("created_at ASC").
		Find(&jobModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find jobs by operator")
	}

	jobs := make([]entity.Job, 0, len(jobModels))
	for i := range jobModels {
		jobs = append(jobs, toJobDomain(&jobModels[i]))
	}

	return jobs, nil
}

func toJobDomain(data *model.JobModel) entity.Job {
	return entity.Job{
		ID:                       data.ID,
		CustomerID:               data.CustomerID,
		OperatorID:               data.OperatorID,
		Status:                   entity.JobStatus(data.Status),
		Coordinate:               entity.Coordinate{Lat: data.Latitude, Lng: data.Longitude},
		ScheduledDate:            data.ScheduledDate,
		Priority:                 entity.Priority(data.Priority),
		Tier:                     entity.TierID(data.Tier),
		EstimatedDurationMinutes: data.EstimatedDurationMinutes,
		ActualDurationMinutes:    data.ActualDurationMinutes,
		ActualStartTime:          data.ActualStartTime,
		Notes:                    data.Notes,
		PriceUSD:                 data.PriceUSD,
		CreatedAt:                data.CreatedAt,
		UpdatedAt:                data.UpdatedAt,
	}
}
