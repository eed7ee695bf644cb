package postgres

import (
	"context"

	"plow/internal/domain/entity"
	domainerrors "plow/internal/domain/errors"
	"plow/internal/domain/repository"
	"plow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// propertyProfileRepository implements the repository.PropertyProfileRepository interface.
type propertyProfileRepository struct {
	db *gorm.DB
}

// NewPropertyProfileRepository is the constructor for propertyProfileRepository.
func NewPropertyProfileRepository(db *gorm.DB) repository.PropertyProfileRepository {
	return &propertyProfileRepository{db: db}
}

// FindByCustomerIDs retrieves the profiles for the given customers.
// Customers without a profile are simply absent from the result.
func (repo *propertyProfileRepository) FindByCustomerIDs(ctx context.Context, customerIDs []uuid.UUID) ([]entity.PropertyProfile, error) {
	if len(customerIDs) == 0 {
		return nil, nil
	}

	var profileModels []model.PropertyProfileModel
	if err := repo.db.WithContext(ctx).
		Where("customer_id IN ?", customerIDs).
		Find(&profileModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find property profiles")
	}

	profiles := make([]entity.PropertyProfile, 0, len(profileModels))
	for i := range profileModels {
		profiles = append(profiles, toPropertyProfileDomain(&profileModels[i]))
	}

	return profiles, nil
}

func toPropertyProfileDomain(data *model.PropertyProfileModel) entity.PropertyProfile {
	return entity.PropertyProfile{
		CustomerID:            data.CustomerID,
		DrivewayType:          data.DrivewayType,
		DrivewaySquareFeet:    data.DrivewaySquareFeet,
		IsSloped:              data.IsSloped,
		DifficultyRating:      data.DifficultyRating,
		EstimatedClearMinutes: data.EstimatedClearMinutes,
		Notes:                 data.Notes,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}
