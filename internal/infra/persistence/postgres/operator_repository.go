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

// operatorRepository implements the repository.OperatorRepository interface.
type operatorRepository struct {
	db *gorm.DB
}

// NewOperatorRepository is the constructor for operatorRepository.
func NewOperatorRepository(db *gorm.DB) repository.OperatorRepository {
	return &operatorRepository{db: db}
}

// FindByID retrieves an operator by its unique ID.
func (repo *operatorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Operator, error) {
	var operatorM model.OperatorModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&operatorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOperatorNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find operator by ID")
	}

	operator := toOperatorDomain(&operatorM)

	return &operator, nil
}

// FindAll retrieves every operator in the fleet.
func (repo *operatorRepository) FindAll(ctx context.Context) ([]entity.Operator, error) {
	var operatorModels []model.OperatorModel
	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&operatorModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find operators")
	}

	operators := make([]entity.Operator, 0, len(operatorModels))
	for i := range operatorModels {
		operators = append(operators, toOperatorDomain(&operatorModels[i]))
	}

	return operators, nil
}

func toOperatorDomain(data *model.OperatorModel) entity.Operator {
	return entity.Operator{
		ID:              data.ID,
		Name:            data.Name,
		Phone:           data.Phone,
		VehicleName:     data.VehicleName,
		Status:          entity.OperatorStatus(data.Status),
		CurrentLocation: entity.Coordinate{Lat: data.Latitude, Lng: data.Longitude},
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
