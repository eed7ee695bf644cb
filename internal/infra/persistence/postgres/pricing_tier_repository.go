package postgres

import (
	"context"

	"plow/internal/domain/entity"
	domainerrors "plow/internal/domain/errors"
	"plow/internal/domain/repository"
	"plow/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pricingTierRepository implements the repository.PricingTierRepository interface.
type pricingTierRepository struct {
	db *gorm.DB
}

// NewPricingTierRepository is the constructor for pricingTierRepository.
func NewPricingTierRepository(db *gorm.DB) repository.PricingTierRepository {
	return &pricingTierRepository{db: db}
}

// FindByID retrieves a pricing tier by its identifier.
func (repo *pricingTierRepository) FindByID(ctx context.Context, id entity.TierID) (*entity.PricingTier, error) {
	var tierM model.PricingTierModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", string(id)).
		First(&tierM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPricingTierNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find pricing tier by ID")
	}

	tier := toPricingTierDomain(&tierM)

	return &tier, nil
}

// FindAll retrieves all pricing tiers.
func (repo *pricingTierRepository) FindAll(ctx context.Context) ([]entity.PricingTier, error) {
	var tierModels []model.PricingTierModel
	if err := repo.db.WithContext(ctx).
		Order("price_usd ASC").
		Find(&tierModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find pricing tiers")
	}

	tiers := make([]entity.PricingTier, 0, len(tierModels))
	for i := range tierModels {
		tiers = append(tiers, toPricingTierDomain(&tierModels[i]))
	}

	return tiers, nil
}

func toPricingTierDomain(data *model.PricingTierModel) entity.PricingTier {
	return entity.PricingTier{
		ID:          entity.TierID(data.ID),
		Name:        data.Name,
		Description: data.Description,
		PriceUSD:    data.PriceUSD,
		ETAModifier: data.ETAModifier,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
