// Command seed populates a development database with a demo fleet:
// pricing tiers, two operators, and a day of jobs scattered around the
// Truckee service area. The generator is seeded so repeated runs
// produce the same dataset.
package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"plow/config"
	"plow/internal/infra/persistence/model"

	"github.com/google/uuid"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/gorm"
)

const (
	baseLat = 39.3280
	baseLng = -120.1833

	jobCount = 12
	randSeed = 42
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.New()
	if err != nil {
		logger.Error("load config failed", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		logger.Error("connect postgres failed", slog.Any("error", err))
		os.Exit(1)
	}

	if err := seed(db); err != nil {
		logger.Error("seed failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("seed complete", slog.Int("jobs", jobCount))
}

func seed(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.OperatorModel{},
		&model.PricingTierModel{},
		&model.PropertyProfileModel{},
		&model.JobModel{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if err := seedPricingTiers(db); err != nil {
		return err
	}

	operators, err := seedOperators(db)
	if err != nil {
		return err
	}

	return seedJobs(db, operators)
}

func seedPricingTiers(db *gorm.DB) error {
	tiers := []model.PricingTierModel{
		{ID: "economy", Name: "Economy", Description: "Cleared within the day", PriceUSD: 45, ETAModifier: 2.0},
		{ID: "standard", Name: "Standard", Description: "Normal queue position", PriceUSD: 75, ETAModifier: 1.0},
		{ID: "priority", Name: "Priority", Description: "Jump the queue", PriceUSD: 150, ETAModifier: 0.3},
	}
	for i := range tiers {
		if err := db.Save(&tiers[i]).Error; err != nil {
			return fmt.Errorf("seed pricing tier %s: %w", tiers[i].ID, err)
		}
	}

	return nil
}

func seedOperators(db *gorm.DB) ([]model.OperatorModel, error) {
	operators := []model.OperatorModel{
		{
			ID:          uuid.MustParse("0b6e8f2e-8f44-4f4e-9a51-000000000001"),
			Name:        "Mike Thompson",
			Phone:       "+1-530-555-0101",
			VehicleName: "Plow Truck 1",
			Status:      "available",
			Latitude:    baseLat,
			Longitude:   baseLng,
		},
		{
			ID:          uuid.MustParse("0b6e8f2e-8f44-4f4e-9a51-000000000002"),
			Name:        "Sarah Chen",
			Phone:       "+1-530-555-0102",
			VehicleName: "Plow Truck 2",
			Status:      "available",
			Latitude:    baseLat + 0.02,
			Longitude:   baseLng - 0.03,
		},
	}
	for i := range operators {
		if err := db.Save(&operators[i]).Error; err != nil {
			return nil, fmt.Errorf("seed operator %s: %w", operators[i].Name, err)
		}
	}

	return operators, nil
}

func seedJobs(db *gorm.DB, operators []model.OperatorModel) error {
	rng := rand.New(rand.NewSource(randSeed))

	priorities := []string{"normal", "normal", "normal", "high", "urgent"}
	tiers := []string{"economy", "standard", "standard", "priority"}
	today := time.Now().Truncate(24 * time.Hour)

	for i := 0; i < jobCount; i++ {
		operator := operators[i%len(operators)]
		customerID := uuid.New()

		// Scatter within roughly five miles of the base yard.
		lat := baseLat + (rng.Float64()-0.5)*0.12
		lng := baseLng + (rng.Float64()-0.5)*0.15

		job := model.JobModel{
			ID:                       uuid.New(),
			CustomerID:               customerID,
			OperatorID:               &operator.ID,
			Status:                   "pending",
			Latitude:                 lat,
			Longitude:                lng,
			ScheduledDate:            today,
			Priority:                 priorities[rng.Intn(len(priorities))],
			Tier:                     tiers[rng.Intn(len(tiers))],
			EstimatedDurationMinutes: 10 + rng.Intn(25),
			PriceUSD:                 45 + float64(rng.Intn(10))*10,
		}
		if err := db.Create(&job).Error; err != nil {
			return fmt.Errorf("seed job %d: %w", i, err)
		}

		// Roughly half the customers have been measured on-site.
		if rng.Intn(2) == 0 {
			profile := model.PropertyProfileModel{
				CustomerID:            customerID,
				DrivewayType:          "paved",
				DrivewaySquareFeet:    600 + rng.Intn(2400),
				IsSloped:              rng.Intn(3) == 0,
				DifficultyRating:      1 + rng.Intn(5),
				EstimatedClearMinutes: 10 + rng.Intn(35),
			}
			if err := db.Create(&profile).Error; err != nil {
				return fmt.Errorf("seed property profile %d: %w", i, err)
			}
		}
	}

	return nil
}
