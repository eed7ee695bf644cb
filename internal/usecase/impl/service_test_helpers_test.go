package impl

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"plow/internal/domain/entity"
	"plow/internal/domain/repository"
	"plow/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeJobRepo struct {
	findByID       func(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	findByOperator func(ctx context.Context, operatorID uuid.UUID) ([]entity.Job, error)
}

func (f *fakeJobRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	return f.findByID(ctx, id)
}

func (f *fakeJobRepo) FindByOperator(ctx context.Context, operatorID uuid.UUID) ([]entity.Job, error) {
	return f.findByOperator(ctx, operatorID)
}

type fakeOperatorRepo struct {
	findByID func(ctx context.Context, id uuid.UUID) (*entity.Operator, error)
	findAll  func(ctx context.Context) ([]entity.Operator, error)
}

func (f *fakeOperatorRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Operator, error) {
	return f.findByID(ctx, id)
}

func (f *fakeOperatorRepo) FindAll(ctx context.Context) ([]entity.Operator, error) {
	return f.findAll(ctx)
}

type fakeProfileRepo struct {
	findByCustomerIDs func(ctx context.Context, customerIDs []uuid.UUID) ([]entity.PropertyProfile, error)
}

func (f *fakeProfileRepo) FindByCustomerIDs(ctx context.Context, customerIDs []uuid.UUID) ([]entity.PropertyProfile, error) {
	return f.findByCustomerIDs(ctx, customerIDs)
}

type fakeTierRepo struct {
	findByID func(ctx context.Context, id entity.TierID) (*entity.PricingTier, error)
	findAll  func(ctx context.Context) ([]entity.PricingTier, error)
}

func (f *fakeTierRepo) FindByID(ctx context.Context, id entity.TierID) (*entity.PricingTier, error) {
	return f.findByID(ctx, id)
}

func (f *fakeTierRepo) FindAll(ctx context.Context) ([]entity.PricingTier, error) {
	return f.findAll(ctx)
}

type fakeWeatherService struct {
	current func(ctx context.Context) (*entity.WeatherSample, error)
}

func (f *fakeWeatherService) Current(ctx context.Context) (*entity.WeatherSample, error) {
	return f.current(ctx)
}

type fakePublisher struct {
	published []*service.DispatchEvent
	publish   func(ctx context.Context, event *service.DispatchEvent) error
}

func (f *fakePublisher) PublishDispatchEvent(ctx context.Context, event *service.DispatchEvent) error {
	f.published = append(f.published, event)
	if f.publish != nil {
		return f.publish(ctx, event)
	}

	return nil
}

func (f *fakePublisher) Close() error { return nil }

var (
	_ repository.JobRepository             = (*fakeJobRepo)(nil)
	_ repository.OperatorRepository        = (*fakeOperatorRepo)(nil)
	_ repository.PropertyProfileRepository = (*fakeProfileRepo)(nil)
	_ repository.PricingTierRepository     = (*fakeTierRepo)(nil)
	_ service.WeatherService               = (*fakeWeatherService)(nil)
	_ service.EventPublisher               = (*fakePublisher)(nil)
)
