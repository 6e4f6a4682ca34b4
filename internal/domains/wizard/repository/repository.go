package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"clearance/config"
	"clearance/infras/otel"
	"clearance/internal/domains/wizard/model"
	"clearance/shared"
	"clearance/shared/cache"
	"clearance/shared/constant"

	"github.com/rs/zerolog/log"
)

const keyPrefix = "wizard:session"

// Wizard keeps open wizard sessions in Redis. A session expires when it has
// not been saved for the configured TTL.
type Wizard interface {
	Get(ctx context.Context, id string) (model.Wizard, error)
	Save(ctx context.Context, wizard model.Wizard) error
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	cache cache.RedisCache
	ttl   int
	otel  otel.Otel
}

func New(cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Wizard {
	return &repositoryImpl{
		cache: cache,
		ttl:   cfg.App.Booking.WizardTTLSeconds,
		otel:  otel,
	}
}

func key(id string) string {
	return shared.BuildCacheKey(keyPrefix, id)
}

func (repo *repositoryImpl) scope(ctx context.Context, name string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, model.EntityName, name))
}

func (repo *repositoryImpl) Get(ctx context.Context, id string) (wizard model.Wizard, err error) {
	ctx, scope := repo.scope(ctx, "Get")
	defer scope.End()

	err = repo.cache.Get(ctx, key(id), &wizard)
	if errors.Is(err, cache.Nil) {
		return model.Wizard{}, fmt.Errorf("%w: %s", model.ErrWizardNotFound, id)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get wizard session")

		return model.Wizard{}, fmt.Errorf("failed to get wizard session: %w", err)
	}

	return wizard, nil
}

func (repo *repositoryImpl) Save(ctx context.Context, wizard model.Wizard) (err error) {
	ctx, scope := repo.scope(ctx, "Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = repo.cache.Save(ctx, key(wizard.ID), wizard, repo.ttl); err != nil {
		log.Error().Err(err).Str("id", wizard.ID).Msg("failed to save wizard session")

		return fmt.Errorf("failed to save wizard session: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := repo.scope(ctx, "Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = repo.cache.Delete(ctx, key(id)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete wizard session")

		return fmt.Errorf("failed to delete wizard session: %w", err)
	}

	return nil
}
