//go:build wireinject
// +build wireinject

package di

import (
	"clearance/config"
	"clearance/infras/kafka"
	"clearance/infras/otel"
	"clearance/infras/postgres"
	"clearance/infras/redis"
	"clearance/infras/s3"
	"clearance/shared/cache"
	"clearance/transport/http"
	"clearance/transport/http/middleware"
	"clearance/transport/http/router"

	bookingRepository "clearance/internal/domains/booking/repository"
	bookingService "clearance/internal/domains/booking/service"
	wizardRepository "clearance/internal/domains/wizard/repository"
	wizardService "clearance/internal/domains/wizard/service"

	bookingHandler "clearance/internal/handlers/booking"
	catalogHandler "clearance/internal/handlers/catalog"
	jobHandler "clearance/internal/handlers/job"
	wizardHandler "clearance/internal/handlers/wizard"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.NewPublisher,
	bookingService.New,
)

var wizardDomain = wire.NewSet(
	wizardRepository.New,
	wizardService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	wizardDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	jobHandler.New,
	wizardHandler.New,
	catalogHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
