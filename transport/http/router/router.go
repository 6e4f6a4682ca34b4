package router

import (
	_ "clearance/docs" // swagger spec
	"clearance/internal/handlers/booking"
	"clearance/internal/handlers/catalog"
	"clearance/internal/handlers/job"
	"clearance/internal/handlers/wizard"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Booking booking.Handler
	Job     job.Handler
	Wizard  wizard.Handler
	Catalog catalog.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Job.Router(routerGroup)
		r.DomainHandlers.Wizard.Router(routerGroup)
		r.DomainHandlers.Catalog.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
