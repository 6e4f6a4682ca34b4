package catalog

import (
	"net/http"

	"clearance/catalog"
	"clearance/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct{}

func New() Handler {
	return Handler{}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/catalog", handler.GetCatalog)
}

// GetCatalog returns display labels and the requirement catalog.
// @Summary Get the catalog
// @Description Labels for statuses, job types, transshipment methods, cargo modes, fleets and supplemental requirements.
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Data[catalog.Catalog] "Catalog"
// @Router /v1/catalog [get]
func (handler *Handler) GetCatalog(w http.ResponseWriter, _ *http.Request) {
	response.WithJSON(w, http.StatusOK, catalog.Get())
}
