package http

import (
	"net/http"

	"github.com/tuanvumaihuynh/catalog-service/internal/storage/db"
	"github.com/tuanvumaihuynh/catalog-service/pkg/zerror"
)

var errStoreUnavailable = zerror.NewServiceUnavailable("STORE_UNAVAILABLE", "store unavailable")

type healthHandler struct {
	health  db.HealthChecker
	respond responder
}

func newHealthHandler(health db.HealthChecker, respond responder) *healthHandler {
	return &healthHandler{
		health:  health,
		respond: respond,
	}
}

func (h *healthHandler) check(w http.ResponseWriter, r *http.Request) {
	if h.health != nil {
		if ok, err := h.health.IsHealthy(r.Context()); !ok {
			h.respond.Error(w, r, errStoreUnavailable.WrapParent(err))
			return
		}
	}

	h.respond.JSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
