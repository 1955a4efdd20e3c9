package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxSyncBodyBytes bounds a decoded sync request body.
const maxSyncBodyBytes = 32 << 20

// Init builds the router. Sync routes are only mounted for the services
// present: a catalog node has SyncService, a merge store RemoteMergeService.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)

	router.Get("/api/version/", h.getServerVersion)

	if h.services.SyncService != nil {
		router.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/sync/run", h.runSync)
			r.Post("/sync/enable", h.enableSync)
			r.Get("/sync/status", h.syncStatus)
			r.Post("/sync/reset", h.resetSync)
			if h.services.OutboxService != nil {
				r.Post("/sync/outbox", h.enqueueDelete)
			}
		})
	}

	if h.services.RemoteMergeService != nil {
		router.With(middleware.RequestSize(maxSyncBodyBytes)).Post("/sync/remote", h.remoteMerge)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
