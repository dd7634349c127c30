package rest

import (
	"net/http"

	"github.com/heartmarshall/energymonitor-backend/internal/transport/middleware"
)

// Routes groups the handlers mounted by NewRouter.
type Routes struct {
	Health      *HealthHandler
	Legacy      *LegacyHandler
	Auth        *AuthHandler
	Consumption *ConsumptionHandler
	Insight     *InsightHandler

	// AuthLimit wraps the credential endpoints. Nil disables limiting.
	AuthLimit middleware.Middleware
}

// NewRouter registers every REST route. Session resolution happens in the
// outer middleware chain; routes that need a user are wrapped with
// RequireSession here.
func NewRouter(rt Routes) *http.ServeMux {
	limit := rt.AuthLimit
	if limit == nil {
		limit = func(next http.Handler) http.Handler { return next }
	}
	private := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireSession(h)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)

	mux.HandleFunc("GET /{$}", rt.Legacy.Root)
	mux.HandleFunc("GET /api/health", rt.Legacy.Health)
	mux.HandleFunc("GET /api/test", rt.Legacy.Test)

	mux.Handle("POST /api/auth/registro", limit(http.HandlerFunc(rt.Auth.Register)))
	mux.Handle("POST /api/auth/login", limit(http.HandlerFunc(rt.Auth.Login)))
	mux.Handle("GET /api/auth/perfil", limit(http.HandlerFunc(rt.Auth.Profile)))

	mux.HandleFunc("GET /api/consumo/demo", rt.Insight.Demo)
	mux.Handle("POST /api/consumo", private(rt.Consumption.Create))
	mux.Handle("GET /api/consumo/usuario/{usuarioId}", private(rt.Consumption.ListByUser))
	mux.Handle("GET /api/consumo/usuario/{usuarioId}/recomendacion", private(rt.Insight.Recommend))
	mux.Handle("GET /api/consumo/usuario/{usuarioId}/resumen", private(rt.Insight.Summary))
	mux.Handle("GET /api/consumo/usuario/{usuarioId}/semanas", private(rt.Insight.Weekly))

	return mux
}
