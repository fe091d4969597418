package server

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"hbnb/internal/config"
	"hbnb/internal/metrics"
	"hbnb/internal/middleware"
	"hbnb/internal/modules/amenity"
	"hbnb/internal/modules/city"
	"hbnb/internal/modules/index"
	"hbnb/internal/modules/place"
	"hbnb/internal/modules/review"
	"hbnb/internal/modules/state"
	"hbnb/internal/modules/user"
	"hbnb/internal/pkg/response"
	"hbnb/internal/search"
	"hbnb/internal/storage"
)

const apiPrefix = "/api/v1"

// NewRouter wires every resource handler onto store under /api/v1 and
// serves Prometheus metrics on /metrics.
func NewRouter(cfg *config.Config, store storage.Storage, log zerolog.Logger) *gin.Engine {
	m := metrics.New()

	r := gin.New()
	r.Use(
		m.Middleware(),
		middleware.RequestID(log),
		middleware.RequestLogger(),
		middleware.ErrorLogger(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)
	r.NoRoute(response.NotFound)
	r.GET("/metrics", gin.WrapH(m.Handler()))

	engine := search.NewEngine(store)

	v1 := r.Group(apiPrefix)
	index.NewHandler(store).RegisterRoutes(v1)
	state.NewHandler(state.NewService(store)).RegisterRoutes(v1)
	city.NewHandler(city.NewService(store)).RegisterRoutes(v1)
	amenity.NewHandler(amenity.NewService(store)).RegisterRoutes(v1)
	user.NewHandler(user.NewService(store)).RegisterRoutes(v1)
	place.NewHandler(place.NewService(store, engine)).RegisterRoutes(v1)
	review.NewHandler(review.NewService(store)).RegisterRoutes(v1)

	return r
}
