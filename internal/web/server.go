// Package web exposes the planner over a local HTTP API.
package web

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"github.com/yatrakit/yatrakit/internal/state"
	"github.com/yatrakit/yatrakit/internal/store"
)

// Server is the planner web server
type Server struct {
	gen    state.Generator
	store  *store.TripStore
	cache  *cache.Cache
	router *gin.Engine
}

// NewServer creates a new web server. Generated trips are memoized by
// prompt for cacheTTL so repeated submissions of the same prompt reuse
// the persisted result.
func NewServer(gen state.Generator, st *store.TripStore, cacheTTL time.Duration) *Server {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}

	router := gin.Default()
	router.Use(cors.Default())

	s := &Server{
		gen:    gen,
		store:  st,
		cache:  cache.New(cacheTTL, 2*cacheTTL),
		router: router,
	}

	api := router.Group("/api")
	{
		api.POST("/trips/generate", s.handleGenerate)
		api.POST("/trips/normalize", s.handleNormalize)
		api.GET("/trips", s.handleList)
		api.GET("/trips/latest", s.handleLatest)
	}
	router.GET("/healthz", s.handleHealth)

	return s
}

// Run starts the web server
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
