// Package api exposes a read-only HTTP view over a running maze solve.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/beka-birhanu/mazepilot/api/i"
)

// Router manages the HTTP server and the controllers registered on it.
type Router struct {
	addr        string
	baseURL     string
	controllers []i.Controller
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Controllers []i.Controller
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
	}
}

// Run starts the HTTP server. All routes are grouped under the base URL;
// every endpoint is public and read-only.
func (r *Router) Run() error {
	gin.ForceConsoleColor()
	router := gin.Default()

	api := router.Group(r.baseURL)
	{
		routes := api.Group("/v1")
		{
			for _, c := range r.controllers {
				c.Register(routes)
			}
		}
	}

	return router.Run(r.addr)
}
