// Package router wires the HTTP routes.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"relay_backend/internal/config"
	relayhandler "relay_backend/internal/feature/relay/transport/handler"
	platformhandler "relay_backend/internal/platform/http/handler"
	"relay_backend/internal/platform/secret"
)

// NewRouter builds the gin engine. The two relay directions live under the
// versioned prefix, each behind its own shared secret.
func NewRouter(cfg config.Config, relay *relayhandler.RelayHandler) *gin.Engine {
	r := gin.Default()

	// The data is consumed by a browser front end on another origin.
	r.Use(cors.Default())

	// No auth, used by the platform for liveness probing.
	r.GET("/healthz", platformhandler.Health)

	v1 := r.Group("/relay-api/v1")

	// The scheduler pushes data in with the ingest secret.
	in := v1.Group("/")
	in.Use(secret.Required(cfg.RelayInKey))
	{
		in.GET("/relay-in", relay.RelayIn)
	}

	// The front end reads data out with a distinct secret.
	out := v1.Group("/")
	out.Use(secret.Required(cfg.RelayOutKey))
	{
		out.GET("/relay-out", relay.RelayOut)
	}

	return r
}
