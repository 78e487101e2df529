package server

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"

	"safety-backend/internal/shared/config"
	"safety-backend/internal/shared/metrics"
	"safety-backend/internal/shared/server/middleware"
	"safety-backend/internal/status"
)

const defaultPort = "8080"

// RouterDeps carries the handlers mounted by NewRouter.
type RouterDeps struct {
	Config        config.Config
	StatusHandler *status.Handler
	Metrics       *metrics.Recorder
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.HandleMethodNotAllowed = true

	handlers := []gin.HandlerFunc{
		middleware.RequestID(),
		middleware.Logging(),
	}
	if deps.Metrics != nil {
		handlers = append(handlers, deps.Metrics.Middleware())
	}
	handlers = append(handlers,
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)
	r.Use(handlers...)

	api := r.Group("/api")
	if deps.StatusHandler != nil {
		deps.StatusHandler.RegisterRoutes(api)
	}

	if deps.Config.MetricsEnabled && deps.Metrics != nil {
		r.GET("/metrics", deps.Metrics.Handler())
	}

	return r
}

// Addr normalizes the listen address from an optional host and port.
func Addr(host, port string) string {
	host = strings.TrimSpace(host)
	port = strings.TrimPrefix(strings.TrimSpace(port), ":")
	if port == "" {
		port = defaultPort
	}
	return net.JoinHostPort(host, port)
}
