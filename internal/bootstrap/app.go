package bootstrap

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"safety-backend/internal/shared/config"
	"safety-backend/internal/shared/metrics"
	"safety-backend/internal/shared/server"
	"safety-backend/internal/shared/telemetry"
	"safety-backend/internal/status"
)

// App holds shared dependencies and the configured router.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	Metrics       *metrics.Recorder
	StatusService *status.Service
	StatusHandler *status.Handler
}

// Build validates configuration and wires services, handlers and routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if err := validatePort(cfg.Port); err != nil {
		return nil, err
	}

	statusSvc := status.NewService()
	app := &App{
		Config:        cfg,
		Metrics:       metrics.New(),
		StatusService: statusSvc,
		StatusHandler: status.NewHandler(statusSvc),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        app.Config,
		StatusHandler: app.StatusHandler,
		Metrics:       app.Metrics,
	})

	return app, nil
}

// Addr returns the normalized listen address for the app.
func (a *App) Addr() string {
	return server.Addr(a.Config.Host, a.Config.Port)
}

// Run binds the configured address and serves until the process is stopped.
func (a *App) Run() error {
	addr := a.Addr()
	telemetry.Info("server.start", map[string]any{
		"addr": addr,
		"env":  a.Config.Env,
	})
	if err := a.Router.Run(addr); err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return nil
}

// Serve serves on an already bound listener.
func (a *App) Serve(ln net.Listener) error {
	telemetry.Info("server.start", map[string]any{
		"addr": ln.Addr().String(),
		"env":  a.Config.Env,
	})
	if err := a.Router.RunListener(ln); err != nil {
		return fmt.Errorf("serve on %s: %w", ln.Addr(), err)
	}
	return nil
}

func validatePort(raw string) error {
	port := strings.TrimPrefix(strings.TrimSpace(raw), ":")
	if port == "" {
		return nil
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return fmt.Errorf("invalid PORT %q", raw)
	}
	return nil
}
