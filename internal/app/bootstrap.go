package app

import (
	"fmt"
	"strings"

	"campus-placement/internal/delivery/http/middleware"
	"campus-placement/internal/delivery/http/routes"
	"campus-placement/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f}
}

func Bootstrap(c *Container) (*App, func() error, error) {
	app := New(c)

	go c.Hub.Run()

	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	notifier := ws.NewNotifier(c.Hub)
	registry := routes.NewRegistry(c.Config, c.DB, c.Cache, notifier, c.Logger)
	registry.Register(app)

	wsHandler := ws.NewHandler(c.Hub, c.Logger)
	app.Get("/ws/dashboard", wsHandler.HandleDashboardWS)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
