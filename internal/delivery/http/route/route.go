package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/musedlab/tanzquiz-be/internal/delivery/http/handler"
	"github.com/musedlab/tanzquiz-be/internal/delivery/http/middleware"
)

type RouteConfig struct {
	Api                *fiber.App
	Middleware         *middleware.Middleware
	QuizSessionHandler handler.QuizSessionHandler
	AudioPublicPath    string
	AudioDir           string
}

func Setup(c *RouteConfig) {
	c.Api.Use(recover.New())
	c.Api.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path}\n",
	}))
	c.Api.Use(c.Middleware.CorsMiddleware())

	SetupQuizSessionRoute(c.Api, c.QuizSessionHandler, c.Middleware)

	// The browser's media element fetches samples straight from here.
	c.Api.Static(c.AudioPublicPath, c.AudioDir)
}
