package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/musedlab/tanzquiz-be/internal/delivery/http/handler"
	"github.com/musedlab/tanzquiz-be/internal/delivery/http/middleware"
)

func SetupQuizSessionRoute(api *fiber.App, handler handler.QuizSessionHandler, m *middleware.Middleware) {
	router := api.Group("/quiz")
	{
		router.Get("/categories", handler.ListCategories)

		router.Post("/sessions", handler.StartSession)
		router.Get("/sessions/:session_id", handler.GetSession)
		router.Delete("/sessions/:session_id", handler.AbandonSession)

		router.Post("/sessions/:session_id/answer", handler.SubmitAnswer)
		router.Post("/sessions/:session_id/advance", handler.AdvanceRound)
		router.Post("/sessions/:session_id/reset", handler.ResetSession)
		router.Post("/sessions/:session_id/playback", handler.Playback)
	}
}
