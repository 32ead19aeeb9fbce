package config

import (
	"github.com/gofiber/fiber/v2"
	"github.com/musedlab/tanzquiz-be/internal/assets"
	"github.com/musedlab/tanzquiz-be/internal/delivery/http/handler"
	"github.com/musedlab/tanzquiz-be/internal/delivery/http/middleware"
	"github.com/musedlab/tanzquiz-be/internal/delivery/http/repository"
	"github.com/musedlab/tanzquiz-be/internal/delivery/http/route"
	"github.com/musedlab/tanzquiz-be/internal/delivery/http/usecase"
	"github.com/musedlab/tanzquiz-be/internal/pkg/validate"
	"github.com/musedlab/tanzquiz-be/internal/quiz"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	Api       *fiber.App
	Config    *viper.Viper
	Log       *logrus.Logger
	Validator *validate.Validator
}

func Bootstrap(config *BootstrapConfig) {

	mid := middleware.NewMiddleware(&middleware.MiddlewareConfig{
		Log:    config.Log,
		Config: config.Config,
	})

	catalog := quiz.DefaultCatalog()

	audioDir := ""
	publicPath := "/audio"
	if config.Config != nil {
		audioDir = config.Config.GetString("audio.dir")
		if v := config.Config.GetString("audio.public_path"); v != "" {
			publicPath = v
		}
	}

	library, err := assets.NewLibrary(audioDir, config.Log)
	if err != nil {
		config.Log.Fatalf("Failed to open audio library: %v", err)
	}
	if missing := library.VerifyCatalog(catalog); len(missing) > 0 {
		config.Log.Warnf("%d catalog samples missing under %s", len(missing), library.Base())
	}

	sessionRepo := repository.NewQuizSessionRepository()
	quizUsecase := usecase.NewQuizSessionUsecase(usecase.QuizSessionConfig{
		Catalog:    catalog,
		Repository: sessionRepo,
		Log:        config.Log,
		Config:     config.Config,
	})
	quizHandler := handler.NewQuizSessionHandler(config.Validator, config.Log, quizUsecase)

	route.Setup(&route.RouteConfig{
		Api:                config.Api,
		Middleware:         mid,
		QuizSessionHandler: quizHandler,
		AudioPublicPath:    publicPath,
		AudioDir:           library.Base(),
	})

}
