package usecase

import (
	"math/rand"
	"time"

	"github.com/musedlab/tanzquiz-be/internal/delivery/http/entity"
	"github.com/musedlab/tanzquiz-be/internal/delivery/http/repository"
	"github.com/musedlab/tanzquiz-be/internal/pkg/mapper"
	"github.com/musedlab/tanzquiz-be/internal/quiz"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type QuizSessionUsecase interface {
	StartSession() (*entity.SessionView, error)
	GetSession(sessionID string) (*entity.SessionView, error)
	SubmitAnswer(sessionID string, req entity.SubmitAnswerRequest) (*entity.SessionView, error)
	AdvanceRound(sessionID string) (*entity.SessionView, error)
	ResetSession(sessionID string) (*entity.SessionView, error)
	Playback(sessionID string, req entity.PlaybackRequest) (*entity.SessionView, error)
	AbandonSession(sessionID string) error
	ListCategories() []entity.CategoryOption
}

type QuizSessionConfig struct {
	Catalog    *quiz.Catalog
	Repository repository.QuizSessionRepository
	Log        *logrus.Logger
	Config     *viper.Viper
}

type quizSessionUsecase struct {
	cfg       QuizSessionConfig
	audioPath string
	seed      int64
}

func NewQuizSessionUsecase(cfg QuizSessionConfig) QuizSessionUsecase {
	if cfg.Catalog == nil {
		cfg.Catalog = quiz.DefaultCatalog()
	}

	audioPath := "/audio"
	var seed int64
	if cfg.Config != nil {
		if v := cfg.Config.GetString("audio.public_path"); v != "" {
			audioPath = v
		}
		seed = cfg.Config.GetInt64("quiz.seed")
	}

	return &quizSessionUsecase{
		cfg:       cfg,
		audioPath: audioPath,
		seed:      seed,
	}
}

// newRand seeds a per-session random source. A non-zero configured seed makes
// every session reproducible, which test and demo setups rely on.
func (u *quizSessionUsecase) newRand() *rand.Rand {
	if u.seed != 0 {
		return rand.New(rand.NewSource(u.seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func (u *quizSessionUsecase) StartSession() (*entity.SessionView, error) {
	display := &quiz.DisplayState{}
	audio := &quiz.AudioSource{}

	session := quiz.NewSession(quiz.Config{
		Catalog:  u.cfg.Catalog,
		BasePath: u.audioPath,
		Audio:    audio,
		Display:  display,
		Rand:     u.newRand(),
	})

	record := u.cfg.Repository.Create(&repository.Record{
		Session: session,
		Display: display,
		Audio:   audio,
	})

	if u.cfg.Log != nil {
		u.cfg.Log.Infof("quiz session %s started (%d rounds)", record.ID, session.Rounds())
	}

	record.Lock()
	defer record.Unlock()
	return mapper.ToSessionView(record), nil
}

func (u *quizSessionUsecase) GetSession(sessionID string) (*entity.SessionView, error) {
	record, err := u.cfg.Repository.FindByID(sessionID)
	if err != nil {
		return nil, err
	}

	record.Lock()
	defer record.Unlock()
	return mapper.ToSessionView(record), nil
}

func (u *quizSessionUsecase) SubmitAnswer(sessionID string, req entity.SubmitAnswerRequest) (*entity.SessionView, error) {
	record, err := u.cfg.Repository.FindByID(sessionID)
	if err != nil {
		return nil, err
	}

	record.Lock()
	defer record.Unlock()

	if err := record.Session.SubmitAnswer(req.Answer); err != nil {
		return nil, err
	}
	record.Display.Selection = req.Answer

	return mapper.ToSessionView(record), nil
}

func (u *quizSessionUsecase) AdvanceRound(sessionID string) (*entity.SessionView, error) {
	record, err := u.cfg.Repository.FindByID(sessionID)
	if err != nil {
		return nil, err
	}

	record.Lock()
	defer record.Unlock()

	if err := record.Session.AdvanceRound(); err != nil {
		return nil, err
	}

	if record.Session.Finished() && u.cfg.Log != nil {
		u.cfg.Log.Infof("quiz session %s finished with %d/%d correct",
			record.ID, record.Session.CorrectCount(), record.Session.Rounds())
	}

	return mapper.ToSessionView(record), nil
}

func (u *quizSessionUsecase) ResetSession(sessionID string) (*entity.SessionView, error) {
	record, err := u.cfg.Repository.FindByID(sessionID)
	if err != nil {
		return nil, err
	}

	record.Lock()
	defer record.Unlock()

	record.Session.Reset()
	return mapper.ToSessionView(record), nil
}

func (u *quizSessionUsecase) Playback(sessionID string, req entity.PlaybackRequest) (*entity.SessionView, error) {
	record, err := u.cfg.Repository.FindByID(sessionID)
	if err != nil {
		return nil, err
	}

	record.Lock()
	defer record.Unlock()

	// The browser owns actual playback; the session just delegates to its
	// audio surface.
	switch req.Action {
	case "pause":
		record.Session.Pause()
	default:
		record.Session.Play()
	}

	return mapper.ToSessionView(record), nil
}

func (u *quizSessionUsecase) AbandonSession(sessionID string) error {
	return u.cfg.Repository.Delete(sessionID)
}

func (u *quizSessionUsecase) ListCategories() []entity.CategoryOption {
	options := make([]entity.CategoryOption, 0, len(u.cfg.Catalog.Options))
	for _, opt := range u.cfg.Catalog.Options {
		options = append(options, entity.CategoryOption{Value: opt.Value, Label: opt.Label})
	}
	return options
}
