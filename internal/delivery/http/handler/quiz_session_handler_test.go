package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/musedlab/tanzquiz-be/internal/delivery/http/entity"
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

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   any             `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp() *fiber.App {
	v := viper.New()
	v.Set("quiz.seed", int64(99))
	v.Set("audio.public_path", "/audio")

	log := logrus.New()
	log.SetOutput(io.Discard)

	quizUsecase := usecase.NewQuizSessionUsecase(usecase.QuizSessionConfig{
		Repository: repository.NewQuizSessionRepository(),
		Log:        log,
		Config:     v,
	})
	quizHandler := handler.NewQuizSessionHandler(validate.NewValidator(), log, quizUsecase)

	app := fiber.New()
	route.SetupQuizSessionRoute(app, quizHandler, middleware.NewMiddleware(nil))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decoding envelope: %v", method, target, err)
	}
	return resp.StatusCode, env
}

func sessionView(t *testing.T, env envelope) entity.SessionView {
	t.Helper()
	var view entity.SessionView
	if err := json.Unmarshal(env.Data, &view); err != nil {
		t.Fatalf("decoding session view: %v", err)
	}
	return view
}

func startSession(t *testing.T, app *fiber.App) entity.SessionView {
	t.Helper()
	status, env := doJSON(t, app, http.MethodPost, "/quiz/sessions", nil)
	if status != http.StatusOK || !env.Success {
		t.Fatalf("start session: status %d, envelope %+v", status, env)
	}
	return sessionView(t, env)
}

func answerFor(t *testing.T, audioURL string) string {
	t.Helper()
	for _, cat := range quiz.DefaultCatalog().Categories {
		if strings.Contains(audioURL, cat.Key) {
			return cat.Key
		}
	}
	t.Fatalf("no category key matches audio URL %q", audioURL)
	return ""
}

func TestStartSessionEndpoint(t *testing.T) {
	app := newTestApp()

	view := startSession(t, app)
	if view.SessionID == "" {
		t.Error("no session id in view")
	}
	if view.RoundLabel != "Round 1/5" {
		t.Errorf("round label = %q, want Round 1/5", view.RoundLabel)
	}
	if !strings.HasPrefix(view.AudioURL, "/audio/") {
		t.Errorf("audio URL = %q, want /audio/ prefix", view.AudioURL)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	app := newTestApp()

	status, env := doJSON(t, app, http.MethodGet, "/quiz/sessions/unknown", nil)
	if status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
	if env.Success {
		t.Error("envelope reports success for an unknown session")
	}
}

func TestSubmitAnswerEndpoint(t *testing.T) {
	app := newTestApp()
	view := startSession(t, app)
	base := "/quiz/sessions/" + view.SessionID

	// Sentinel selection is rejected with the instructive prompt.
	status, env := doJSON(t, app, http.MethodPost, base+"/answer", entity.SubmitAnswerRequest{Answer: quiz.SentinelOption})
	if status != http.StatusBadRequest {
		t.Fatalf("sentinel answer: status = %d, want 400", status)
	}
	if msg, ok := env.Error.(string); !ok || !strings.Contains(msg, "choose a dance style") {
		t.Errorf("sentinel answer: error = %v, want the no-selection prompt", env.Error)
	}

	// A correct answer scores the round.
	status, env = doJSON(t, app, http.MethodPost, base+"/answer", entity.SubmitAnswerRequest{Answer: answerFor(t, view.AudioURL)})
	if status != http.StatusOK {
		t.Fatalf("answer: status = %d, want 200", status)
	}
	answered := sessionView(t, env)
	if answered.Feedback != "Right answer" || !answered.Answered {
		t.Errorf("answer view = feedback %q, answered %v", answered.Feedback, answered.Answered)
	}

	// Re-scoring the same round is refused.
	status, _ = doJSON(t, app, http.MethodPost, base+"/answer", entity.SubmitAnswerRequest{Answer: "walzer"})
	if status != http.StatusBadRequest {
		t.Errorf("repeat answer: status = %d, want 400", status)
	}
}

func TestAdvanceRoundEndpoint(t *testing.T) {
	app := newTestApp()
	view := startSession(t, app)
	base := "/quiz/sessions/" + view.SessionID

	// Advancing an unanswered round is refused.
	status, env := doJSON(t, app, http.MethodPost, base+"/advance", nil)
	if status != http.StatusBadRequest {
		t.Fatalf("advance unanswered: status = %d, want 400", status)
	}
	if msg, ok := env.Error.(string); !ok || !strings.Contains(msg, "select an answer") {
		t.Errorf("advance unanswered: error = %v, want the select-an-answer prompt", env.Error)
	}

	if status, _ := doJSON(t, app, http.MethodPost, base+"/answer", entity.SubmitAnswerRequest{Answer: "walzer"}); status != http.StatusOK {
		t.Fatalf("answer: status = %d", status)
	}

	status, env = doJSON(t, app, http.MethodPost, base+"/advance", nil)
	if status != http.StatusOK {
		t.Fatalf("advance: status = %d, want 200", status)
	}
	next := sessionView(t, env)
	if next.Round != 2 || next.Feedback != "" || next.Selection != quiz.SentinelOption {
		t.Errorf("after advance: round %d, feedback %q, selection %q", next.Round, next.Feedback, next.Selection)
	}
}

func TestPlaybackEndpointValidatesAction(t *testing.T) {
	app := newTestApp()
	view := startSession(t, app)
	base := "/quiz/sessions/" + view.SessionID

	status, _ := doJSON(t, app, http.MethodPost, base+"/playback", entity.PlaybackRequest{Action: "stop"})
	if status != http.StatusBadRequest {
		t.Errorf("playback stop: status = %d, want 400", status)
	}

	status, _ = doJSON(t, app, http.MethodPost, base+"/playback", entity.PlaybackRequest{Action: "play"})
	if status != http.StatusOK {
		t.Errorf("playback play: status = %d, want 200", status)
	}
}

func TestAbandonSessionEndpoint(t *testing.T) {
	app := newTestApp()
	view := startSession(t, app)

	status, _ := doJSON(t, app, http.MethodDelete, "/quiz/sessions/"+view.SessionID, nil)
	if status != http.StatusOK {
		t.Fatalf("abandon: status = %d, want 200", status)
	}

	status, _ = doJSON(t, app, http.MethodGet, "/quiz/sessions/"+view.SessionID, nil)
	if status != http.StatusNotFound {
		t.Errorf("get after abandon: status = %d, want 404", status)
	}
}

func TestListCategoriesEndpoint(t *testing.T) {
	app := newTestApp()

	status, env := doJSON(t, app, http.MethodGet, "/quiz/categories", nil)
	if status != http.StatusOK {
		t.Fatalf("categories: status = %d, want 200", status)
	}

	var options []entity.CategoryOption
	if err := json.Unmarshal(env.Data, &options); err != nil {
		t.Fatalf("decoding options: %v", err)
	}
	if len(options) != 7 {
		t.Errorf("options = %d, want 7", len(options))
	}
	if options[0].Value != quiz.SentinelOption {
		t.Errorf("first option = %q, want the sentinel", options[0].Value)
	}
}
