package quiz

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const (
	feedbackRight = "Right answer"
	feedbackWrong = "Wrong answer"

	advanceLabelNext   = "Next round"
	advanceLabelFinish = "Finish"
)

// Session owns one player's run through the quiz. All state lives on the
// session object; callers drive it through SubmitAnswer, AdvanceRound, Reset
// and the playback delegates, one call at a time.
type Session struct {
	catalog  *Catalog
	rng      *rand.Rand
	audio    AudioSurface
	display  DisplaySurface
	basePath string

	sequence RoundSequence
	round    int // 1-based, 1..Rounds()
	correct  int
	answered bool
	finished bool
}

// Config carries the collaborators of a new session. Catalog, Rand and the
// surfaces are optional; missing surfaces are replaced by recording defaults
// and a missing Rand by a time-seeded one. Tests inject a fixed-seed Rand to
// make draws and shuffles deterministic.
type Config struct {
	Catalog  *Catalog
	BasePath string
	Audio    AudioSurface
	Display  DisplaySurface
	Rand     *rand.Rand
}

// NewSession builds a session and brings it into the freshly-reset state:
// round 1 of a newly drawn, shuffled sequence.
func NewSession(cfg Config) *Session {
	s := &Session{
		catalog:  cfg.Catalog,
		rng:      cfg.Rand,
		audio:    cfg.Audio,
		display:  cfg.Display,
		basePath: cfg.BasePath,
	}
	if s.catalog == nil {
		s.catalog = DefaultCatalog()
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.audio == nil {
		s.audio = &AudioSource{}
	}
	if s.display == nil {
		s.display = &DisplayState{}
	}

	s.Reset()
	return s
}

// Reset redraws and reshuffles the round sequence and restores the initial
// state: round 1, score 0, nothing answered. The display is put back to its
// start layout and the audio surface is pointed at the first sample.
func (s *Session) Reset() {
	s.sequence = NewRoundSequence(s.catalog, s.rng)
	s.round = 1
	s.correct = 0
	s.answered = false
	s.finished = false

	s.display.SetRoundLabel(s.roundLabel())
	s.display.SetFeedback("")
	s.display.SetAdvanceLabel(advanceLabelNext)
	s.display.ShowAdvance(true)
	s.display.ShowReplay(false)
	s.display.ResetSelection()
	s.audio.SetSource(s.sourcePath())
}

// SubmitAnswer scores the player's dropdown choice against the current
// sample. The answer value is matched as a case-sensitive substring of the
// sample file name. A round is scored at most once; repeated calls and the
// sentinel value yield an InputError with an instructive prompt instead.
func (s *Session) SubmitAnswer(selected string) error {
	if selected == "" || selected == SentinelOption {
		s.display.SetFeedback(ErrNoSelectionMade.Error())
		return ErrNoSelectionMade
	}
	if s.answered || s.finished {
		s.display.SetFeedback(ErrAlreadyAnswered.Error())
		return ErrAlreadyAnswered
	}

	s.answered = true
	if strings.Contains(s.CurrentSample(), selected) {
		s.correct++
		s.display.SetFeedback(feedbackRight)
	} else {
		s.display.SetFeedback(feedbackWrong)
	}
	return nil
}

// AdvanceRound moves to the next round, or finishes the quiz when the last
// round is already showing. The finishing call leaves the round index at its
// maximum: the terminal state is reached by call count, not by an index bound,
// which keeps the user-visible round numbering of the original quiz.
func (s *Session) AdvanceRound() error {
	if s.finished {
		// Terminal until Reset; just keep showing the result.
		s.display.SetFeedback(s.finalMessage())
		return nil
	}
	if !s.answered {
		s.display.SetFeedback(ErrNotYetAnswered.Error())
		return ErrNotYetAnswered
	}

	s.answered = false
	s.display.ResetSelection()

	if s.round < s.Rounds() {
		s.round++
		s.display.SetFeedback("")
		s.display.SetRoundLabel(s.roundLabel())
		if s.round == s.Rounds() {
			s.display.SetAdvanceLabel(advanceLabelFinish)
		}
		s.audio.SetSource(s.sourcePath())
		return nil
	}

	s.finished = true
	s.display.SetFeedback(s.finalMessage())
	s.display.ShowAdvance(false)
	s.display.ShowReplay(true)
	return nil
}

// Play starts playback on the audio surface.
func (s *Session) Play() {
	s.audio.Play()
}

// Pause pauses playback on the audio surface.
func (s *Session) Pause() {
	s.audio.Pause()
}

// CurrentSample returns the file name of the sample presented this round.
func (s *Session) CurrentSample() string {
	return s.sequence[s.round-1]
}

// Sequence returns a copy of the current round sequence.
func (s *Session) Sequence() RoundSequence {
	return append(RoundSequence(nil), s.sequence...)
}

// Rounds returns the total number of rounds in one quiz pass.
func (s *Session) Rounds() int {
	return len(s.sequence)
}

// Round returns the 1-based index of the current round.
func (s *Session) Round() int {
	return s.round
}

// CorrectCount returns how many rounds were answered correctly so far.
func (s *Session) CorrectCount() int {
	return s.correct
}

// Answered reports whether the current round has been scored.
func (s *Session) Answered() bool {
	return s.answered
}

// Finished reports whether the quiz has reached its terminal state.
func (s *Session) Finished() bool {
	return s.finished
}

// Catalog returns the sample bank the session plays from.
func (s *Session) Catalog() *Catalog {
	return s.catalog
}

func (s *Session) sourcePath() string {
	return s.basePath + "/" + s.CurrentSample()
}

func (s *Session) roundLabel() string {
	return fmt.Sprintf("Round %d/%d", s.round, s.Rounds())
}

func (s *Session) finalMessage() string {
	return fmt.Sprintf("Quiz finished! You got %d answers right.", s.correct)
}
