package repository

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/musedlab/tanzquiz-be/internal/quiz"
)

// ErrSessionNotFound is returned when a session id is unknown, typically
// because the process restarted and dropped its in-memory sessions.
var ErrSessionNotFound = errors.New("quiz session not found")

// Record binds one quiz session to its HTTP-side surfaces. The quiz itself is
// single-writer; the embedded mutex serializes the HTTP handlers that drive it.
type Record struct {
	ID      string
	Session *quiz.Session
	Display *quiz.DisplayState
	Audio   *quiz.AudioSource

	mu sync.Mutex
}

func (r *Record) Lock()   { r.mu.Lock() }
func (r *Record) Unlock() { r.mu.Unlock() }

type (
	QuizSessionRepository interface {
		Create(record *Record) *Record
		FindByID(id string) (*Record, error)
		Delete(id string) error
		Count() int
	}

	quizSessionRepository struct {
		mu      sync.RWMutex
		records map[string]*Record
	}
)

// NewQuizSessionRepository returns an in-memory session store. There is no
// database behind it: quiz state is process-local and lost on restart.
func NewQuizSessionRepository() QuizSessionRepository {
	return &quizSessionRepository{
		records: make(map[string]*Record),
	}
}

func (r *quizSessionRepository) Create(record *Record) *Record {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.ID] = record
	return record
}

func (r *quizSessionRepository) FindByID(id string) (*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return record, nil
}

func (r *quizSessionRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.records, id)
	return nil
}

func (r *quizSessionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
