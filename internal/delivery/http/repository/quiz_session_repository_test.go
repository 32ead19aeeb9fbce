package repository

import (
	"errors"
	"testing"

	"github.com/musedlab/tanzquiz-be/internal/quiz"
)

func newRecord() *Record {
	display := &quiz.DisplayState{}
	audio := &quiz.AudioSource{}
	return &Record{
		Session: quiz.NewSession(quiz.Config{Audio: audio, Display: display, BasePath: "/audio"}),
		Display: display,
		Audio:   audio,
	}
}

func TestRepositoryCreateAssignsID(t *testing.T) {
	repo := NewQuizSessionRepository()

	a := repo.Create(newRecord())
	b := repo.Create(newRecord())

	if a.ID == "" || b.ID == "" {
		t.Fatal("created records without IDs")
	}
	if a.ID == b.ID {
		t.Errorf("two sessions share ID %q", a.ID)
	}
	if repo.Count() != 2 {
		t.Errorf("Count() = %d, want 2", repo.Count())
	}
}

func TestRepositoryFindByID(t *testing.T) {
	repo := NewQuizSessionRepository()
	created := repo.Create(newRecord())

	found, err := repo.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID(%q) = %v", created.ID, err)
	}
	if found != created {
		t.Error("FindByID returned a different record")
	}

	if _, err := repo.FindByID("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("FindByID(unknown) = %v, want ErrSessionNotFound", err)
	}
}

func TestRepositoryDelete(t *testing.T) {
	repo := NewQuizSessionRepository()
	created := repo.Create(newRecord())

	if err := repo.Delete(created.ID); err != nil {
		t.Fatalf("Delete = %v", err)
	}
	if _, err := repo.FindByID(created.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("record still found after delete: %v", err)
	}
	if err := repo.Delete(created.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("second Delete = %v, want ErrSessionNotFound", err)
	}
}
