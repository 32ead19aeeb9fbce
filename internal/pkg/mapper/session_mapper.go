package mapper

import (
	"github.com/musedlab/tanzquiz-be/internal/delivery/http/entity"
	"github.com/musedlab/tanzquiz-be/internal/delivery/http/repository"
)

// ToSessionView converts a stored session and its recorded display state into
// the transport view. The caller must hold the record's lock.
func ToSessionView(record *repository.Record) *entity.SessionView {
	view := &entity.SessionView{
		SessionID:      record.ID,
		Round:          record.Session.Round(),
		TotalRounds:    record.Session.Rounds(),
		RoundLabel:     record.Display.RoundLabel,
		Feedback:       record.Display.Feedback,
		AdvanceLabel:   record.Display.AdvanceLabel,
		AdvanceVisible: record.Display.AdvanceVisible,
		ReplayVisible:  record.Display.ReplayVisible,
		Selection:      record.Display.Selection,
		Answered:       record.Session.Answered(),
		Finished:       record.Session.Finished(),
		AudioURL:       record.Audio.Source,
	}

	// The score is part of the final message only; expose the raw count once
	// the quiz is over.
	if record.Session.Finished() {
		count := record.Session.CorrectCount()
		view.CorrectCount = &count
	}

	return view
}
