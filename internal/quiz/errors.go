package quiz

// InputError is a recoverable user-input violation. It is never fatal: the
// prompt is shown to the player and the session stays playable.
type InputError struct {
	prompt string
}

func (e *InputError) Error() string {
	return e.prompt
}

var (
	// ErrNoSelectionMade: the dropdown still holds the sentinel value.
	ErrNoSelectionMade = &InputError{prompt: "Please choose a dance style from the list."}
	// ErrAlreadyAnswered: the current round was already scored.
	ErrAlreadyAnswered = &InputError{prompt: "You already answered this round."}
	// ErrNotYetAnswered: the current round must be answered before advancing.
	ErrNotYetAnswered = &InputError{prompt: "Please select an answer before moving on."}
)
