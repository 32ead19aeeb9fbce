package entity

// SubmitAnswerRequest carries the player's dropdown choice for the current round.
type SubmitAnswerRequest struct {
	Answer string `json:"answer" validate:"required"`
}

// PlaybackRequest drives the audio surface of a session.
type PlaybackRequest struct {
	Action string `json:"action" validate:"required,oneof=play pause"`
}

// CategoryOption is one entry of the answer dropdown, sentinel included.
type CategoryOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// SessionView is the display state of one quiz session as the browser renders
// it: the text regions, the two controls and the current audio source. The
// score appears only once the quiz is finished.
type SessionView struct {
	SessionID      string `json:"session_id"`
	Round          int    `json:"round"`
	TotalRounds    int    `json:"total_rounds"`
	RoundLabel     string `json:"round_label"`
	Feedback       string `json:"feedback"`
	AdvanceLabel   string `json:"advance_label"`
	AdvanceVisible bool   `json:"advance_visible"`
	ReplayVisible  bool   `json:"replay_visible"`
	Selection      string `json:"selection"`
	Answered       bool   `json:"answered"`
	Finished       bool   `json:"finished"`
	CorrectCount   *int   `json:"correct_count,omitempty"`
	AudioURL       string `json:"audio_url"`
}
