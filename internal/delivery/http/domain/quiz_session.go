package domain

var (
	QUIZ_SESSION_START_SUCCESS   = "Quiz session started"
	QUIZ_SESSION_START_FAILED    = "Failed to start quiz session"
	QUIZ_SESSION_GET_SUCCESS     = "Quiz session retrieved"
	QUIZ_SESSION_GET_FAILED      = "Failed to retrieve quiz session"
	QUIZ_ANSWER_SUBMIT_SUCCESS   = "Answer submitted"
	QUIZ_ANSWER_SUBMIT_FAILED    = "Failed to submit answer"
	QUIZ_ROUND_ADVANCE_SUCCESS   = "Round advanced"
	QUIZ_ROUND_ADVANCE_FAILED    = "Failed to advance round"
	QUIZ_SESSION_RESET_SUCCESS   = "Quiz session reset"
	QUIZ_SESSION_RESET_FAILED    = "Failed to reset quiz session"
	QUIZ_PLAYBACK_SUCCESS        = "Playback delegated to the client player"
	QUIZ_PLAYBACK_FAILED         = "Failed to control playback"
	QUIZ_SESSION_ABANDON_SUCCESS = "Quiz session abandoned"
	QUIZ_SESSION_ABANDON_FAILED  = "Failed to abandon quiz session"
	QUIZ_CATEGORIES_SUCCESS      = "Categories retrieved"
)
