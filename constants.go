package main

// Game timing defaults, in seconds
const (
	DefaultQuestionInterval = 150 // countdown between questions
	DefaultAnswerTime       = 60  // answer window per question
	ResultDwell             = 3   // result display before the next countdown
)

// OptionCount is the fixed number of answer options per question.
const OptionCount = 4

// Route constants
const (
	RouteRemote      = "/"
	RouteGameState   = "/api/game/state"
	RouteGameAnswer  = "/api/game/answer"
	RouteGamePlayers = "/api/game/players"
	RouteGameConfig  = "/api/game/config"
	RouteHealth      = "/healthz"
)

// Gateway response messages. The remote page shows these verbatim, so the
// wrong-answer format must keep embedding the correct answer text.
const (
	MsgCorrectAnswer    = "Correct answer!"
	MsgWrongAnswer      = "Wrong answer. The correct answer was: %s"
	MsgNoActiveQuestion = "No active question"
	MsgInvalidRequest   = "Invalid request"
)

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)
