package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// remoteHandler serves the remote answer page for a player's own device.
func (app *App) remoteHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "remote.html", gin.H{
		"title": "Семейна Викторина — Дистанционно Отговаряне",
	})
}

// gameStateHandler returns the shared state snapshot. It never reports an
// application error: faults degrade to the empty-state shape with HTTP 200
// so the polling client keeps its cadence.
func (app *App) gameStateHandler(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			logWarn("Game state handler recovered: %v", r)
			c.JSON(http.StatusOK, GameSnapshot{})
		}
	}()
	c.JSON(http.StatusOK, app.Store.Snapshot())
}

// answerHandler grades a remote submission against the live question. The
// submitted question id is informational only. A correct answer scores a
// point but never advances the turn cycle; that stays with the scheduler,
// whose countdown keeps running.
func (app *App) answerHandler(c *gin.Context) {
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logWarn("Malformed answer submission: %v", err)
		c.JSON(http.StatusOK, AnswerResponse{Correct: false, Message: MsgInvalidRequest})
		return
	}

	snap := app.Store.Snapshot()
	if snap.CurrentQuestion == nil {
		c.JSON(http.StatusOK, AnswerResponse{Correct: false, Message: MsgNoActiveQuestion})
		return
	}

	correct := req.Answer == snap.CurrentQuestion.CorrectAnswer
	app.Roster.RecordAnswer(req.PlayerID, correct)
	logInfo("Player %d answered %q on question %d: correct=%v", req.PlayerID, req.Answer, snap.CurrentQuestion.ID, correct)

	message := MsgCorrectAnswer
	if !correct {
		message = fmt.Sprintf(MsgWrongAnswer, snap.CurrentQuestion.CorrectAnswer)
	}
	next := app.Roster.NextAfter(req.PlayerID)
	c.JSON(http.StatusOK, AnswerResponse{
		Correct:    correct,
		Message:    message,
		NextPlayer: &PlayerRef{ID: next.ID, Name: next.Name},
	})
}

// playersHandler returns the scoreboard in turn order.
func (app *App) playersHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"players": app.Roster.Players()})
}

// configHandler returns the active game configuration.
func (app *App) configHandler(c *gin.Context) {
	c.JSON(http.StatusOK, app.Scheduler.Config())
}

// updateConfigHandler applies new timing settings. The scheduler picks them
// up at its next phase transition.
func (app *App) updateConfigHandler(c *gin.Context) {
	var cfg GameConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid config payload"})
		return
	}
	if err := app.Scheduler.UpdateConfig(cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	logInfo("Config updated: interval=%ds answer=%ds sound=%v", cfg.QuestionInterval, cfg.AnswerTime, cfg.SoundEnabled)
	c.JSON(http.StatusOK, cfg)
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	uptime := time.Since(app.StartTime)
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"env":       map[bool]string{true: "production", false: "development"}[app.IsProduction],
		"questions": app.QuestionCount,
		"players":   app.Roster.Len(),
		"uptime":    formatUptime(uptime),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
