// Quizbox Trivia API
//
// One shared trivia session per process. Clients register a player name,
// fetch questions, submit 1-indexed answers, and poll or stream scores.
//
// Routes:
// - POST /api/players                 register a player
// - GET  /api/quizzes                 list questions (answer key stripped)
// - GET  /api/quizzes/:id             fetch one question
// - POST /api/quizzes/:id/answers     submit an answer, returns the key
// - GET  /api/scores                  scoreboard snapshot
// - GET  /ws                          live scoreboard over websocket
//
// Failure mapping: invalid input 400, duplicate player 409, unknown
// player or quiz 404, anything unexpected 500.

package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Seednode/quizbox/game"
	"github.com/julienschmidt/httprouter"
)

// Request bodies
type registerRequest struct {
	Name string `json:"name"` // player name, unique, case-sensitive
}

type answerRequest struct {
	Name   string `json:"name"`   // registered player name
	Answer int    `json:"answer"` // 1-indexed option
}

// Response bodies
type publicQuiz struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type answerResponse struct {
	Player        game.Player `json:"player"`
	Correct       bool        `json:"correct"`
	CorrectOption int         `json:"correct_option"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// stripAnswerKey hides the correct option from responses served to
// players, so the catalog can't be read as an answer sheet.
func stripAnswerKey(quizzes []game.Quiz) []publicQuiz {
	out := make([]publicQuiz, 0, len(quizzes))
	for _, q := range quizzes {
		out = append(out, publicQuiz{
			ID:       q.ID,
			Question: q.Question,
			Options:  q.Options,
		})
	}
	return out
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, game.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, game.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, game.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(cfg *Config, w http.ResponseWriter, status int, body any, errs chan<- error) int {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	securityHeaders(cfg, w)
	w.WriteHeader(status)

	data, err := json.Marshal(body)
	if err != nil {
		errs <- err

		return 0
	}

	written, err := w.Write(append(data, '\n'))
	if err != nil {
		errs <- err

		return 0
	}

	return written
}

func writeError(cfg *Config, w http.ResponseWriter, err error, errs chan<- error) {
	writeJSON(cfg, w, errorStatus(err), errorResponse{Error: err.Error()}, errs)
}

func serveRegisterPlayer(cfg *Config, svc *game.Service, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		startTime := time.Now()

		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(cfg, w, http.StatusBadRequest, errorResponse{Error: "invalid request body"}, errs)
			return
		}

		player, err := svc.RegisterPlayer(req.Name)
		if err != nil {
			writeError(cfg, w, err, errs)
			return
		}

		written := writeJSON(cfg, w, http.StatusOK, player, errs)

		logf(cfg, "GAMES: Registered player %q (%s) from %s in %s",
			player.Name,
			humanReadableSize(int64(written)),
			realIP(r),
			time.Since(startTime).Round(time.Microsecond),
		)
	}
}

func serveListQuizzes(cfg *Config, svc *game.Service, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		startTime := time.Now()

		written := writeJSON(cfg, w, http.StatusOK, stripAnswerKey(svc.ListQuizzes()), errs)

		logf(cfg, "SERVE: Quiz list (%s) to %s in %s",
			humanReadableSize(int64(written)),
			realIP(r),
			time.Since(startTime).Round(time.Microsecond),
		)
	}
}

func serveGetQuestion(cfg *Config, svc *game.Service, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		startTime := time.Now()

		id, err := strconv.Atoi(p.ByName("id"))
		if err != nil {
			writeJSON(cfg, w, http.StatusBadRequest, errorResponse{Error: "quiz id must be an integer"}, errs)
			return
		}

		quiz, err := svc.GetQuestion(id)
		if err != nil {
			writeError(cfg, w, err, errs)
			return
		}

		stripped := stripAnswerKey([]game.Quiz{quiz})

		written := writeJSON(cfg, w, http.StatusOK, stripped[0], errs)

		logf(cfg, "SERVE: Quiz %d (%s) to %s in %s",
			quiz.ID,
			humanReadableSize(int64(written)),
			realIP(r),
			time.Since(startTime).Round(time.Microsecond),
		)
	}
}

func serveSubmitAnswer(cfg *Config, svc *game.Service, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
		startTime := time.Now()

		id, err := strconv.Atoi(p.ByName("id"))
		if err != nil {
			writeJSON(cfg, w, http.StatusBadRequest, errorResponse{Error: "quiz id must be an integer"}, errs)
			return
		}

		var req answerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(cfg, w, http.StatusBadRequest, errorResponse{Error: "invalid request body"}, errs)
			return
		}

		player, correctOption, err := svc.SubmitAnswer(req.Name, id, req.Answer)
		if err != nil {
			writeError(cfg, w, err, errs)
			return
		}

		resp := answerResponse{
			Player:        player,
			Correct:       req.Answer == correctOption,
			CorrectOption: correctOption,
		}

		written := writeJSON(cfg, w, http.StatusOK, resp, errs)

		logf(cfg, "GAMES: %q answered quiz %d (correct: %t, score: %d) (%s) in %s",
			player.Name,
			id,
			resp.Correct,
			player.Score,
			humanReadableSize(int64(written)),
			time.Since(startTime).Round(time.Microsecond),
		)
	}
}

func serveListScores(cfg *Config, svc *game.Service, errs chan<- error) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		startTime := time.Now()

		written := writeJSON(cfg, w, http.StatusOK, svc.ListScores(), errs)

		logf(cfg, "SERVE: Scoreboard (%s) to %s in %s",
			humanReadableSize(int64(written)),
			realIP(r),
			time.Since(startTime).Round(time.Microsecond),
		)
	}
}
