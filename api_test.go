package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Seednode/quizbox/game"
	"github.com/julienschmidt/httprouter"
)

func newTestServer(t *testing.T) (*httptest.Server, *game.Service) {
	t.Helper()

	cfg := &Config{
		bind: "127.0.0.1",
		port: 8080,
	}

	catalog, err := game.NewCatalog(game.DefaultQuestions())
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	svc := game.NewService(catalog)
	hub := newHub(svc)
	svc.OnChange(hub.notifyScore)
	go hub.run()

	mux := httprouter.New()
	errs := make(chan error, 64)
	registerRoutes(cfg, svc, hub, mux, errs)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv, svc
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, into any) {
	t.Helper()
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestRegisterPlayerEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/players", registerRequest{Name: "Ana"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var p game.Player
	decodeBody(t, resp, &p)
	if p.Name != "Ana" || p.Score != 0 {
		t.Fatalf("player = %+v, want {Ana 0}", p)
	}

	resp = postJSON(t, srv.URL+"/api/players", registerRequest{Name: "Ana"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate status = %d, want 409", resp.StatusCode)
	}

	resp = postJSON(t, srv.URL+"/api/players", registerRequest{Name: "   "})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("blank name status = %d, want 400", resp.StatusCode)
	}

	resp, err := http.Post(srv.URL+"/api/players", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("malformed body status = %d, want 400", resp.StatusCode)
	}
}

func TestListQuizzesEndpointStripsAnswerKey(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/quizzes")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if bytes.Contains(body, []byte("correct_option")) {
		t.Fatalf("quiz listing leaks the answer key: %s", body)
	}

	var quizzes []publicQuiz
	if err := json.Unmarshal(body, &quizzes); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(quizzes) != 6 {
		t.Fatalf("len = %d, want 6", len(quizzes))
	}
	if quizzes[0].ID != 1 || len(quizzes[0].Options) != game.OptionCount {
		t.Fatalf("quizzes[0] = %+v", quizzes[0])
	}
}

func TestGetQuestionEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/quizzes/2")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var quiz publicQuiz
	decodeBody(t, resp, &quiz)
	if quiz.ID != 2 || quiz.Options[1] != "Albert Einstein" {
		t.Fatalf("quiz = %+v", quiz)
	}

	resp, err = http.Get(srv.URL + "/api/quizzes/999")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing quiz status = %d, want 404", resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/api/quizzes/abc")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("non-integer id status = %d, want 400", resp.StatusCode)
	}
}

func TestSubmitAnswerEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/players", registerRequest{Name: "Ana"})
	resp.Body.Close()

	resp = postJSON(t, srv.URL+"/api/quizzes/2/answers", answerRequest{Name: "Ana", Answer: 2})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var result answerResponse
	decodeBody(t, resp, &result)
	if !result.Correct || result.CorrectOption != 2 || result.Player.Score != 1 {
		t.Fatalf("result = %+v, want correct with score 1", result)
	}

	resp = postJSON(t, srv.URL+"/api/quizzes/2/answers", answerRequest{Name: "Ana", Answer: 1})
	decodeBody(t, resp, &result)
	if result.Correct || result.Player.Score != 1 {
		t.Fatalf("result = %+v, want wrong answer with score unchanged at 1", result)
	}

	resp = postJSON(t, srv.URL+"/api/quizzes/2/answers", answerRequest{Name: "Ghost", Answer: 1})
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown player status = %d, want 404", resp.StatusCode)
	}

	resp = postJSON(t, srv.URL+"/api/quizzes/999/answers", answerRequest{Name: "Ana", Answer: 1})
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown quiz status = %d, want 404", resp.StatusCode)
	}
}

func TestListScoresEndpoint(t *testing.T) {
	srv, svc := newTestServer(t)

	for i := 0; i < 3; i++ {
		if _, err := svc.RegisterPlayer(fmt.Sprintf("player-%d", i)); err != nil {
			t.Fatalf("RegisterPlayer: %v", err)
		}
	}
	if _, _, err := svc.SubmitAnswer("player-1", 6, 1); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}

	resp, err := http.Get(srv.URL + "/api/scores")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var players []game.Player
	decodeBody(t, resp, &players)
	if len(players) != 3 {
		t.Fatalf("len = %d, want 3", len(players))
	}
	if players[1].Name != "player-1" || players[1].Score != 1 {
		t.Fatalf("players[1] = %+v, want {player-1 1}", players[1])
	}
}

func TestUtilityEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "Ok\n" {
		t.Fatalf("healthz body = %q, want Ok", body)
	}

	resp, err = http.Get(srv.URL + "/version")
	if err != nil {
		t.Fatalf("GET /version: %v", err)
	}
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.HasPrefix(string(body), "quizbox v") {
		t.Fatalf("version body = %q", body)
	}

	resp, err = http.Get(srv.URL + "/qr")
	if err != nil {
		t.Fatalf("GET /qr: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("qr status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Fatalf("qr content type = %q, want image/png", ct)
	}
}
