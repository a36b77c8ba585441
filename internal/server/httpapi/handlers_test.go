package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/muli0525/xqpro/internal/analysis"
	"github.com/muli0525/xqpro/internal/engine"
	"github.com/muli0525/xqpro/internal/xiangqi"
)

func newTestHandler() *Handler {
	return NewHandler(func() analysis.Analyzer { return engine.NewEngine() }, nil)
}

func postJSON(t *testing.T, srv *httptest.Server, path string, body, out any) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
	}
	return resp
}

func TestNewGamePlayState(t *testing.T) {
	srv := httptest.NewServer(newTestHandler().Router())
	defer srv.Close()

	var ng NewGameResponse
	postJSON(t, srv, "/api/new_game", struct{}{}, &ng)
	if ng.GameID == "" {
		t.Fatalf("missing game id")
	}
	if ng.Position != xiangqi.InitialFEN {
		t.Fatalf("new game position: got %q", ng.Position)
	}
	if ng.ToMove != 0 {
		t.Fatalf("red moves first, to_move=%d", ng.ToMove)
	}
	// 开局没有任何走法会送将，伪合法即合法
	if len(ng.LegalMoves) != 44 {
		t.Fatalf("opening legal moves: got %d want 44", len(ng.LegalMoves))
	}

	var pr PlayResponse
	postJSON(t, srv, "/api/play", PlayRequest{GameID: ng.GameID, Move: "a9a8"}, &pr)
	if pr.ToMove != 1 {
		t.Fatalf("after red's move it is black's turn, to_move=%d", pr.ToMove)
	}
	if pr.Status != "ongoing" {
		t.Fatalf("status: got %q want ongoing", pr.Status)
	}
	if !strings.Contains(pr.Position, " b ") {
		t.Fatalf("position FEN must carry the side token: %q", pr.Position)
	}

	var st StateResponse
	postJSON(t, srv, "/api/state", StateRequest{GameID: ng.GameID}, &st)
	if st.Position != pr.Position {
		t.Fatalf("state position diverged from play response")
	}
}

func TestPlayRejectsBadInput(t *testing.T) {
	srv := httptest.NewServer(newTestHandler().Router())
	defer srv.Close()

	var ng NewGameResponse
	postJSON(t, srv, "/api/new_game", struct{}{}, &ng)

	// 不存在的对局
	resp := postJSON(t, srv, "/api/play", PlayRequest{GameID: "nope", Move: "a9a8"}, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown game: got %d want 404", resp.StatusCode)
	}

	// 违反走法规则：车斜走
	resp = postJSON(t, srv, "/api/play", PlayRequest{GameID: ng.GameID, Move: "a9b8"}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("illegal move: got %d want 400", resp.StatusCode)
	}

	// 编码都不对
	resp = postJSON(t, srv, "/api/play", PlayRequest{GameID: ng.GameID, Move: "zzz"}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad move code: got %d want 400", resp.StatusCode)
	}
}

func TestPlayRejectsSelfCheck(t *testing.T) {
	h := newTestHandler()
	srv := httptest.NewServer(h.Router())
	defer srv.Close()

	var ng NewGameResponse
	postJSON(t, srv, "/api/new_game", struct{}{}, &ng)

	// 黑车占 d 列，红帅走过去就是送将
	g, err := h.games.Get(ng.GameID)
	if err != nil {
		t.Fatalf("game lookup: %v", err)
	}
	if err := h.games.Update(g.ID, xiangqi.DecodePosition("3r1k3/9/9/9/9/9/9/9/9/4K4 w")); err != nil {
		t.Fatalf("seed position: %v", err)
	}

	resp := postJSON(t, srv, "/api/play", PlayRequest{GameID: ng.GameID, Move: "e9d9"}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("self-check move: got %d want 400", resp.StatusCode)
	}
	var pr PlayResponse
	postJSON(t, srv, "/api/play", PlayRequest{GameID: ng.GameID, Move: "e9e8"}, &pr)
	if pr.Status != "ongoing" {
		t.Fatalf("e9e8 is fine, status=%q", pr.Status)
	}
}

func TestAnalyzeBuiltin(t *testing.T) {
	srv := httptest.NewServer(newTestHandler().Router())
	defer srv.Close()

	var ar AnalyzeResponse
	postJSON(t, srv, "/api/analyze", AnalyzeRequest{Position: xiangqi.InitialFEN, MaxDepth: 2}, &ar)
	if ar.Status != "ok" {
		t.Fatalf("status: got %q want ok", ar.Status)
	}
	if len(ar.BestMove) != 4 {
		t.Fatalf("best move must be a 4-char code, got %q", ar.BestMove)
	}
	if ar.Depth != 2 || ar.Nodes <= 0 {
		t.Fatalf("depth=%d nodes=%d", ar.Depth, ar.Nodes)
	}
}

func TestAnalyzeNoMoves(t *testing.T) {
	srv := httptest.NewServer(newTestHandler().Router())
	defer srv.Close()

	var ar AnalyzeResponse
	postJSON(t, srv, "/api/analyze", AnalyzeRequest{Position: "9/9/9/9/9/9/9/9/9/4K4 b", MaxDepth: 2}, &ar)
	if ar.Status != "no_moves" || ar.BestMove != "" {
		t.Fatalf("got status=%q best=%q want no_moves", ar.Status, ar.BestMove)
	}
}

func TestAnalyzeValidation(t *testing.T) {
	srv := httptest.NewServer(newTestHandler().Router())
	defer srv.Close()

	resp := postJSON(t, srv, "/api/analyze", AnalyzeRequest{MaxDepth: 2}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing position: got %d want 400", resp.StatusCode)
	}
	resp = postJSON(t, srv, "/api/analyze", AnalyzeRequest{Position: xiangqi.InitialFEN, Engine: "external"}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unconfigured external engine: got %d want 400", resp.StatusCode)
	}
	resp = postJSON(t, srv, "/api/analyze", AnalyzeRequest{Position: xiangqi.InitialFEN, Engine: "martian"}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown engine: got %d want 400", resp.StatusCode)
	}
}

func TestAnalysisWebSocketStreamsPerDepth(t *testing.T) {
	srv := httptest.NewServer(newTestHandler().Router())
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/analysis?fen=" +
		"rnbakabnr%2F9%2F1c5c1%2Fp1p1p1p1p%2F9%2F9%2FP1P1P1P1P%2F1C5C1%2F9%2FRNBAKABNR%20w&depth=2"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	var frames []analysisFrame
	for {
		var f analysisFrame
		if err := conn.ReadJSON(&f); err != nil {
			break
		}
		frames = append(frames, f)
		if f.Done {
			break
		}
	}

	if len(frames) != 2 {
		t.Fatalf("frames: got %d want 2", len(frames))
	}
	for i, f := range frames {
		if f.Depth != i+1 {
			t.Fatalf("frame %d depth: got %d want %d", i, f.Depth, i+1)
		}
		if len(f.BestMove) != 4 {
			t.Fatalf("frame %d best move: %q", i, f.BestMove)
		}
	}
	if frames[0].Done || !frames[1].Done {
		t.Fatalf("only the last frame is marked done: %+v", frames)
	}
}
