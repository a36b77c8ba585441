package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/muli0525/xqpro/internal/analysis"
	"github.com/muli0525/xqpro/internal/server/game"
	"github.com/muli0525/xqpro/internal/xiangqi"
)

// Handler 持有对局管理和注入进来的分析器。
// local 是工厂：内建引擎实例不能跨请求并发复用，每次分析起一个新的。
// external 可以为空，没配外挂引擎就只有 builtin。
type Handler struct {
	games    *game.Manager
	local    func() analysis.Analyzer
	external analysis.Analyzer
}

func NewHandler(local func() analysis.Analyzer, external analysis.Analyzer) *Handler {
	return &Handler{
		games:    game.NewManager(),
		local:    local,
		external: external,
	}
}

// Router 组出 /api 和 /ws 路由
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/api/new_game", h.handleNewGame)
	r.Post("/api/play", h.handlePlay)
	r.Post("/api/state", h.handleState)
	r.Post("/api/analyze", h.handleAnalyze)
	r.Get("/ws/analysis", h.handleAnalysisWS)
	return r
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	g := h.games.NewGame()
	writeJSON(w, NewGameResponse{
		GameID:     g.ID,
		Position:   g.Pos.Encode(),
		ToMove:     sideToInt(g.Pos.SideToMove),
		LegalMoves: legalMoveCodes(g.Pos),
	})
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	g, err := h.games.Get(req.GameID)
	if err != nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	mv, ok := xiangqi.CodeToMove(req.Move)
	if !ok {
		http.Error(w, "bad move code", http.StatusBadRequest)
		return
	}

	pos := g.Pos
	// 交互式校验比搜索核心多一层：规则表校验 + 不准送将
	if !pos.ValidateMove(mv) || pos.LeavesGeneralExposed(mv) {
		http.Error(w, "illegal move", http.StatusBadRequest)
		return
	}

	pos.MakeMove(&mv)
	if err := h.games.Update(g.ID, pos); err != nil {
		http.Error(w, "game vanished", http.StatusInternalServerError)
		return
	}

	legal := legalMoveCodes(pos)
	status := "ongoing"
	if len(legal) == 0 {
		status = "no_moves" // 无招即负，轮到谁走谁输
	}
	writeJSON(w, PlayResponse{
		Position:   pos.Encode(),
		ToMove:     sideToInt(pos.SideToMove),
		LegalMoves: legal,
		Status:     status,
	})
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	g, err := h.games.Get(req.GameID)
	if err != nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	legal := legalMoveCodes(g.Pos)
	status := "ongoing"
	if len(legal) == 0 {
		status = "no_moves"
	}
	writeJSON(w, StateResponse{
		Position:   g.Pos.Encode(),
		ToMove:     sideToInt(g.Pos.SideToMove),
		LegalMoves: legal,
		Status:     status,
	})
}

func (h *Handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.Position == "" {
		http.Error(w, "missing position", http.StatusBadRequest)
		return
	}

	analyzer, err := h.pickAnalyzer(req.Engine)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := analyzer.Analyze(req.Position, limitsFromRequest(req))
	if err != nil {
		log.Printf("analyze failed: %v", err)
		http.Error(w, "analysis failed", http.StatusBadGateway)
		return
	}

	status := "ok"
	if res.BestMove == "" {
		status = "no_moves"
	}
	writeJSON(w, AnalyzeResponse{
		BestMove: res.BestMove,
		Score:    res.Score,
		Depth:    res.Depth,
		Nodes:    res.Nodes,
		TimeMs:   res.Elapsed.Milliseconds(),
		Status:   status,
	})
}

func (h *Handler) pickAnalyzer(name string) (analysis.Analyzer, error) {
	switch name {
	case "", "builtin":
		return h.local(), nil
	case "external":
		if h.external == nil {
			return nil, errExternalNotConfigured
		}
		return h.external, nil
	default:
		return nil, errUnknownEngine
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
