package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"github.com/muli0525/xqpro/internal/analysis"
)

var (
	errExternalNotConfigured = errors.New("external engine not configured")
	errUnknownEngine         = errors.New("unknown engine")
)

func limitsFromRequest(req AnalyzeRequest) analysis.Limits {
	limits := analysis.Limits{Depth: req.MaxDepth}
	if limits.Depth <= 0 {
		limits.Depth = 4
	}
	if req.TimeMs > 0 {
		limits.MoveTime = time.Duration(req.TimeMs) * time.Millisecond
	}
	return limits
}

// 每个深度推一帧的分析进度
type analysisFrame struct {
	Depth    int    `json:"depth"`
	BestMove string `json:"best_move"`
	Score    int    `json:"score"`
	Nodes    int64  `json:"nodes"`
	TimeMs   int64  `json:"time_ms"`
	Done     bool   `json:"done"`
}

// handleAnalysisWS 在 WebSocket 上逐深度推送内建搜索的结果：
// GET /ws/analysis?fen=...&depth=N。客户端断开就停。
func (h *Handler) handleAnalysisWS(w http.ResponseWriter, r *http.Request) {
	fen := r.URL.Query().Get("fen")
	if fen == "" {
		http.Error(w, "missing fen", http.StatusBadRequest)
		return
	}
	maxDepth, _ := strconv.Atoi(r.URL.Query().Get("depth"))
	if maxDepth <= 0 {
		maxDepth = 6
	}

	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	for depth := 1; depth <= maxDepth; depth++ {
		res, err := h.local().Analyze(fen, analysis.Limits{Depth: depth})
		if err != nil {
			return
		}
		frame := analysisFrame{
			Depth:    res.Depth,
			BestMove: res.BestMove,
			Score:    res.Score,
			Nodes:    res.Nodes,
			TimeMs:   res.Elapsed.Milliseconds(),
			Done:     depth == maxDepth || res.BestMove == "",
		}
		if err := conn.WriteJSON(frame); err != nil {
			return
		}
		if res.BestMove == "" {
			return
		}
	}
}
