package httpapi

import "github.com/muli0525/xqpro/internal/xiangqi"

// 前端用的着法结构：4 字符编码
type MoveDTO struct {
	Code string `json:"code"`
}

type NewGameResponse struct {
	GameID     string   `json:"game_id"`
	Position   string   `json:"position"` // FEN
	ToMove     int      `json:"to_move"`  // 0=红(w), 1=黑(b)
	LegalMoves []string `json:"legal_moves"`
}

type PlayRequest struct {
	GameID string `json:"game_id"`
	Move   string `json:"move"` // 4 字符编码
}

type PlayResponse struct {
	Position   string   `json:"position"`
	ToMove     int      `json:"to_move"`
	LegalMoves []string `json:"legal_moves"`
	Status     string   `json:"status"` // "ongoing" / "no_moves"
}

type StateRequest struct {
	GameID string `json:"game_id"`
}

type StateResponse struct {
	Position   string   `json:"position"`
	ToMove     int      `json:"to_move"`
	LegalMoves []string `json:"legal_moves"`
	Status     string   `json:"status"`
}

// AnalyzeRequest 请求对一个 FEN 局面做分析
type AnalyzeRequest struct {
	Position string `json:"position"`          // FEN
	MaxDepth int    `json:"max_depth"`
	TimeMs   int64  `json:"time_ms"`
	Engine   string `json:"engine,omitempty"` // "builtin"（默认）或 "external"
}

type AnalyzeResponse struct {
	BestMove string `json:"best_move"` // 空串 = 无招
	Score    int    `json:"score"`
	Depth    int    `json:"depth"`
	Nodes    int64  `json:"nodes"`
	TimeMs   int64  `json:"time_ms"`
	Status   string `json:"status"` // "ok" / "no_moves"
}

func sideToInt(s xiangqi.Side) int {
	if s == xiangqi.Black {
		return 1
	}
	return 0
}

// 交互式合法着法：伪合法之上再过滤掉送将的走法
func legalMoveCodes(pos *xiangqi.Position) []string {
	moves := pos.GenerateMoves()
	out := make([]string, 0, len(moves))
	for _, mv := range moves {
		if pos.LeavesGeneralExposed(mv) {
			continue
		}
		out = append(out, xiangqi.MoveToCode(mv))
	}
	return out
}
