package engine

import (
	"github.com/muli0525/xqpro/internal/analysis"
	"github.com/muli0525/xqpro/internal/xiangqi"
)

// Analyze 让内建搜索实现 analysis.Analyzer。
// FEN 解析是宽松的，坏输入得到空盘 + 无招结果，不报错。
func (e *Engine) Analyze(fen string, limits analysis.Limits) (analysis.Result, error) {
	pos := xiangqi.DecodePosition(fen)
	res := e.Search(pos, SearchConfig{
		MaxDepth:   limits.Depth,
		TimeBudget: limits.MoveTime,
	})

	out := analysis.Result{
		Score:   res.Score,
		Depth:   res.Depth,
		Nodes:   res.Nodes,
		Elapsed: res.TimeUsed,
	}
	if res.BestMove != nil {
		out.BestMove = xiangqi.MoveToCode(*res.BestMove)
	}
	return out, nil
}

var _ analysis.Analyzer = (*Engine)(nil)
