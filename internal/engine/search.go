package engine

import (
	"time"

	"github.com/muli0525/xqpro/internal/xiangqi"
)

const (
	// 正负无穷
	scoreInf = 1_000_000_000
	// 无招判负的基础分。象棋没有逼和一说，无子可动就是输，
	// 按剩余深度加分，保证更快的杀被优先选中。
	lossScore = 100_000_000
)

// 搜索配置
type SearchConfig struct {
	MaxDepth   int           // 最大迭代深度（ply）
	TimeBudget time.Duration // 墙钟时间预算（0 表示不限制）
}

// 搜索结果
type SearchResult struct {
	BestMove *xiangqi.Move // 最佳着法；无合法着法时为 nil
	Score    int           // 负极大分，走子方视角
	Depth    int           // 实际完成的深度
	Nodes    int64         // 节点数
	TimeUsed time.Duration // 花费时间
}

// Engine 是内建的 alpha-beta 搜索器。
// 搜索期间独占持有 pos 并原地走子/悔子，不能并发复用同一个实例。
type Engine struct {
	nodes int64
	start time.Time
}

func NewEngine() *Engine {
	return &Engine{}
}

// Search 迭代加深：从 1 搜到 MaxDepth，时间不够就停在上一个完成的深度。
// 时间只在根着法和深度边界检查，深层递归不会被打断，预算是软上限。
func (e *Engine) Search(pos *xiangqi.Position, cfg SearchConfig) SearchResult {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = 4
	}
	e.nodes = 0
	e.start = time.Now()

	var best SearchResult
	for depth := 1; depth <= cfg.MaxDepth; depth++ {
		// 深度 1、2 总是跑完；之后一旦用掉一半预算就不再开新深度
		if depth > 2 && cfg.TimeBudget > 0 && time.Since(e.start)*2 > cfg.TimeBudget {
			break
		}
		mv, score, completed := e.searchRoot(pos, depth, cfg.TimeBudget)
		if !completed {
			break
		}
		best.Score = score
		best.Depth = depth
		if mv != nil {
			m := *mv
			best.BestMove = &m
		} else {
			// 根节点无招：直接判负，不用再加深
			best.BestMove = nil
			break
		}
	}

	best.Nodes = e.nodes
	best.TimeUsed = time.Since(e.start)
	return best
}

// 根节点循环：主变风格。第一个着法用全窗口建基线，
// 之后先用空窗试探，翻出界再放宽重搜。
func (e *Engine) searchRoot(pos *xiangqi.Position, depth int, budget time.Duration) (*xiangqi.Move, int, bool) {
	moves := pos.GenerateMoves()
	if len(moves) == 0 {
		return nil, -(lossScore + depth), true
	}

	bestScore := -scoreInf
	var bestMove *xiangqi.Move
	for i := range moves {
		// 时间检查只在根着法边界做；深度 1、2 保底跑完，
		// 之后预算用完就放弃本深度剩下的着法
		if depth > 2 && budget > 0 && time.Since(e.start) > budget {
			return nil, 0, false
		}

		mv := &moves[i]
		guard := pos.Push(mv)
		var score int
		if bestMove == nil {
			score = -e.negamax(pos, depth-1, -scoreInf, -bestScore)
		} else {
			score = -e.negamax(pos, depth-1, -bestScore-1, -bestScore)
			if score > bestScore {
				score = -e.negamax(pos, depth-1, -scoreInf, -bestScore)
			}
		}
		guard.Release()

		if score > bestScore {
			bestScore = score
			bestMove = mv
		}
	}
	return bestMove, bestScore, true
}

// 标准负极大 + alpha-beta
func (e *Engine) negamax(pos *xiangqi.Position, depth, alpha, beta int) int {
	e.nodes++

	if depth <= 0 {
		return Evaluate(pos)
	}

	moves := pos.GenerateMoves()
	if len(moves) == 0 {
		return -(lossScore + depth)
	}

	best := -scoreInf
	for i := range moves {
		guard := pos.Push(&moves[i])
		score := -e.negamax(pos, depth-1, -beta, -alpha)
		guard.Release()

		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
		}
		if score >= beta {
			break
		}
	}
	return best
}
