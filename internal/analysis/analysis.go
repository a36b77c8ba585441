// Package analysis 定义“局面分析器”能力接口。
// 内建搜索和外挂 UCI 引擎都实现它，调用方按需注入，不走全局单例。
package analysis

import "time"

// Limits 分析限制：两者都给时以时间为准
type Limits struct {
	Depth    int           // 最大深度
	MoveTime time.Duration // 墙钟时间预算
}

// Result 统一的分析结果。BestMove 是 4 字符着法编码，无招时为空串。
type Result struct {
	BestMove string
	Score    int // 走子方视角，厘兵单位随实现
	Depth    int
	Nodes    int64
	Elapsed  time.Duration
}

// Analyzer 接收 FEN 局面，返回推荐着法
type Analyzer interface {
	Analyze(fen string, limits Limits) (Result, error)
}
