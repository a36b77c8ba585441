package engine

import (
	"github.com/muli0525/xqpro/internal/xiangqi"
)

// 基础子力估值。将帅给一个压倒一切的值，丢将的局面材料分直接塌掉。
var pieceValue = map[xiangqi.PieceType]int{
	xiangqi.PieceGeneral:  1_000_000,
	xiangqi.PieceChariot:  600,
	xiangqi.PieceCannon:   300,
	xiangqi.PieceHorse:    290,
	xiangqi.PieceElephant: 120,
	xiangqi.PieceAdvisor:  120,
	xiangqi.PieceSoldier:  70,
}

const (
	soldierCrossedBonus = 30 // 过河兵
	chariotMobilityStep = 4  // 车每个可达空格
	centerWeight        = 3  // 中路权重，按离中线的距离衰减
)

// Evaluate 从当前走子方视角打分：正数对走子方有利。
// 先按红方减黑方算总分，黑方走棋时整体取反。
func Evaluate(pos *xiangqi.Position) int {
	score := 0
	for sq := 0; sq < xiangqi.NumSquares; sq++ {
		pc := pos.Board.Squares[sq]
		if pc == 0 {
			continue
		}
		val := pieceValue[pc.Type()] + positionalBonus(pos, sq, pc)
		if pc.Side() == xiangqi.Red {
			score += val
		} else {
			score -= val
		}
	}
	if pos.SideToMove == xiangqi.Black {
		return -score
	}
	return score
}

// 位置加成（从该子所属方视角，外面再套正负号）
func positionalBonus(pos *xiangqi.Position, sq int, pc xiangqi.Piece) int {
	row, col := sq/xiangqi.Cols, sq%xiangqi.Cols

	// 中路分：离中线（第 4 列）越远越低
	centerDist := col - xiangqi.Cols/2
	if centerDist < 0 {
		centerDist = -centerDist
	}
	bonus := (4 - centerDist) * centerWeight

	switch pc.Type() {
	case xiangqi.PieceSoldier:
		if crossedRiver(pc.Side(), row) {
			bonus += soldierCrossedBonus
		}
	case xiangqi.PieceChariot:
		bonus += chariotMobilityStep * chariotMobility(pos, sq)
	}
	return bonus
}

// 车的机动力：四个方向上直线可达的空格数
func chariotMobility(pos *xiangqi.Position, sq int) int {
	row, col := sq/xiangqi.Cols, sq%xiangqi.Cols
	dirs := [4][2]int{{-1, 0}, {+1, 0}, {0, -1}, {0, +1}}
	n := 0
	for _, d := range dirs {
		r, c := row+d[0], col+d[1]
		for r >= 0 && r < xiangqi.Rows && c >= 0 && c < xiangqi.Cols {
			if pos.Board.Squares[r*xiangqi.Cols+c] != 0 {
				break
			}
			n++
			r += d[0]
			c += d[1]
		}
	}
	return n
}

func crossedRiver(side xiangqi.Side, row int) bool {
	if side == xiangqi.Red {
		return row <= 4
	}
	return row >= 5
}
