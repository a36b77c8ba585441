package xiangqi

var lineDirs = [4][2]int{{-1, 0}, {+1, 0}, {0, -1}, {0, +1}}
var diagDirs = [4][2]int{{-1, -1}, {-1, +1}, {+1, -1}, {+1, +1}}

// 车：横竖随便走，撞到第一个子为止，敌子可吃
func genChariotMoves(p *Position, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := p.Board.Squares[from].Side()
	for _, d := range lineDirs {
		r, c := row+d[0], col+d[1]
		for onBoard(r, c) {
			to := indexOf(r, c)
			pc := p.Board.Squares[to]
			if pc == 0 {
				*moves = append(*moves, Move{From: from, To: to})
			} else {
				if pc.Side() != side {
					*moves = append(*moves, Move{From: from, To: to})
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
}

// 炮：不吃子时走车路（路径全空）；吃子必须隔恰好一个炮架
func genCannonMoves(p *Position, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := p.Board.Squares[from].Side()
	for _, d := range lineDirs {
		r, c := row+d[0], col+d[1]

		// 走子阶段：直到第一个棋子
		for onBoard(r, c) {
			to := indexOf(r, c)
			if p.Board.Squares[to] != 0 {
				break
			}
			*moves = append(*moves, Move{From: from, To: to})
			r += d[0]
			c += d[1]
		}

		// 吃子阶段：越过炮架，遇到的第一个子若是敌子可吃
		r += d[0]
		c += d[1]
		for onBoard(r, c) {
			to := indexOf(r, c)
			pc := p.Board.Squares[to]
			if pc != 0 {
				if pc.Side() != side {
					*moves = append(*moves, Move{From: from, To: to})
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
}

// 象：田字，塞象眼不能走，不能过河
func genElephantMoves(p *Position, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := p.Board.Squares[from].Side()
	for _, d := range diagDirs {
		r := row + 2*d[0]
		c := col + 2*d[1]
		if !onBoard(r, c) {
			continue
		}
		if p.Board.Squares[indexOf(row+d[0], col+d[1])] != 0 {
			continue // 象眼被塞
		}
		if !elephantOnOwnSide(side, r) {
			continue
		}
		to := indexOf(r, c)
		dst := p.Board.Squares[to]
		if dst == 0 || dst.Side() != side {
			*moves = append(*moves, Move{From: from, To: to})
		}
	}
}

// 士：九宫内斜走一格
func genAdvisorMoves(p *Position, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := p.Board.Squares[from].Side()
	for _, d := range diagDirs {
		r := row + d[0]
		c := col + d[1]
		if !onBoard(r, c) || !inPalace(side, r, c) {
			continue
		}
		to := indexOf(r, c)
		dst := p.Board.Squares[to]
		if dst == 0 || dst.Side() != side {
			*moves = append(*moves, Move{From: from, To: to})
		}
	}
}

// 将/帅：九宫内直走一格，外加“飞将”吃法。
// 对脸规则在这里表达为一步吃：沿本列往前扫，第一个挡子若是敌将即可直取。
func genGeneralMoves(p *Position, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := p.Board.Squares[from].Side()
	for _, d := range lineDirs {
		r := row + d[0]
		c := col + d[1]
		if !onBoard(r, c) || !inPalace(side, r, c) {
			continue
		}
		to := indexOf(r, c)
		dst := p.Board.Squares[to]
		if dst == 0 || dst.Side() != side {
			*moves = append(*moves, Move{From: from, To: to})
		}
	}

	// 飞将
	dir := soldierDir(side)
	for r := row + dir; r >= 0 && r < Rows; r += dir {
		to := indexOf(r, col)
		pc := p.Board.Squares[to]
		if pc == 0 {
			continue
		}
		if pc.Side() != side && pc.Type() == PieceGeneral {
			*moves = append(*moves, Move{From: from, To: to})
		}
		break
	}
}
