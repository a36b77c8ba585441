package xiangqi

// 兵/卒：过河前只能往前一格；过河后可以左右平移一格。永远不能后退。
func genSoldierMoves(p *Position, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := p.Board.Squares[from].Side()
	dir := soldierDir(side)

	// 前一格
	r := row + dir
	if onBoard(r, col) {
		to := indexOf(r, col)
		dst := p.Board.Squares[to]
		if dst == 0 || dst.Side() != side {
			*moves = append(*moves, Move{From: from, To: to})
		}
	}

	if !soldierCrossedRiver(side, row) {
		return
	}

	// 过河兵：左右一格
	for _, dc := range [2]int{-1, +1} {
		c := col + dc
		if !onBoard(row, c) {
			continue
		}
		to := indexOf(row, c)
		dst := p.Board.Squares[to]
		if dst == 0 || dst.Side() != side {
			*moves = append(*moves, Move{From: from, To: to})
		}
	}
}
