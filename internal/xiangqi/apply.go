package xiangqi

// MakeMove 原地走子：from 的子搬到 to，覆盖原有内容，被吃子记进 mv.Captured。
// 不做合法性校验，那是走法生成的事。走完换边。
func (p *Position) MakeMove(mv *Move) {
	mv.Captured = p.Board.Squares[mv.To]
	p.Board.Squares[mv.To] = p.Board.Squares[mv.From]
	p.Board.Squares[mv.From] = 0
	p.SideToMove = opposite(p.SideToMove)
}

// UndoMove 必须紧跟对应的 MakeMove，LIFO 顺序回退。
func (p *Position) UndoMove(mv *Move) {
	p.SideToMove = opposite(p.SideToMove)
	p.Board.Squares[mv.From] = p.Board.Squares[mv.To]
	p.Board.Squares[mv.To] = mv.Captured
}

// MoveGuard 把 make/undo 配成一对：Push 走子，Release 保证回退。
// 搜索里所有提前 return（剪枝）的路径统一 defer Release，兄弟分支不会被污染。
type MoveGuard struct {
	pos    *Position
	mv     *Move
	undone bool
}

// Push 走一步并返回对应的回退守卫
func (p *Position) Push(mv *Move) *MoveGuard {
	p.MakeMove(mv)
	return &MoveGuard{pos: p, mv: mv}
}

// Release 回退这一步；重复调用只生效一次。
func (g *MoveGuard) Release() {
	if g.undone {
		return
	}
	g.undone = true
	g.pos.UndoMove(g.mv)
}
