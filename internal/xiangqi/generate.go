package xiangqi

// 每类棋子一个走法函数。生成全部走法和校验单步共用这一张表，
// 两边永远不会对规则产生分歧。
type moverFunc func(p *Position, from int, moves *[]Move)

var pieceMovers = [...]moverFunc{
	PieceChariot:  genChariotMoves,
	PieceHorse:    genHorseMoves,
	PieceCannon:   genCannonMoves,
	PieceElephant: genElephantMoves,
	PieceAdvisor:  genAdvisorMoves,
	PieceGeneral:  genGeneralMoves,
	PieceSoldier:  genSoldierMoves,
}

// GenerateMovesForSide 生成指定一方的伪合法走法。
// 唯一的过滤是不吃自己的子；会不会送将由上层自己决定（见搜索的终局计分）。
func (p *Position) GenerateMovesForSide(side Side) []Move {
	var moves []Move
	for sq := 0; sq < NumSquares; sq++ {
		pc := p.Board.Squares[sq]
		if pc == 0 || pc.Side() != side {
			continue
		}
		pieceMovers[pc.Type()](p, sq, &moves)
	}
	return moves
}

// GenerateMoves 生成当前走子方的伪合法走法
func (p *Position) GenerateMoves() []Move {
	return p.GenerateMovesForSide(p.SideToMove)
}

// ValidateMove 校验一步提议的走法是否符合该棋子的走法规则。
// 只查伪合法性；走同一张规则表，所以和 GenerateMoves 的结论一定一致。
func (p *Position) ValidateMove(mv Move) bool {
	if mv.From < 0 || mv.From >= NumSquares || mv.To < 0 || mv.To >= NumSquares {
		return false
	}
	pc := p.Board.Squares[mv.From]
	if pc == 0 || pc.Side() != p.SideToMove {
		return false
	}
	var moves []Move
	pieceMovers[pc.Type()](p, mv.From, &moves)
	for i := range moves {
		if moves[i].To == mv.To {
			return true
		}
	}
	return false
}
