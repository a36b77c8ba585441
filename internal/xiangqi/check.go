package xiangqi

// IsAttacked 判断 sq 是否被 bySide 一方攻击到。
// 走法模拟：对方任何一个子能走到这个格子就算被攻击。
// 士、象永远够不到将，直接跳过。
func (p *Position) IsAttacked(sq int, bySide Side) bool {
	for s := 0; s < NumSquares; s++ {
		pc := p.Board.Squares[s]
		if pc == 0 || pc.Side() != bySide {
			continue
		}
		pt := pc.Type()
		if pt == PieceElephant || pt == PieceAdvisor {
			continue
		}
		var moves []Move
		pieceMovers[pt](p, s, &moves)
		for _, mv := range moves {
			if mv.To == sq {
				return true
			}
		}
	}
	return false
}

// IsInCheck 判断 side 一方的将帅是否被将军
func (p *Position) IsInCheck(side Side) bool {
	sq := p.FindGeneral(side)
	if sq < 0 {
		return false
	}
	return p.IsAttacked(sq, opposite(side))
}

// LeavesGeneralExposed 判断走完 mv 之后自己的将帅是否可被对方下一步吃掉。
// 搜索核心不做这层过滤（飞将吃法 + 无招判负已经隐式覆盖），
// 交互式落子校验需要的话在这里补。
func (p *Position) LeavesGeneralExposed(mv Move) bool {
	mover := p.SideToMove
	guard := p.Push(&mv)
	defer guard.Release()
	return p.IsInCheck(mover)
}
