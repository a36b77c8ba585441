package xiangqi

const (
	Rows       = 10
	Cols       = 9
	NumSquares = Rows * Cols

	// 楚河汉界：第 4 行和第 5 行之间
	RiverRedSide   = 5 // 红方半场最靠前的一行
	RiverBlackSide = 4 // 黑方半场最靠前的一行
)

func indexOf(row, col int) int { return row*Cols + col }
func rowOf(sq int) int         { return sq / Cols }
func colOf(sq int) int         { return sq % Cols }

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

func opposite(side Side) Side {
	if side == Red {
		return Black
	}
	if side == Black {
		return Red
	}
	return NoSide
}

// Opponent 对外暴露换边
func Opponent(side Side) Side { return opposite(side) }

// 兵的前进方向：红在下往上(-1)，黑在上往下(+1)
func soldierDir(side Side) int {
	if side == Red {
		return -1
	}
	if side == Black {
		return +1
	}
	return 0
}

// 是否已经过河
func soldierCrossedRiver(side Side, row int) bool {
	if side == Red {
		return row <= RiverBlackSide
	}
	if side == Black {
		return row >= RiverRedSide
	}
	return false
}

// 象不能过河：落点必须留在自己半场
func elephantOnOwnSide(side Side, row int) bool {
	if side == Red {
		return row >= RiverRedSide
	}
	if side == Black {
		return row <= RiverBlackSide
	}
	return false
}

// 是否在九宫（列 3..5；红 7..9，黑 0..2）
func inPalace(side Side, row, col int) bool {
	if col < 3 || col > 5 {
		return false
	}
	if side == Black {
		return row >= 0 && row <= 2
	}
	if side == Red {
		return row >= 7 && row <= 9
	}
	return false
}

var letterToPieceType = map[rune]PieceType{
	'r': PieceChariot,
	'n': PieceHorse,
	'b': PieceElephant,
	'a': PieceAdvisor,
	'k': PieceGeneral,
	'c': PieceCannon,
	'p': PieceSoldier,
}

var pieceTypeToLetter = map[PieceType]rune{
	PieceChariot:  'r',
	PieceHorse:    'n',
	PieceElephant: 'b',
	PieceAdvisor:  'a',
	PieceGeneral:  'k',
	PieceCannon:   'c',
	PieceSoldier:  'p',
}

// InitialFEN 标准开局
const InitialFEN = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w - - 0 1"

func NewInitialPosition() *Position {
	return DecodePosition(InitialFEN)
}

// FindGeneral 返回 side 方将帅所在格；不存在时返回 -1。
func (p *Position) FindGeneral(side Side) int {
	for sq, pc := range p.Board.Squares {
		if pc != 0 && pc.Side() == side && pc.Type() == PieceGeneral {
			return sq
		}
	}
	return -1
}

// GeneralExists 某方的将帅是否还在场上
func (p *Position) GeneralExists(side Side) bool {
	return p.FindGeneral(side) >= 0
}
