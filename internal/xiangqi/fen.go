package xiangqi

import (
	"strings"
	"unicode"
)

// Encode 输出 FEN：10 行用 "/" 隔开，空位数字压缩，空格后 w/b 表示走子方。
// 内部不记录回合计数，但下游 UCI 消费方要求完整后缀，固定补 " - - 0 1"。
func (p *Position) Encode() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := p.Board.Squares[indexOf(r, c)]
			if pc == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			ch := pieceTypeToLetter[pc.Type()]
			if pc.Side() == Red {
				ch = unicode.ToUpper(ch)
			}
			sb.WriteRune(ch)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if p.SideToMove == Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	sb.WriteString(" - - 0 1")
	return sb.String()
}

// DecodePosition 宽松解析：坏行清空、越界的行列直接丢弃，永远不报错。
// 局面识别那头给过来的字符串可能不完整，校验是调用方的事。
func DecodePosition(fen string) *Position {
	pos := &Position{SideToMove: Red}

	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return pos
	}

	rows := strings.Split(parts[0], "/")
	for r := 0; r < len(rows) && r < Rows; r++ {
		c := 0
		for _, ch := range rows[r] {
			if c >= Cols {
				break
			}
			if ch >= '1' && ch <= '9' {
				c += int(ch - '0')
				continue
			}
			pt, ok := letterToPieceType[unicode.ToLower(ch)]
			if !ok {
				// 坏行：这一行剩下的全当空
				break
			}
			side := Black
			if unicode.IsUpper(ch) {
				side = Red
			}
			pos.Board.Squares[indexOf(r, c)] = makePiece(side, pt)
			c++
		}
	}

	if len(parts) > 1 && parts[1] == "b" {
		pos.SideToMove = Black
	}
	// 后面的 halfmove/fullmove 字段接受但忽略
	return pos
}
