package xiangqi

// 4 字符着法编码：<起点列字母><起点行数字><终点列字母><终点行数字>。
// 列用 'a'+col，行直接用 0..9 的行号，不做翻转——这是本引擎自己的约定，
// 对接外部 UCI 引擎时由桥接层负责换算（见 uciengine）。

// MoveToCode 编码一步走法
func MoveToCode(mv Move) string {
	return string([]byte{
		byte('a' + colOf(mv.From)),
		byte('0' + rowOf(mv.From)),
		byte('a' + colOf(mv.To)),
		byte('0' + rowOf(mv.To)),
	})
}

// CodeToMove 解码；长度不对或字符越界时返回 false，不报错。
func CodeToMove(code string) (Move, bool) {
	if len(code) != 4 {
		return Move{}, false
	}
	fc := int(code[0] - 'a')
	fr := int(code[1] - '0')
	tc := int(code[2] - 'a')
	tr := int(code[3] - '0')
	if !onBoard(fr, fc) || !onBoard(tr, tc) {
		return Move{}, false
	}
	return Move{From: indexOf(fr, fc), To: indexOf(tr, tc)}, true
}
