package uciengine

// 外部引擎的行号从红方底线往上数（0 在下），本引擎的行号从黑方一侧
// 往下数（0 在上）。列字母两边一致，只需翻转行号。

func flipRank(ch byte) (byte, bool) {
	if ch < '0' || ch > '9' {
		return 0, false
	}
	return '9' - (ch - '0'), true
}

func validFile(ch byte) bool { return ch >= 'a' && ch <= 'i' }

// moveCodeToLocal 把外部引擎的 4 字符着法换算成本引擎坐标
func moveCodeToLocal(code string) (string, bool) {
	return remap(code)
}

// MoveCodeToEngine 把本引擎的着法换算成外部引擎坐标（换算是自逆的）
func MoveCodeToEngine(code string) (string, bool) {
	return remap(code)
}

func remap(code string) (string, bool) {
	if len(code) != 4 {
		return "", false
	}
	if !validFile(code[0]) || !validFile(code[2]) {
		return "", false
	}
	fr, ok1 := flipRank(code[1])
	tr, ok2 := flipRank(code[3])
	if !ok1 || !ok2 {
		return "", false
	}
	return string([]byte{code[0], fr, code[2], tr}), true
}
