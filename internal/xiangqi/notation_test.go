package xiangqi

import "testing"

func TestMoveCodeRoundTrip(t *testing.T) {
	cases := []struct {
		mv   Move
		code string
	}{
		{Move{From: indexOf(9, 0), To: indexOf(8, 0)}, "a9a8"},
		{Move{From: indexOf(0, 8), To: indexOf(9, 8)}, "i0i9"},
		{Move{From: indexOf(6, 4), To: indexOf(5, 4)}, "e6e5"},
	}
	for _, c := range cases {
		if got := MoveToCode(c.mv); got != c.code {
			t.Fatalf("MoveToCode: got %q want %q", got, c.code)
		}
		mv, ok := CodeToMove(c.code)
		if !ok {
			t.Fatalf("CodeToMove(%q) rejected", c.code)
		}
		if mv.From != c.mv.From || mv.To != c.mv.To {
			t.Fatalf("CodeToMove(%q): got %+v want %+v", c.code, mv, c.mv)
		}
	}
}

func TestCodeToMoveRejectsMalformedInput(t *testing.T) {
	for _, bad := range []string{
		"",
		"e6e",
		"e6e5x",
		"j0a0", // 列越界
		"aXa0", // 行不是数字
		"e6E5", // 大写不是合法列字母
	} {
		if _, ok := CodeToMove(bad); ok {
			t.Fatalf("CodeToMove(%q) should be rejected", bad)
		}
	}
}
