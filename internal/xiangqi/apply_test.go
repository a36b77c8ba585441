package xiangqi

import (
	"testing"
)

func TestMakeUndoRestoresPositionExactly(t *testing.T) {
	for _, fen := range []string{
		InitialFEN,
		"9/4r4/4n4/4p4/9/4C4/9/9/9/4K4 w",
		"4k4/9/9/9/9/9/9/9/9/4K4 b",
	} {
		pos := DecodePosition(fen)
		before := *pos
		for _, mv := range pos.GenerateMoves() {
			pos.MakeMove(&mv)
			pos.UndoMove(&mv)
			if *pos != before {
				t.Fatalf("fen %q: make/undo of %s did not restore the position", fen, MoveToCode(mv))
			}
		}
	}
}

func TestMakeMoveFlipsSideAndRecordsCapture(t *testing.T) {
	pos := DecodePosition("9/4r4/9/4p4/9/4C4/9/9/9/9 w")
	mv, _ := CodeToMove("e5e1")
	pos.MakeMove(&mv)

	if pos.SideToMove != Black {
		t.Fatalf("side must flip after a move")
	}
	if mv.Captured.Type() != PieceChariot || mv.Captured.Side() != Black {
		t.Fatalf("captured piece not recorded: %v", mv.Captured)
	}
	if pc := pos.Board.Squares[mv.To]; pc.Type() != PieceCannon || pc.Side() != Red {
		t.Fatalf("mover not placed on target square")
	}
	if pos.Board.Squares[mv.From] != 0 {
		t.Fatalf("origin square must be emptied")
	}
}

func TestMoveGuardUndoesOnEveryPath(t *testing.T) {
	pos := NewInitialPosition()
	before := *pos

	mv, _ := CodeToMove("e6e5")
	func() {
		guard := pos.Push(&mv)
		defer guard.Release()
		// 提前返回：守卫照样回退
	}()
	if *pos != before {
		t.Fatalf("guard did not undo on early return")
	}

	// 重复 Release 只生效一次
	guard := pos.Push(&mv)
	guard.Release()
	guard.Release()
	if *pos != before {
		t.Fatalf("double Release corrupted the position")
	}
}

func TestNestedGuardsUnwindLIFO(t *testing.T) {
	pos := NewInitialPosition()
	before := *pos

	m1, _ := CodeToMove("e6e5")
	m2, _ := CodeToMove("e3e4")
	g1 := pos.Push(&m1)
	g2 := pos.Push(&m2)
	g2.Release()
	g1.Release()

	if *pos != before {
		t.Fatalf("nested make/undo did not restore the position")
	}
}
