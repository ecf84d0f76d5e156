package pp

import "testing"

func TestEmptyIsZeroWidth(t *testing.T) {
	if got := ToString(LF, 80, Empty()); got != "" {
		t.Errorf("ToString(Empty()) = %q, want empty", got)
	}
}

func TestStringRendersLiteral(t *testing.T) {
	if got := ToString(LF, 80, String("hello", 5)); got != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}
}

func TestBlankRendersSpaces(t *testing.T) {
	if got := ToString(LF, 80, Blank(3)); got != "   " {
		t.Errorf("got %q, want 3 spaces", got)
	}
}

func TestBlankClampsNegativeToZero(t *testing.T) {
	if got := ToString(LF, 80, Blank(-5)); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestSpaceIsSingleBlank(t *testing.T) {
	if got := ToString(LF, 80, Space()); got != " " {
		t.Errorf("got %q, want single space", got)
	}
}

func TestHardlineAlwaysBreaks(t *testing.T) {
	d := String("a", 1).Cat(Hardline()).Cat(String("b", 1))
	if got, want := ToString(LF, 80, d), "a\nb"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestHardlineUsesCRLF(t *testing.T) {
	d := String("a", 1).Cat(Hardline()).Cat(String("b", 1))
	if got, want := ToString(CRLF, 80, d), "a\r\nb"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPhantomHardlineBreaksButDoesNotTerminateWidth(t *testing.T) {
	// A phantom hardline still emits a real newline...
	d := String("a", 1).Cat(PhantomHardline()).Cat(String("b", 1))
	if got, want := ToString(LF, 80, d), "a\nb"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	// ...but its cached width does not absorb what follows the way a real
	// Hardline's break-terminated width would.
	phantomFollowed := Concat(PhantomHardline(), String("xyz", 3))
	if got, want := flatWidthOf(&phantomFollowed), withoutBreak(3); got != want {
		t.Errorf("flatWidth = %+v, want %+v", got, want)
	}
	realFollowed := Concat(Hardline(), String("xyz", 3))
	if got, want := flatWidthOf(&realFollowed), withBreak(0); got != want {
		t.Errorf("flatWidth = %+v, want %+v", got, want)
	}
}

func TestBreakHintFallsBackWhenFlat(t *testing.T) {
	d := Group(String("a", 1).Cat(BreakHint(String("-", 1))).Cat(String("b", 1)))
	if got, want := ToString(LF, 80, d), "a-b"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBreakFallsBackToNothing(t *testing.T) {
	d := Group(String("a", 1).Cat(Break()).Cat(String("b", 1)))
	if got, want := ToString(LF, 80, d), "ab"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestIfBrokenFlatBranch(t *testing.T) {
	d := Group(IfBroken(String("broken", 6), String("flat", 4)))
	if got, want := ToString(LF, 80, d), "flat"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestIfBrokenBreakingBranch(t *testing.T) {
	// An Auto group that does not fit is broken from its start, so an
	// IfBroken ahead of the group's first break already renders its
	// breaking branch.
	d := Group(
		IfBroken(String("broken", 6), String("flat", 4)).
			Cat(BreakableSpace()).
			Cat(IfBroken(String("broken", 6), String("flat", 4))).
			Cat(String("xxxxxxxxxxxxxxxxxxxx", 20)),
	)
	got := ToString(LF, 5, d)
	want := "broken\nbrokenxxxxxxxxxxxxxxxxxxxx"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestIndentClampsNegativeToZero(t *testing.T) {
	d := Group(Indent(-2, String("a", 1).Cat(BreakableSpace()).Cat(String("b", 1))))
	if got, want := ToString(LF, 1, d), "a\nb"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGroupWithPrintWidthOverridesMeasurement(t *testing.T) {
	// The inner hardline would normally make this group's natural width
	// break-terminated at 1; WithPrintWidth overrides the measurement used
	// by an enclosing Auto decision.
	inner := Group(String("a", 1).Cat(Hardline()).Cat(String("b", 1)), WithPrintWidth(100))
	outer := Group(String("x", 1).Cat(BreakableSpace()).Cat(inner))
	got := ToString(LF, 10, outer)
	want := "x\na\nb"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestConcatChainRendersLeftToRight(t *testing.T) {
	d := String("a", 1).Cat(String("b", 1)).Cat(String("c", 1))
	if got, want := ToString(LF, 80, d), "abc"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
