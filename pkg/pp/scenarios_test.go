package pp

import "testing"

// Scenario tests cover representative end-to-end layout cases, eol LF
// throughout.

func TestScenarioFlatFit(t *testing.T) {
	d := Group(String("foo", 3).Cat(BreakableSpace()).Cat(String("bar", 3)))
	got := ToString(LF, 80, d)
	want := "foo bar"
	if got != want {
		t.Errorf("ToString = %q, want %q", got, want)
	}
}

func TestScenarioForcedBreak(t *testing.T) {
	d := Group(String("foo", 3).Cat(BreakableSpace()).Cat(String("bar", 3)))
	got := ToString(LF, 5, d)
	want := "foo\nbar"
	if got != want {
		t.Errorf("ToString = %q, want %q", got, want)
	}
}

func TestScenarioIndentActivatesOnBreak(t *testing.T) {
	d := Group(Indent(2, String("foo", 3).Cat(BreakableSpace()).Cat(String("bar", 3))))
	got := ToString(LF, 5, d)
	want := "foo\n  bar"
	if got != want {
		t.Errorf("ToString = %q, want %q", got, want)
	}
}

func TestScenarioIndentInertWhenFlat(t *testing.T) {
	d := Group(Indent(2, String("foo", 3).Cat(BreakableSpace()).Cat(String("bar", 3))))
	got := ToString(LF, 80, d)
	want := "foo bar"
	if got != want {
		t.Errorf("ToString = %q, want %q", got, want)
	}
}

func TestScenarioTrailingCommaInBrokenList(t *testing.T) {
	inner := String("a", 1).Cat(CommaBreakableSpace()).Cat(String("b", 1)).Cat(TrailingComma())
	d := Group(ListBrackets(nil, inner))

	if got, want := ToString(LF, 3, d), "[a,\nb,]"; got != want {
		t.Errorf("ToString(width=3) = %q, want %q", got, want)
	}
	if got, want := ToString(LF, 80, d), "[a, b]"; got != want {
		t.Errorf("ToString(width=80) = %q, want %q", got, want)
	}
}

func TestScenarioFitGroupsKeepsSubgroupsFlat(t *testing.T) {
	d := Group(
		Group(String("aaaa", 4)).
			Cat(BreakableSpace()).
			Cat(Group(String("bbbb", 4))).
			Cat(BreakableSpace()).
			Cat(Group(String("cccc", 4))),
		WithGroupKind(FitGroups),
	)
	got := ToString(LF, 9, d)
	want := "aaaa bbbb\ncccc"
	if got != want {
		t.Errorf("ToString = %q, want %q", got, want)
	}
}

func TestScenarioGroupBreakerForcesBreakingMode(t *testing.T) {
	d := Group(GroupBreaker().Cat(String("a", 1)).Cat(BreakableSpace()).Cat(String("b", 1)))
	got := ToString(LF, 80, d)
	want := "a\nb"
	if got != want {
		t.Errorf("ToString = %q, want %q", got, want)
	}
}

func TestScenarioIfBrokenInFitGroupsRendersFlatBeforeFirstBreak(t *testing.T) {
	d := Group(
		IfBroken(String("X", 1), String("Y", 1)).
			Cat(String("aaaa", 4)).
			Cat(BreakableSpace()).
			Cat(String("bbbb", 4)),
		WithGroupKind(FitGroups),
	)
	got := ToString(LF, 5, d)
	want := "Yaaaa\nbbbb"
	if got != want {
		t.Errorf("ToString = %q, want %q", got, want)
	}
}
