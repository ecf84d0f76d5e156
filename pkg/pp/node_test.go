package pp

import "testing"

func TestHasGroupBreakerDetectsUnenclosedBreaker(t *testing.T) {
	d := String("a", 1).Cat(GroupBreaker()).Cat(String("b", 1))
	if !hasGroupBreaker(&d) {
		t.Error("expected hasGroupBreaker to be true")
	}
}

func TestHasGroupBreakerResetsAtGroupBoundary(t *testing.T) {
	inner := Group(String("a", 1).Cat(GroupBreaker()))
	outer := inner.Cat(String("b", 1))
	if hasGroupBreaker(&outer) {
		t.Error("a GroupBreaker enclosed by a nested Group must not propagate outward")
	}
}

func TestFlatWidthOfLeaf(t *testing.T) {
	d := String("abc", 3)
	if got, want := flatWidthOf(&d), withoutBreak(3); got != want {
		t.Errorf("flatWidthOf = %+v, want %+v", got, want)
	}
}

func TestBreakingWidthOfMirrorsFlatForSimpleLeaves(t *testing.T) {
	d := String("abc", 3)
	if flatWidthOf(&d) != breakingWidthOf(&d) {
		t.Error("a simple leaf's breakingWidth should mirror its flatWidth")
	}
}
