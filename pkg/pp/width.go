package pp

// Width measures how many columns a subdocument occupies, tagged by whether
// that measurement is terminated by a break.
//
// A WithoutBreak width means the subdocument's rightmost column keeps
// accumulating if something is concatenated to its right. A WithBreak width
// means the subdocument ends in a hardline (or equivalent): anything
// concatenated to its right starts measuring from a fresh line, so it does
// not extend this width.
type Width struct {
	value            int
	terminatedByBreak bool
}

// withoutBreak builds a Width that keeps accumulating to the right.
func withoutBreak(v int) Width {
	return Width{value: v}
}

// withBreak builds a Width terminated by a break.
func withBreak(v int) Width {
	return Width{value: v, terminatedByBreak: true}
}

// intValue returns the raw column count, regardless of break status.
func (w Width) intValue() int {
	return w.value
}

// addWidths implements the addition rule used by concatenation: if the left
// width is already break-terminated, the sum is the left width unchanged;
// otherwise the values add and the result's break status is the right
// side's.
func addWidths(left, right Width) Width {
	if left.terminatedByBreak {
		return left
	}
	return Width{
		value:            left.value + right.value,
		terminatedByBreak: right.terminatedByBreak,
	}
}
