package pp

// Comma is a literal "," as a Doc.
func Comma() Doc {
	return String(",", 1)
}

// CommaBreakableSpace is Comma followed by a BreakableSpace — the common
// list-separator shape: "a, b" flat, "a,\nb" broken.
func CommaBreakableSpace() Doc {
	return Comma().Cat(BreakableSpace())
}

// TrailingComma renders a comma when its enclosing group is broken, and
// nothing when flat — the classic trailing-comma-in-broken-lists pattern.
func TrailingComma() Doc {
	return IfBroken(Comma(), Empty())
}

// wrap brackets doc between open and close and passes the result to the
// grouping constructor wrap. Parens/Braces/etc. below pass the caller's
// wrapFn (e.g. a Group with a GroupOption), or a default Auto Group when
// wrapFn is nil.
func wrap(open, close string, wrap func(Doc) Doc, doc Doc) Doc {
	inner := String(open, len(open)).Cat(doc).Cat(String(close, len(close)))
	return wrap(inner)
}

// Parens wraps doc in "(" ")" using wrapFn as the grouping constructor
// (defaults to Group when wrapFn is nil).
func Parens(wrapFn func(Doc) Doc, doc Doc) Doc {
	return wrap("(", ")", defaultWrap(wrapFn), doc)
}

// Braces wraps doc in "{" "}".
func Braces(wrapFn func(Doc) Doc, doc Doc) Doc {
	return wrap("{", "}", defaultWrap(wrapFn), doc)
}

// ListBrackets wraps doc in "[" "]" — the conventional spelling for list
// literals.
func ListBrackets(wrapFn func(Doc) Doc, doc Doc) Doc {
	return wrap("[", "]", defaultWrap(wrapFn), doc)
}

// ArrayBrackets wraps doc in "[" "]" — the conventional spelling for array
// literals; kept distinct from ListBrackets so callers can name intent even
// though the delimiters coincide.
func ArrayBrackets(wrapFn func(Doc) Doc, doc Doc) Doc {
	return wrap("[", "]", defaultWrap(wrapFn), doc)
}

// AngleBrackets wraps doc in "<" ">".
func AngleBrackets(wrapFn func(Doc) Doc, doc Doc) Doc {
	return wrap("<", ">", defaultWrap(wrapFn), doc)
}

// DoubleQuotes wraps doc in a literal pair of double quotes, with no
// enclosing group (quoting is never a break opportunity by itself).
func DoubleQuotes(doc Doc) Doc {
	return String(`"`, 1).Cat(doc).Cat(String(`"`, 1))
}

func defaultWrap(wrapFn func(Doc) Doc) func(Doc) Doc {
	if wrapFn != nil {
		return wrapFn
	}
	return func(d Doc) Doc { return Group(d) }
}

// ConcatMap composes a document over a non-empty list with distinct
// first/middle/last treatment:
//
//   - the first element is rendered as lead(first)
//   - each adjacent pair (a, b) contributes f(final=false, a) ++ sep(a, b)
//   - the last element is rendered as f(final=true, last) ++ trail(last)
//
// An empty items slice yields Empty.
func ConcatMap[T any](
	sep func(a, b T) Doc,
	lead func(first T) Doc,
	trail func(last T) Doc,
	f func(final bool, item T) Doc,
	items []T,
) Doc {
	if len(items) == 0 {
		return Empty()
	}

	result := lead(items[0])
	for i := 0; i < len(items)-1; i++ {
		result = result.Cat(f(false, items[i])).Cat(sep(items[i], items[i+1]))
	}
	last := items[len(items)-1]
	result = result.Cat(f(true, last)).Cat(trail(last))
	return result
}
