package rangeio

// WriteAll writes the elements of [*i, e) to s, advancing *i past each
// element written and adding one to *n for each. Both are left at the first
// unwritten element if s fails part way, so progress stays observable.
//
// Formatting is captured before the first element and restored before each
// later one, so every element is rendered with the attributes the first one
// saw. The width of s is zero on return, whatever happened.
//
// WriteAll never reports an error itself; check s.Good afterwards.
func WriteAll[I Iterator[I], S Sentinel[I]](s Stream, i *I, e S, n *int) {
	if !e.Reached(*i) && s.Good() {
		formatting := Capture(s)
		if s.Insert((*i).Value()).Good() {
			*n++
			*i = (*i).Next()
			for !e.Reached(*i) && s.Good() {
				formatting.Restore(s)
				if s.Insert((*i).Value()).Good() {
					*n++
					*i = (*i).Next()
				}
			}
		}
	}
	s.SetWidth(0)
}

// WriteAllDelim is [WriteAll] with d inserted between consecutive elements.
// The delimiter gates the next element: it is only attempted when another
// element follows, and if inserting it fails no further element is
// attempted. It is never written before the first element or after the last.
//
// The delimiter is inserted before formatting is restored, so it sees the
// state the previous element left behind. A zero d behaves like WriteAll.
func WriteAllDelim[I Iterator[I], S Sentinel[I]](s Stream, i *I, e S, d Delimiter, n *int) {
	if d.IsZero() {
		WriteAll(s, i, e, n)
		return
	}
	if !e.Reached(*i) && s.Good() {
		formatting := Capture(s)
		if s.Insert((*i).Value()).Good() {
			*n++
			*i = (*i).Next()
			for !e.Reached(*i) && s.Good() && d.insert(s) {
				formatting.Restore(s)
				if s.Insert((*i).Value()).Good() {
					*n++
					*i = (*i).Next()
				}
			}
		}
	}
	s.SetWidth(0)
}
