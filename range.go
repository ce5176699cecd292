package rangeio

// Result is returned by the immediate writes. Next is the first element that
// was not written, equal to the end of the range after a complete write, and
// Count is the number of elements written.
type Result[I any] struct {
	Next  I
	Count int
}

// Write writes [first, last) to s now.
func Write[I Iterator[I], S Sentinel[I]](s Stream, first I, last S) Result[I] {
	r := Result[I]{Next: first}
	WriteAll(s, &r.Next, last, &r.Count)
	return r
}

// WriteDelim writes [first, last) to s now, with d between elements.
func WriteDelim[I Iterator[I], S Sentinel[I]](s Stream, first I, last S, d Delimiter) Result[I] {
	r := Result[I]{Next: first}
	WriteAllDelim(s, &r.Next, last, d, &r.Count)
	return r
}

// RangeWrite is a deferred write of a range. Nothing is written until it is
// inserted into a stream; each insertion writes whatever part of the range
// is still unwritten and updates Next and Count, so inserting the same
// RangeWrite again resumes rather than restarts.
//
//	w := rangeio.DeferDelim(first, last, rangeio.Owned(", "))
//	out.Insert("[").Insert(w).Insert("]")
//
// A RangeWrite is not safe for concurrent insertion.
type RangeWrite[I Iterator[I], S Sentinel[I]] struct {
	Next  I
	Count int

	end   S
	delim Delimiter
}

var _ Inserter = (*RangeWrite[SliceIter[int], SliceIter[int]])(nil)

// Defer returns a deferred write of [first, last).
func Defer[I Iterator[I], S Sentinel[I]](first I, last S) *RangeWrite[I, S] {
	return &RangeWrite[I, S]{Next: first, end: last}
}

// DeferDelim returns a deferred write of [first, last) with d between
// elements.
func DeferDelim[I Iterator[I], S Sentinel[I]](first I, last S, d Delimiter) *RangeWrite[I, S] {
	return &RangeWrite[I, S]{Next: first, end: last, delim: d}
}

// InsertTo writes the unwritten part of the range to s.
func (w *RangeWrite[I, S]) InsertTo(s Stream) {
	WriteAllDelim(s, &w.Next, w.end, w.delim, &w.Count)
}

// Done reports whether the whole range has been written.
func (w *RangeWrite[I, S]) Done() bool { return w.end.Reached(w.Next) }

// Delimiter returns the delimiter written between elements.
func (w *RangeWrite[I, S]) Delimiter() Delimiter { return w.delim }
