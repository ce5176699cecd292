// Package rangeio writes the elements of a range to a formatted output
// stream, optionally separated by a delimiter, while keeping per-element
// formatting consistent.
//
// # Streams
//
// A [Stream] is a character output stream with formatting state: a one-shot
// field width, a fill character, a floating-point precision and a set of
// [Flags] (base, adjustment, float notation and display options). [Writer]
// implements Stream on top of any io.Writer:
//
//	out := rangeio.NewWriter(os.Stdout)
//	out.SetWidth(7)
//	out.SetFill('.')
//	out.Setf(rangeio.Hex, rangeio.BaseField)
//	out.Insert(0x287) // "....287"
//
// The first write error puts the stream into a failed state. Every later
// insertion is a no-op, and [Writer.Good] reports false.
//
// # Writing ranges
//
// Ranges are pairs of an [Iterator] and a [Sentinel]. [Slice], [Seq] and
// [Chan] build them from slices, iterator sequences and channels.
//
// [Write] and [WriteDelim] write a range immediately and return a [Result]
// holding the position of the first unwritten element and the number of
// elements written:
//
//	first, last := rangeio.Slice([]int{1, 1, 2, 3, 5, 8})
//	res := rangeio.WriteDelim(out, first, last, rangeio.Owned("::"))
//	// 1::1::2::3::5::8, res.Count == 6
//
// [Defer] and [DeferDelim] return a [RangeWrite] that writes only when it is
// inserted, so it can sit in a chain of insertions:
//
//	out.Insert("{ ").Insert(rangeio.Defer(first, last)).Insert(" }")
//
// # Formatting
//
// Formatting set before a write applies to the first element. Before each
// later element the stream's attributes are restored to what they were
// before the first, so every element is rendered the same way even if an
// element's own insertion changed the stream. The width is always zero after
// a write.
//
// # Delimiters
//
// A [Delimiter] is held in one of three ways, chosen by the constructor:
// [Owned] keeps a private copy, [Ref] refers to the caller's variable and
// lets insertion update it, and [ConstRef] refers to it but inserts a copy.
// Delimiters whose pointer implements [Inserter] are stateful; they are
// invoked afresh for every gap between elements.
//
// # Errors
//
// The write functions never return errors. A failed write leaves the stream
// failed and the Result or RangeWrite pointing at the element that could not
// be written. The package exports sentinel errors for the rest:
//
//   - [ErrNilValue] — nil inserted into a Writer
//   - [ErrNotStream] — [Print] called without a stream first
//   - [ErrStreamFailed] — stream failed without a recorded error
//   - [ErrUnknownFlag] — unrecognized flag name
//   - [ErrInvalidFill] — fill is not a single character
//   - [ErrInvalidFormat] — malformed or inconsistent [Format]
package rangeio
