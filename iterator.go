package rangeio

import (
	"iter"
)

// Iterator is a position within a range. Iterators are values: Next returns
// the following position and leaves the receiver as it was, although
// single-pass iterators such as those from [Seq] share their underlying
// source between copies.
type Iterator[I any] interface {
	// Value returns the element at the current position.
	Value() any
	// Next returns the position after the current one.
	Next() I
}

// Sentinel marks the end of a range. It need not be the same type as the
// iterators it is compared against.
type Sentinel[I any] interface {
	Reached(i I) bool
}

// SliceIter is a position within a slice. It also serves as the end sentinel
// for its own range.
type SliceIter[T any] struct {
	s []T
	i int
}

// Slice returns the begin and end positions of s.
func Slice[T any](s []T) (SliceIter[T], SliceIter[T]) {
	return SliceIter[T]{s: s}, SliceIter[T]{s: s, i: len(s)}
}

func (it SliceIter[T]) Value() any { return it.s[it.i] }

// Get returns the element at the current position.
func (it SliceIter[T]) Get() T { return it.s[it.i] }

func (it SliceIter[T]) Next() SliceIter[T] { return SliceIter[T]{s: it.s, i: it.i + 1} }

// Index returns the offset of the position within the slice.
func (it SliceIter[T]) Index() int { return it.i }

// Reached reports whether i is at or past this position.
func (it SliceIter[T]) Reached(i SliceIter[T]) bool { return i.i >= it.i }

// SeqIter is a single-pass position within an iterator sequence, in the
// manner of an input stream iterator: copies share the underlying source, so
// advancing one advances all of them.
type SeqIter[T any] struct {
	src *pullSource[T]
}

// SeqEnd is the sentinel for a [SeqIter]. It is reached once the sequence is
// exhausted or stopped.
type SeqEnd[T any] struct{}

func (e SeqEnd[T]) Reached(i SeqIter[T]) bool { return i.src == nil || !i.src.ok }

type pullSource[T any] struct {
	next func() (T, bool)
	stop func()
	cur  T
	ok   bool
	pos  int
}

func (p *pullSource[T]) advance() {
	p.cur, p.ok = p.next()
	if !p.ok {
		p.stop()
		return
	}
	p.pos++
}

// Seq returns the begin and end positions of seq. The first element is
// pulled immediately. The sequence runs in its own goroutine until it is
// exhausted; call [SeqIter.Stop] to release it early.
func Seq[T any](seq iter.Seq[T]) (SeqIter[T], SeqEnd[T]) {
	next, stop := iter.Pull(seq)
	src := &pullSource[T]{next: next, stop: stop, pos: -1}
	src.advance()
	return SeqIter[T]{src: src}, SeqEnd[T]{}
}

// Chan returns the begin and end positions of the values received from ch.
// The range ends when ch is closed.
func Chan[T any](ch <-chan T) (SeqIter[T], SeqEnd[T]) {
	return Seq(chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

func (it SeqIter[T]) Value() any { return it.src.cur }

// Get returns the element at the current position.
func (it SeqIter[T]) Get() T { return it.src.cur }

func (it SeqIter[T]) Next() SeqIter[T] {
	it.src.advance()
	return it
}

// Index returns the number of elements pulled before the current one.
func (it SeqIter[T]) Index() int { return it.src.pos }

// Stop ends the sequence. The iterator then compares equal to [SeqEnd].
func (it SeqIter[T]) Stop() {
	if it.src == nil {
		return
	}
	it.src.stop()
	it.src.ok = false
}
