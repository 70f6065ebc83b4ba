package argv

import (
	"bytes"
	"iter"
)

// Iter iterates over an argument-vector snapshot from either end,
// yielding an independently owned copy of each argument. It reads the
// snapshot lazily: on the captured backend an Iter must not be shared
// across goroutines or used concurrently with [Cleanup], but the values
// it has already yielded stay valid regardless.
type Iter struct {
	snap snapshot
	head int
	tail int
}

func newIter(snap snapshot) *Iter {
	return &Iter{snap: snap, tail: snap.count()}
}

// Len reports the exact number of arguments not yet yielded from either
// end.
func (it *Iter) Len() int { return it.tail - it.head }

// Next yields the next argument from the front. After exhaustion it
// keeps returning (nil, false).
func (it *Iter) Next() ([]byte, bool) {
	if it.head == it.tail {
		return nil, false
	}
	v := bytes.Clone(it.snap.view(it.head))
	it.head++
	return v, true
}

// NextBack yields the next argument from the rear without disturbing
// the front cursor. The two ends converge: any mix of Next and NextBack
// calls visits every argument exactly once.
func (it *Iter) NextBack() ([]byte, bool) {
	if it.head == it.tail {
		return nil, false
	}
	it.tail--
	return bytes.Clone(it.snap.view(it.tail)), true
}

// All yields the remaining arguments in positional order.
func (it *Iter) All() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward yields the remaining arguments in reverse positional order.
func (it *Iter) Backward() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for v, ok := it.NextBack(); ok; v, ok = it.NextBack() {
			if !yield(v) {
				return
			}
		}
	}
}

// Refs returns the borrowed form of the iterator, sharing the same
// snapshot and cursor positions. See [RefIter] for the validity rules.
func (it *Iter) Refs() *RefIter {
	return &RefIter{snap: it.snap, head: it.head, tail: it.tail}
}

// Debug returns the remaining arguments as borrowed views materialized
// into a slice, for diagnostic display only.
func (it *Iter) Debug() [][]byte {
	refs := it.Refs()
	out := make([][]byte, 0, refs.Len())
	for v, ok := refs.Next(); ok; v, ok = refs.Next() {
		out = append(out, v)
	}
	return out
}

// RefIter is the zero-copy form of [Iter]: the slices it yields alias
// the snapshot's memory. On the captured backend they point straight
// into loader-owned process memory; using one after [Cleanup] panics
// rather than reading memory this package no longer vouches for. It
// produces the same sequence of values as the Iter it was taken from.
type RefIter struct {
	snap snapshot
	head int
	tail int
}

// Len reports the exact number of arguments not yet yielded.
func (it *RefIter) Len() int { return it.tail - it.head }

// Next yields a view of the next argument from the front.
func (it *RefIter) Next() ([]byte, bool) {
	if it.head == it.tail {
		return nil, false
	}
	v := it.snap.view(it.head)
	it.head++
	return v, true
}

// NextBack yields a view of the next argument from the rear.
func (it *RefIter) NextBack() ([]byte, bool) {
	if it.head == it.tail {
		return nil, false
	}
	it.tail--
	return it.snap.view(it.tail), true
}
