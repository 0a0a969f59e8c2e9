package randomizer

import (
	"fmt"
	"iter"
)

// sample is the rejection engine every strategy runs on: draw a
// candidate, accept it when check reports true, otherwise redraw.
//
// A positive budget fails with ErrExhausted after exactly budget
// rejected candidates; zero or negative retries without bound. Errors
// from draw or check abort immediately — the loop retries rejection,
// never evaluation failures.
func sample[T any](draw func() (T, error), check func(T) (bool, error), budget int) (T, error) {
	var zero T
	for n := 0; ; {
		cand, err := draw()
		if err != nil {
			return zero, err
		}
		ok, err := check(cand)
		if err != nil {
			return zero, err
		}
		if ok {
			return cand, nil
		}
		n++
		if budget > 0 && n >= budget {
			return zero, fmt.Errorf("%w: %d attempts", ErrExhausted, budget)
		}
	}
}

// sequence adapts a single-draw operation into an unbounded lazy
// stream: every element is an independent draw, and the stream never
// ends on its own — consumers bound it by breaking out of the range.
// A failed draw yields its error once and ends that iteration pass.
// Each call returns a fresh iterator with no shared state, so a
// consumed stream can simply be re-created.
func sequence[T any](random func() (T, error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			v, err := random()
			if !yield(v, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}
