package machine

import "context"

// InputProducer yields the index-th candidate Input for a cursor, or
// ok=false once the sequence is exhausted. Between resets it is called at
// most once per index, in increasing order, so it may compute each Input
// lazily.
type InputProducer func(index int) (in Input, ok bool, err error)

// InputCursor is a lazy, restartable, single-threaded enumerator over a
// sequence of candidate inputs, following the same explicit-state,
// no-hidden-goroutine shape as the rest of this module's traversal code:
// callers drive it one step at a time with Next, checking ctx themselves
// between steps rather than handing the cursor a background worker.
type InputCursor struct {
	produce InputProducer
	index   int
	done    bool
}

// NewInputCursor returns a cursor over the sequence produce generates,
// starting from index 0.
func NewInputCursor(produce InputProducer) *InputCursor {
	return &InputCursor{produce: produce}
}

// Next returns the next candidate input, or ok=false once the underlying
// producer is exhausted or ctx is done. A cursor that returns ok=false
// stays exhausted until Reset.
func (c *InputCursor) Next(ctx context.Context) (in Input, ok bool, err error) {
	if c.done {
		return nil, false, nil
	}
	select {
	case <-ctx.Done():
		return nil, false, ctx.Err()
	default:
	}

	in, ok, err = c.produce(c.index)
	if err != nil {
		c.done = true
		return nil, false, err
	}
	if !ok {
		c.done = true
		return nil, false, nil
	}
	c.index++
	return in, true, nil
}

// Reset rewinds the cursor to its first candidate, so the same sequence
// can be driven through again.
func (c *InputCursor) Reset() {
	c.index = 0
	c.done = false
}

// Done reports whether the cursor has been exhausted since construction
// or the last Reset.
func (c *InputCursor) Done() bool { return c.done }
