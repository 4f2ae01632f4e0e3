package space

import (
	"context"
	"math/bits"

	"github.com/katalvlaran/bvcheck/bv"
	"github.com/katalvlaran/bvcheck/machine"
)

// Seed computes the machine's initial state under in and registers it as
// the state space's start state (the first state AddState ever sees
// becomes the start, so Seed must be called before Expand).
func (sp *StateSpace) Seed(m machine.Machine, in machine.Input) (StateId, error) {
	initial, err := m.Init(in)
	if err != nil {
		return NoState, err
	}
	return sp.AddState(initial), nil
}

// Expand explores every state currently marked dirty: for each, it
// enumerates candidate inputs under the state's recorded precision (one
// abstract input per assignment of the precision's marked bits, every
// unmarked bit left fully unknown), computes Next for each, registers the
// resulting state (deduped by structural equality), and records the
// triggering edge. Newly discovered states are enqueued in turn, so
// Expand drains transitively until every reachable dirty state has been
// processed or ctx is done.
//
// Expand checks ctx once per dequeued state, the same cadence lvlath's BFS
// traversal checks cancellation once per dequeue, and the input cursor
// checks it again before each candidate input.
func (sp *StateSpace) Expand(ctx context.Context, m machine.Machine) error {
	fields := m.InputFields()
	queue := sp.Dirty()

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		state, err := sp.State(id)
		if err != nil {
			return err
		}

		candidates := enumerateInputs(fields, sp.Precision(id))
		cursor := machine.NewInputCursor(func(i int) (machine.Input, bool, error) {
			if i >= len(candidates) {
				return nil, false, nil
			}
			return candidates[i], true, nil
		})

		for {
			in, ok, err := cursor.Next(ctx)
			if err != nil {
				return err
			}
			if !ok {
				break
			}

			next, err := m.Next(state, in)
			if err != nil {
				return err
			}

			before := len(sp.states)
			to := sp.AddState(next)
			sp.addEdge(id, to, in)
			if int(to) >= before {
				queue = append(queue, to)
			}
		}

		sp.MarkClean(id)
	}
	return nil
}

// enumerateInputs builds one candidate Input per assignment of the
// precision-marked bits of every field, leaving every unmarked bit fully
// unknown. Array fields are not yet refined bit by bit: a single
// fully-unknown array candidate is produced for them regardless of
// precision, the sound (if imprecise) default.
func enumerateInputs(fields []machine.FieldSpec, precision machine.InputMark) []machine.Input {
	type fieldChoice struct {
		name   string
		values []machine.Value
	}

	choices := make([]fieldChoice, 0, len(fields))
	for _, f := range fields {
		if f.IsArray {
			choices = append(choices, fieldChoice{name: f.Name, values: []machine.Value{
				bv.NewArray(f.Width, f.ElemWidth, bv.Unknown(f.ElemWidth)),
			}})
			continue
		}

		markedBits := uint64(0)
		if mk, ok := precision[f.Name]; ok {
			if m, ok := mk.(bv.Mark); ok {
				markedBits = m.Bits()
			}
		}
		choices = append(choices, fieldChoice{name: f.Name, values: bitAssignments(f.Width, markedBits)})
	}

	inputs := []machine.Input{{}}
	for _, choice := range choices {
		next := make([]machine.Input, 0, len(inputs)*len(choice.values))
		for _, in := range inputs {
			for _, v := range choice.values {
				candidate := in.Clone()
				candidate[choice.name] = v
				next = append(next, candidate)
			}
		}
		inputs = next
	}
	return inputs
}

// bitAssignments returns one ThreeValued per assignment of markedBits,
// fully unknown everywhere else: 2^popcount(markedBits) candidates.
func bitAssignments(width uint8, markedBits uint64) []machine.Value {
	n := bits.OnesCount64(markedBits)
	count := 1 << uint(n)
	result := make([]machine.Value, 0, count)
	for assignment := 0; assignment < count; assignment++ {
		var known uint64
		bitIdx := 0
		for k := uint8(0); k < width; k++ {
			if markedBits&(uint64(1)<<k) == 0 {
				continue
			}
			if assignment&(1<<uint(bitIdx)) != 0 {
				known |= uint64(1) << k
			}
			bitIdx++
		}
		result = append(result, bv.KnownBits(width, known, markedBits))
	}
	return result
}
