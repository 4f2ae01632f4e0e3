package machine

// Value is the field type a State or Input record stores: in practice
// either a bv.ThreeValued or a bv.ArrayValue. It is an empty interface
// rather than a closed sum type so this package never has to import bv
// just to name its field values, keeping the dependency one-directional
// (callers import both machine and bv; machine does not import bv).
type Value interface{}

// State is a named record of field values — one machine's notion of "the
// current configuration" — keyed by field name.
type State map[string]Value

// Input is a named record of field values supplied to a single step,
// keyed by field name. Like State, the same map shape serves every
// machine; which fields exist and what they mean is up to the Machine
// implementation.
type Input map[string]Value

// Clone returns a shallow copy of s: a new map with the same field values.
// Field values themselves (bv.ThreeValued, bv.ArrayValue) are immutable,
// so a shallow copy is a full copy for every purpose this package needs.
func (s State) Clone() State {
	if s == nil {
		return nil
	}
	clone := make(State, len(s))
	for k, v := range s {
		clone[k] = v
	}
	return clone
}

// Clone returns a shallow copy of in.
func (in Input) Clone() Input {
	if in == nil {
		return nil
	}
	clone := make(Input, len(in))
	for k, v := range in {
		clone[k] = v
	}
	return clone
}
