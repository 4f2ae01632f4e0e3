package machine

// FieldMark is the mark counterpart of Value: a bv.Mark for a
// bv.ThreeValued field, or a bv.ArrayMark for a bv.ArrayValue field.
type FieldMark interface{}

// StateMark and InputMark are the mark-shaped counterparts of State and
// Input: a demand for precision on each named field.
type StateMark map[string]FieldMark
type InputMark map[string]FieldMark

// FieldSpec describes one field of a Machine's Input or State record: its
// name and bit width, used by callers that need to enumerate or display a
// machine's signature without constructing a value.
type FieldSpec struct {
	Name  string
	Width uint8
	// IsArray distinguishes a bv.ArrayValue field (indexed by Width bits,
	// with ElemWidth giving the element width) from a bv.ThreeValued field.
	IsArray   bool
	ElemWidth uint8
}

// Machine is the pure core of a finite-state bit-vector transition
// system: Init and Next compute forward over the abstract domain, and
// InitBackward/NextBackward compute the matching backward ("mark")
// composition through exactly the same operations, in reverse.
//
// Implementations must be pure functions of their arguments: the same
// State/Input must always produce the same result, with no hidden state
// and no I/O, so that state-space exploration and CEGAR refinement can
// call them freely, replay them, and cache their results.
type Machine interface {
	// Init computes the initial abstract state for a given nondeterministic
	// input.
	Init(in Input) (State, error)
	// Next computes one abstract step from state under input.
	Next(state State, in Input) (State, error)
	// InitBackward propagates a mark on Init's result back onto the input
	// that could have produced it.
	InitBackward(in Input, markOut StateMark) (InputMark, error)
	// NextBackward propagates a mark on Next's result back onto the state
	// and input that could have produced it.
	NextBackward(state State, in Input, markOut StateMark) (markState StateMark, markInput InputMark, err error)
	// InputFields enumerates the fields a nondeterministic Input record
	// must supply.
	InputFields() []FieldSpec
}

// panicField is the reserved boolean-valued field name used to mark a
// state as having reached an illegal operation.
const panicField = "__panic"

// PanicState returns a copy of state with its panic field set, the value
// Machine implementations return from Init/Next in place of a Go error
// when the system itself performs an illegal operation.
func PanicState(state State, panicked Value) State {
	clone := state.Clone()
	if clone == nil {
		clone = State{}
	}
	clone[panicField] = panicked
	return clone
}

// IsPanicked reports whether state carries a set panic field. Callers
// decide what "set" means for their concrete Value representation via
// isSet; this lets machine stay agnostic of the bv package.
func IsPanicked(state State, isSet func(Value) bool) bool {
	v, ok := state[panicField]
	if !ok {
		return false
	}
	return isSet(v)
}

// Safe is the atom name the default safety property (propast.Safety) is
// checked against. The check package reads it like any other atom, from a
// state field named "safe"; it does not consult IsPanicked or the panic
// field, so a state set by PanicState is not unsafe unless its "safe"
// field says so.
const Safe = "safe"
