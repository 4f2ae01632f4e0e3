package propast

// Entry is one sub-formula of a Table. Children are referenced by index
// into the same Table rather than by pointer, so PNF and ENF can rewrite a
// node in place (replacing its Kind and fields) exactly the way the
// reference implementation mutates a boxed node through &mut self, without
// Go needing a recursive type to hold the tree.
type Entry struct {
	Kind Kind

	// Const
	ConstValue bool

	// Atomic: a bare named proposition, e.g. a labelling predicate over a
	// Machine's panic/safety field. Complementary records a pending
	// negation carried directly on the literal, the PNF normal form's way
	// of representing "not p" without a Negation node.
	Name          string
	Complementary bool

	// HasLiteral marks Name as a "field == literal" atom rather than a
	// bare boolean witness: the field is read as a bv.ThreeValued and
	// compared for equality against LiteralValue at the field's own
	// width, instead of being read as an already-reduced one-bit value.
	HasLiteral   bool
	LiteralValue uint64

	// Inner is the single child of a unary node (Negation, EX, AX, EF, AF,
	// EG, AG).
	Inner int

	// Hold and Until are the two children of a binary node. For Or and And
	// they are simply the left and right operand; for EU, AU, ER and AR
	// they are the hold and until (or left/right) formulas of the
	// PropositionU pair.
	Hold, Until int
}

// Table is a flat collection of Entry values forming one formula, rooted
// at Root.
type Table struct {
	entries []Entry
	Root    int
}

// NewTable returns an empty Table. Use the Add* constructors, or Parse, to
// populate it.
func NewTable() *Table {
	return &Table{}
}

func (t *Table) push(e Entry) int {
	t.entries = append(t.entries, e)
	return len(t.entries) - 1
}

// Entry returns the sub-formula at idx.
func (t *Table) Entry(idx int) Entry {
	return t.entries[idx]
}

// Len returns the number of entries currently stored, including any
// orphaned by a PNF/ENF rewrite (a rewrite overwrites a node's slot rather
// than removing anything, so indices handed out earlier stay valid).
func (t *Table) Len() int {
	return len(t.entries)
}

func (t *Table) AddConst(value bool) int {
	return t.push(Entry{Kind: Const, ConstValue: value})
}

func (t *Table) AddAtomic(name string) int {
	return t.push(Entry{Kind: Atomic, Name: name})
}

// AddAtomicEq builds a "field == literal" atom: name is read as a
// bv.ThreeValued field and compared for equality against literal at the
// field's own width.
func (t *Table) AddAtomicEq(name string, literal uint64) int {
	return t.push(Entry{Kind: Atomic, Name: name, HasLiteral: true, LiteralValue: literal})
}

func (t *Table) AddNegation(inner int) int {
	return t.push(Entry{Kind: Negation, Inner: inner})
}

func (t *Table) AddOr(a, b int) int {
	return t.push(Entry{Kind: Or, Hold: a, Until: b})
}

func (t *Table) AddAnd(a, b int) int {
	return t.push(Entry{Kind: And, Hold: a, Until: b})
}

func (t *Table) addUnary(k Kind, inner int) int {
	return t.push(Entry{Kind: k, Inner: inner})
}

func (t *Table) AddEX(inner int) int { return t.addUnary(EX, inner) }
func (t *Table) AddAX(inner int) int { return t.addUnary(AX, inner) }
func (t *Table) AddEF(inner int) int { return t.addUnary(EF, inner) }
func (t *Table) AddAF(inner int) int { return t.addUnary(AF, inner) }
func (t *Table) AddEG(inner int) int { return t.addUnary(EG, inner) }
func (t *Table) AddAG(inner int) int { return t.addUnary(AG, inner) }

func (t *Table) addBinaryU(k Kind, hold, until int) int {
	return t.push(Entry{Kind: k, Hold: hold, Until: until})
}

func (t *Table) AddEU(hold, until int) int { return t.addBinaryU(EU, hold, until) }
func (t *Table) AddAU(hold, until int) int { return t.addBinaryU(AU, hold, until) }
func (t *Table) AddER(hold, until int) int { return t.addBinaryU(ER, hold, until) }
func (t *Table) AddAR(hold, until int) int { return t.addBinaryU(AR, hold, until) }

// SetRoot records which entry is the formula's top-level node and returns
// the table for chaining.
func (t *Table) SetRoot(idx int) *Table {
	t.Root = idx
	return t
}

// Safety builds AG[name], expressed as the two-valued checker builds it:
// !E[true U !name]. name is a bare literal, typically a Machine's panic
// witness field; checking Safety("safe") is the standard way to ask
// whether a Machine's state space ever reaches a panicked state.
func Safety(name string) *Table {
	t := NewTable()
	lit := t.AddAtomic(name)
	notLit := t.AddNegation(lit)
	top := t.AddConst(true)
	until := t.AddEU(top, notLit)
	root := t.AddNegation(until)
	return t.SetRoot(root)
}
