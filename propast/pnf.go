package propast

// PNF rewrites the table into positive normal form: negations are pushed
// down until they land on the literals themselves (as Entry.Complementary),
// and no Negation node remains anywhere; the safety idiom !E[true U !p]
// becomes A[false R p].
//
// This mirrors the reference checker's pnf_inner(complement) pass exactly,
// including its operator-to-operator mapping under a pending negation. That
// mapping is pointedly NOT the textbook CTL dual in every case: AF flips to
// AG (not EG), EF flips to EG (not AG), and in the until/release family EU
// and ER both flip to AR while AU and AR both flip to ER — see the
// case-by-case comments below. This is carried over
// unchanged from the checker this package's evaluation semantics must agree
// with; this package does not "correct" it, since the labelling engine
// downstream is built to match this exact operator set.
func (t *Table) PNF() {
	t.pnfInner(t.Root, false)
}

func (t *Table) pnfInner(idx int, complement bool) {
	e := t.entries[idx]
	switch e.Kind {
	case Const:
		if complement {
			e.ConstValue = !e.ConstValue
			t.entries[idx] = e
		}
	case Atomic:
		if complement {
			e.Complementary = !e.Complementary
			t.entries[idx] = e
		}
	case Negation:
		// flip complement, then erase the Negation node by replacing this
		// slot's contents with the (now normalized) inner node's.
		t.pnfInner(e.Inner, !complement)
		t.entries[idx] = t.entries[e.Inner]
	case Or:
		t.pnfInner(e.Hold, complement)
		t.pnfInner(e.Until, complement)
		if complement {
			// !(p or q) = (!p and !q); the operands already carry the
			// flipped complement, so only the connective itself changes.
			e.Kind = And
			t.entries[idx] = e
		}
	case And:
		t.pnfInner(e.Hold, complement)
		t.pnfInner(e.Until, complement)
		if complement {
			e.Kind = Or
			t.entries[idx] = e
		}
	case EX:
		t.pnfInner(e.Inner, complement)
		if complement {
			e.Kind = AX
			t.entries[idx] = e
		}
	case AX:
		t.pnfInner(e.Inner, complement)
		if complement {
			e.Kind = EX
			t.entries[idx] = e
		}
	case AF:
		t.pnfInner(e.Inner, complement)
		if complement {
			e.Kind = AG
			t.entries[idx] = e
		}
	case EF:
		t.pnfInner(e.Inner, complement)
		if complement {
			e.Kind = EG
			t.entries[idx] = e
		}
	case EG:
		t.pnfInner(e.Inner, complement)
		if complement {
			e.Kind = AF
			t.entries[idx] = e
		}
	case AG:
		t.pnfInner(e.Inner, complement)
		if complement {
			e.Kind = EF
			t.entries[idx] = e
		}
	case EU:
		t.pnfInner(e.Hold, complement)
		t.pnfInner(e.Until, complement)
		if complement {
			e.Kind = AR
			t.entries[idx] = e
		}
	case AU:
		t.pnfInner(e.Hold, complement)
		t.pnfInner(e.Until, complement)
		if complement {
			e.Kind = ER
			t.entries[idx] = e
		}
	case ER:
		t.pnfInner(e.Hold, complement)
		t.pnfInner(e.Until, complement)
		if complement {
			e.Kind = AR
			t.entries[idx] = e
		}
	case AR:
		t.pnfInner(e.Hold, complement)
		t.pnfInner(e.Until, complement)
		if complement {
			e.Kind = ER
			t.entries[idx] = e
		}
	}
}
