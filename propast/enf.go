package propast

// ENF rewrites the table (which should already be in positive normal form)
// into existential normal form: the minimal operator basis
// {Const, Atomic, Negation, Or, EX, EG, EU} that the labelling engine
// evaluates directly. And, AX, AF, EF, AG, AU, ER and AR are each rewritten
// in terms of that basis, mirroring the reference checker's enf() pass
// rule for rule:
//
//	p and q    = !(!p or !q)
//	AX[p]      = !EX[!p]
//	AF[p]      = !EG[!p]            (A[true U p])
//	EF[p]      = E[true U p]
//	AG[p]      = !E[true U !p]
//	A[p U q]   = !(E[!q U !(p or q)] or EG[!q])
//	E[p R q]   = !A[!p U !q]
//	A[p R q]   = !E[!p U !q]
//
// Like the reference pass, a rewritten node is re-dispatched through enf
// once more so that its newly built subexpressions (which are themselves
// un-minimized clones of the original operands) get reduced in turn; EG's
// own inner formula is deliberately left untouched, since EG is already a
// basis operator and the reference pass never recurses into it.
func (t *Table) ENF() {
	t.enf(t.Root)
}

func (t *Table) enf(idx int) {
	e := t.entries[idx]
	switch e.Kind {
	case Const, Atomic:
		return
	case Negation:
		t.enf(e.Inner)
		return
	case Or:
		t.enf(e.Hold)
		t.enf(e.Until)
		return
	case And:
		notP := t.AddNegation(e.Hold)
		notQ := t.AddNegation(e.Until)
		or := t.AddOr(notP, notQ)
		t.entries[idx] = Entry{Kind: Negation, Inner: or}
	case EX:
		t.enf(e.Inner)
		return
	case AX:
		notInner := t.AddNegation(e.Inner)
		ex := t.AddEX(notInner)
		t.entries[idx] = Entry{Kind: Negation, Inner: ex}
	case AF:
		notInner := t.AddNegation(e.Inner)
		eg := t.AddEG(notInner)
		t.entries[idx] = Entry{Kind: Negation, Inner: eg}
	case EF:
		top := t.AddConst(true)
		t.entries[idx] = Entry{Kind: EU, Hold: top, Until: e.Inner}
	case EG:
		return
	case AG:
		top := t.AddConst(true)
		notInner := t.AddNegation(e.Inner)
		eu := t.AddEU(top, notInner)
		t.entries[idx] = Entry{Kind: Negation, Inner: eu}
	case EU:
		t.enf(e.Hold)
		t.enf(e.Until)
		return
	case AU:
		// A[p U q] = !(E[!q U !(p or q)] or EG[!q])
		notUntilA := t.AddNegation(e.Until)
		orPQ := t.AddOr(e.Hold, e.Until)
		notOrPQ := t.AddNegation(orPQ)
		euPart := t.AddEU(notUntilA, notOrPQ)
		notUntilB := t.AddNegation(e.Until)
		egPart := t.AddEG(notUntilB)
		or := t.AddOr(euPart, egPart)
		t.entries[idx] = Entry{Kind: Negation, Inner: or}
	case ER:
		// E[p R q] = !A[!p U !q]
		negHold := t.AddNegation(e.Hold)
		negUntil := t.AddNegation(e.Until)
		au := t.AddAU(negHold, negUntil)
		t.entries[idx] = Entry{Kind: Negation, Inner: au}
	case AR:
		// A[p R q] = !E[!p U !q]
		negHold := t.AddNegation(e.Hold)
		negUntil := t.AddNegation(e.Until)
		eu := t.AddEU(negHold, negUntil)
		t.entries[idx] = Entry{Kind: Negation, Inner: eu}
	}
	// minimize the newly built expression
	t.enf(idx)
}
