package space

// LabelledNontrivialSCC runs Tarjan's algorithm restricted to the subgraph
// induced by labelled, and returns the set of states that belong to a
// nontrivial strongly connected component within that subgraph: a
// component with more than one state, or a single state with a self-loop.
// Every such state lies on an infinite path that never leaves labelled,
// the Boolean EG sanity check this package keeps as an independent
// cross-check alongside the three-valued labelling engine's own EG
// computation.
func (sp *StateSpace) LabelledNontrivialSCC(labelled map[StateId]bool) map[StateId]bool {
	t := &tarjan{
		sp:       sp,
		labelled: labelled,
		index:    map[StateId]int{},
		lowlink:  map[StateId]int{},
		onStack:  map[StateId]bool{},
		result:   map[StateId]bool{},
	}
	for id := range labelled {
		if !labelled[id] {
			continue
		}
		if _, visited := t.index[id]; !visited {
			t.strongConnect(id)
		}
	}
	return t.result
}

type tarjan struct {
	sp       *StateSpace
	labelled map[StateId]bool
	counter  int
	index    map[StateId]int
	lowlink  map[StateId]int
	onStack  map[StateId]bool
	stack    []StateId
	result   map[StateId]bool
}

func (t *tarjan) strongConnect(v StateId) {
	t.index[v] = t.counter
	t.lowlink[v] = t.counter
	t.counter++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, e := range t.sp.Successors(v) {
		w := e.To
		if !t.labelled[w] {
			continue
		}
		if _, visited := t.index[w]; !visited {
			t.strongConnect(w)
			if t.lowlink[w] < t.lowlink[v] {
				t.lowlink[v] = t.lowlink[w]
			}
		} else if t.onStack[w] {
			if t.index[w] < t.lowlink[v] {
				t.lowlink[v] = t.index[w]
			}
		}
	}

	if t.lowlink[v] != t.index[v] {
		return
	}

	var component []StateId
	for {
		n := len(t.stack) - 1
		w := t.stack[n]
		t.stack = t.stack[:n]
		t.onStack[w] = false
		component = append(component, w)
		if w == v {
			break
		}
	}

	nontrivial := len(component) > 1 || hasSelfLoop(t.sp, v)
	if nontrivial {
		for _, id := range component {
			t.result[id] = true
		}
	}
}

func hasSelfLoop(sp *StateSpace, id StateId) bool {
	for _, e := range sp.Successors(id) {
		if e.To == id {
			return true
		}
	}
	return false
}
