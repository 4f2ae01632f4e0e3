package space

import "sort"

// Purge removes every state in ids together with any state only
// reachable, from the start state, through one of them. It returns the
// full set actually purged (which can be larger than ids), in ascending
// order, for a caller such as the labelling engine's Invalidate to drop
// its own cached results for.
//
// Purged StateIds are never reused: AddState always assigns the next
// unused id, so a StateId recorded elsewhere before a Purge either still
// names the same state afterward or reliably reports ErrStateNotFound, it
// never silently comes to name a different state.
func (sp *StateSpace) Purge(ids []StateId) []StateId {
	removed := map[StateId]bool{}
	for _, id := range ids {
		removed[id] = true
	}

	if start, err := sp.Start(); err == nil && !removed[start] && !sp.purged[start] {
		reachable := map[StateId]bool{start: true}
		queue := []StateId{start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, e := range sp.edges[cur] {
				if removed[e.To] || sp.purged[e.To] || reachable[e.To] {
					continue
				}
				reachable[e.To] = true
				queue = append(queue, e.To)
			}
		}
		for _, id := range sp.States() {
			if sp.purged[id] {
				continue
			}
			if !reachable[id] {
				removed[id] = true
			}
		}
	}

	purged := make([]StateId, 0, len(removed))
	for id := range removed {
		if sp.purged[id] {
			continue
		}
		purged = append(purged, id)
	}
	sort.Slice(purged, func(i, j int) bool { return purged[i] < purged[j] })

	for _, id := range purged {
		sp.purged[id] = true
		delete(sp.dirty, id)
		delete(sp.precision, id)
		for enc, candidate := range sp.key {
			if candidate == id {
				delete(sp.key, enc)
				break
			}
		}
		for _, e := range sp.edges[id] {
			sp.preds[e.To] = removeEdge(sp.preds[e.To], id)
		}
		delete(sp.edges, id)
		for _, e := range sp.preds[id] {
			sp.edges[e.From] = removeEdge(sp.edges[e.From], id)
		}
		delete(sp.preds, id)
	}
	return purged
}

func removeEdge(edges []Edge, endpoint StateId) []Edge {
	kept := edges[:0]
	for _, e := range edges {
		if e.From != endpoint && e.To != endpoint {
			kept = append(kept, e)
		}
	}
	return kept
}
