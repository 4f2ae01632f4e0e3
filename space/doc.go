// Package space builds and maintains the explored state space of a
// machine under abstract interpretation: a directed graph of abstract
// states, each edge tagged with the abstract input that triggered it, and
// a per-state input precision recording how refined that state's
// nondeterministic inputs currently are.
//
// StateId assignment is monotonic and stable: once a state is added it
// keeps its id for the life of the StateSpace, even across Purge, so that
// other packages (history-indexed labelling, counterexample extraction)
// can safely hold onto a StateId across refinement rounds.
//
// Expand drives exploration one state at a time under an explicit
// context.Context, checked before each state and each candidate input — no
// background goroutines, matching the traversal style the rest of this
// module's graph code uses.
package space
