// Package propast represents branching-time temporal properties as a flat
// table of sub-formula entries rather than a boxed recursive tree: each
// Entry names its children by index into the owning Table, so a formula
// never needs a self-referential Go type.
//
// A Table is built either by Parse, from a small prefix grammar (the
// temporal operators EX, AX, EF, AF, EG, AG of one argument and EU, AU, ER,
// AR of two, the connectives ¬, ∧ and ∨, and atoms that are a bare
// identifier or an identifier == literal comparison), or programmatically
// through the Add* constructors, as Safety does for the default safety
// property.
//
// PNF pushes negations down to the literals and ENF rewrites the result
// into the minimal operator basis {Const, Atomic, Negation, Or, EX, EG, EU}
// that the labelling engine knows how to evaluate directly.
package propast
