package propast

import "fmt"

// ErrPropertyNotParseable is returned by Parse when the input does not
// match the grammar: an unbalanced bracket, a stray comma, an unrecognized
// character, or a truncated operator argument list.
type ErrPropertyNotParseable struct {
	Source string
}

func (e *ErrPropertyNotParseable) Error() string {
	return fmt.Sprintf("propast: property not parseable: %q", e.Source)
}
