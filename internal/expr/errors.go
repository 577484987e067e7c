package expr

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrUnboundVariable is returned when an expression references a variable that
// has no value.
var ErrUnboundVariable = errors.New("unbound variable")

// SyntaxError reports a malformed expression.
type SyntaxError struct {
	Offset int    // byte offset of the offending token
	Msg    string // description of the problem
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Msg)
}

func unbound(id *Ident) error {
	return errors.Wrapf(ErrUnboundVariable, "%q at offset %d", id.Name, id.Offset)
}
