package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/movecheck/internal/errors"
)

// Operation is a parsed, not yet validated move-intent: a command word and
// the two squares it names. It carries no reference to any board.
type Operation struct {
	Command string
	From    Square
	To      Square
}

// String returns the operation in move-text form, e.g. "move A2,A4".
func (op Operation) String() string {
	return fmt.Sprintf("%s %s,%s", op.Command, op.From, op.To)
}

// InBounds reports whether both squares are on the board.
func (op Operation) InBounds() bool {
	return op.From.Valid() && op.To.Valid()
}

// ParseOperation turns one line of move text of the form
// "<command> <FROM>,<TO>" into an Operation. Only syntax is checked: the
// line needs a command token and a comma-separated pair of coordinates.
// Tokens after the pair are ignored.
func ParseOperation(text string) (Operation, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return Operation{}, &errors.ParseError{
			Err:      errors.ErrMalformedMove,
			Expected: "command and FROM,TO pair",
			Got:      strings.TrimSpace(text),
		}
	}

	pair := strings.Split(fields[1], ",")
	if len(pair) < 2 {
		return Operation{}, &errors.ParseError{
			Err:      errors.ErrMalformedMove,
			Expected: "FROM,TO pair",
			Got:      fields[1],
		}
	}

	from, err := ParseSquare(pair[0])
	if err != nil {
		return Operation{}, fmt.Errorf("%w: from square: %w", errors.ErrMalformedMove, err)
	}
	to, err := ParseSquare(pair[1])
	if err != nil {
		return Operation{}, fmt.Errorf("%w: to square: %w", errors.ErrMalformedMove, err)
	}

	return Operation{Command: fields[0], From: from, To: to}, nil
}
