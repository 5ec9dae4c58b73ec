package scoring

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvalidArgumentError reports an argument outside the range a conversion
// is defined for.
type InvalidArgumentError struct {
	Name   string
	Value  interface{}
	Reason string
}

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Name, e.Value, e.Reason)
}

// ErrNoConvergence is returned when a concavity repair does not settle
// within its pass limit.
var ErrNoConvergence = errors.New("concavity repair did not converge")

func invalid(name string, value interface{}, reason string) error {
	return errors.WithStack(InvalidArgumentError{Name: name, Value: value, Reason: reason})
}

func checkScale(boards, maxVP int) error {
	if boards < 1 || boards > MaxBoards {
		return invalid("boards", boards, fmt.Sprintf("must be between 1 and %d", MaxBoards))
	}
	if maxVP < 2 || maxVP > MaxScale || maxVP%2 != 0 {
		return invalid("maxVP", maxVP, fmt.Sprintf("must be even and between 2 and %d", MaxScale))
	}
	return nil
}

func checkPlaces(places int) error {
	if places < 0 || places > MaxPlaces {
		return invalid("places", places, fmt.Sprintf("must be between 0 and %d", MaxPlaces))
	}
	return nil
}
