package earley

import "fmt"

// ChartRangeError is the error returned when a chart position outside
// [0, len(tokens)] is accessed.  It always signals a bug in the caller
// or the engine, never a property of the input, so it is surfaced
// instead of being clamped to an empty agenda.
type ChartRangeError struct {
	Position int
	Len      int
}

func (e *ChartRangeError) Error() string {
	return fmt.Sprintf("chart position %d out of range [0, %d)", e.Position, e.Len)
}
