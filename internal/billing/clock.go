package billing

import (
	"time"

	"github.com/skelectricals/backend/internal/types"
)

// Clock supplies the current date with the time-of-day zeroed. The status
// engine never reads the system clock directly so tests can pin "today".
type Clock interface {
	Today() time.Time
}

type systemClock struct{}

func (systemClock) Today() time.Time {
	return types.Truncate(time.Now())
}

// SystemClock returns a Clock backed by the wall clock.
func SystemClock() Clock {
	return systemClock{}
}

// FixedClock returns a Clock pinned to the date component of t.
func FixedClock(t time.Time) Clock {
	return fixedClock{day: types.Truncate(t)}
}

type fixedClock struct {
	day time.Time
}

func (c fixedClock) Today() time.Time {
	return c.day
}
