package clock

import "time"

// Clock supplies the timestamps stamped on played_at and updated_at columns.
type Clock interface {
	Now() time.Time
}

// Func adapts a plain function to Clock.
type Func func() time.Time

func (f Func) Now() time.Time {
	return f()
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

func System() Clock {
	return systemClock{}
}

// Fixed always returns t. Useful in tests and replays.
func Fixed(t time.Time) Clock {
	return Func(func() time.Time { return t })
}
