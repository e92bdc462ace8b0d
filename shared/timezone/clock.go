package timezone

import "time"

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return Now()
}

// SystemClock reads the wall clock in the application timezone.
func SystemClock() Clock {
	return systemClock{}
}

type fixedClock struct {
	at time.Time
}

func (c fixedClock) Now() time.Time {
	return c.at
}

// Fixed always reports at.
func Fixed(at time.Time) Clock {
	return fixedClock{at: at}
}
