package gencache

import "time"

// Clock supplies the current time. Tests inject a fake one to step over TTLs
// without sleeping.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }
