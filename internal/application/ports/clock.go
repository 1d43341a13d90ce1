package ports

import "time"

// Clock fuente de tiempo inyectable (fija en tests).
type Clock interface {
	Now() time.Time
}

// SystemClock reloj real en UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
