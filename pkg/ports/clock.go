package ports

import "time"

// Clock abstracts the time source of the playback scheduler so tests can
// drive virtual time deterministically.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// Ticker is the per-frame callback source: one tick, one scheduling step.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}
