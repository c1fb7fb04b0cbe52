// internal/clock/clock.go
package clock

import "time"

//go:generate go tool mockgen -destination=./mocks/clock_mock.go -package=mocks . Clock

// Clock — монотонное время с произвольной точки отсчёта
type Clock interface {
	Elapsed() time.Duration
}

// Monotonic считает время от момента создания.
// time.Since использует монотонные показания часов.
type Monotonic struct {
	start time.Time
}

func NewMonotonic() *Monotonic {
	return &Monotonic{start: time.Now()}
}

func (m *Monotonic) Elapsed() time.Duration {
	return time.Since(m.start)
}

// Manual — часы, которые двигаются только вручную
type Manual struct {
	now time.Duration
}

func (m *Manual) Elapsed() time.Duration {
	return m.now
}

// Advance сдвигает часы вперёд на d
func (m *Manual) Advance(d time.Duration) {
	m.now += d
}
