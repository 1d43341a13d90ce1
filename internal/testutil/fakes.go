// Package testutil reúne dobles de prueba compartidos por los tests de aplicación y HTTP.
package testutil

import (
	"fmt"
	"sync"
	"time"
)

// Clock reloj fijo que solo avanza con Advance.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock crea un reloj detenido en t (en UTC).
func NewClock(t time.Time) *Clock {
	return &Clock{now: t.UTC()}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance mueve el reloj d hacia adelante.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// SeqIDs genera ids secuenciales "<prefix>-1", "<prefix>-2", ...
type SeqIDs struct {
	mu     sync.Mutex
	prefix string
	n      int
}

func NewSeqIDs(prefix string) *SeqIDs {
	return &SeqIDs{prefix: prefix}
}

func (g *SeqIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%d", g.prefix, g.n)
}

// Recorder acumula métricas para aserciones.
type Recorder struct {
	mu          sync.Mutex
	Transitions []string
	Deltas      map[string]int
}

func NewRecorder() *Recorder {
	return &Recorder{Deltas: map[string]int{}}
}

func (r *Recorder) RequestTransition(status string) {
	r.mu.Lock()
	r.Transitions = append(r.Transitions, status)
	r.mu.Unlock()
}

func (r *Recorder) StockDelta(group string, delta int) {
	r.mu.Lock()
	r.Deltas[group] += delta
	r.mu.Unlock()
}

func (r *Recorder) StockLevel(string, int) {}
