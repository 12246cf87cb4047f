package service

import (
	"sync"
	"time"
)

// TokenBudget lleva la cuenta de tokens consumidos contra un techo diario.
// Singleton de proceso inyectado en el pipeline; Reserve/Commit/Remaining son
// el unico punto de mutacion y comparten una sola seccion critica.
type TokenBudget struct {
	mu      sync.Mutex
	ceiling int
	used    int
	resetAt time.Time
	now     func() time.Time
}

// NewTokenBudget crea el tracker con el techo diario dado. El primer reset
// queda en la siguiente medianoche UTC.
func NewTokenBudget(ceiling int) *TokenBudget {
	b := &TokenBudget{
		ceiling: ceiling,
		now:     time.Now,
	}
	b.resetAt = nextMidnightUTC(b.now())
	return b
}

// Reserve verifica que el estimado quepa en lo que resta del dia. Si devuelve
// false el llamador debe rutear al fallback; no es un error.
func (b *TokenBudget) Reserve(estimated int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.maybeReset()
	return b.used+estimated <= b.ceiling
}

// Commit suma el consumo real tras una llamada exitosa.
func (b *TokenBudget) Commit(actual int) {
	if actual <= 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.maybeReset()
	b.used += actual
}

// Remaining devuelve los tokens disponibles hoy.
func (b *TokenBudget) Remaining() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.maybeReset()
	if b.used >= b.ceiling {
		return 0
	}
	return b.ceiling - b.used
}

// maybeReset aplica el reset perezoso: la primera llamada pasado el timestamp
// de reset vuelve el contador a cero y avanza el timestamp en pasos de un dia
// hasta dejarlo en el futuro. Llamar con el lock tomado.
func (b *TokenBudget) maybeReset() {
	now := b.now()
	if now.Before(b.resetAt) {
		return
	}
	b.used = 0
	for !b.resetAt.After(now) {
		b.resetAt = b.resetAt.Add(24 * time.Hour)
	}
}

func nextMidnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Add(24 * time.Hour)
}
