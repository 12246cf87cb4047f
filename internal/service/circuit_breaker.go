package service

import (
	"sync"
	"time"
)

// Estados del breaker.
type BreakerState string

const (
	BreakerClosed   BreakerState = "closed"
	BreakerOpen     BreakerState = "open"
	BreakerHalfOpen BreakerState = "half-open"
)

// Valores de referencia.
const (
	defaultFailureThreshold = 5
	defaultRecoveryTimeout  = 60 * time.Second
	defaultHalfOpenRequests = 3
)

// CircuitBreaker protege una dependencia externa. Una instancia por
// dependencia a nivel proceso, nunca por sesion. Todas las mutaciones pasan
// por una unica seccion critica para no perder updates entre sesiones
// concurrentes.
type CircuitBreaker struct {
	mu   sync.Mutex
	name string
	now  func() time.Time

	failureThreshold int
	recoveryTimeout  time.Duration
	halfOpenRequests int

	state             BreakerState
	failures          int
	openedAt          time.Time
	halfOpenTrials    int
	halfOpenSuccesses int
}

// NewCircuitBreaker crea un breaker cerrado. Parametros no positivos caen a
// los valores de referencia (5 fallos, 60s, 3 trials).
func NewCircuitBreaker(name string, failureThreshold int, recoveryTimeout time.Duration, halfOpenRequests int) *CircuitBreaker {
	if failureThreshold <= 0 {
		failureThreshold = defaultFailureThreshold
	}
	if recoveryTimeout <= 0 {
		recoveryTimeout = defaultRecoveryTimeout
	}
	if halfOpenRequests <= 0 {
		halfOpenRequests = defaultHalfOpenRequests
	}
	return &CircuitBreaker{
		name:             name,
		now:              time.Now,
		failureThreshold: failureThreshold,
		recoveryTimeout:  recoveryTimeout,
		halfOpenRequests: halfOpenRequests,
		state:            BreakerClosed,
	}
}

// Allow decide si la llamada puede intentarse. En open no hay intento de red
// hasta que venza el timeout de recuperacion; entonces pasa a half-open y
// admite hasta halfOpenRequests trials.
func (b *CircuitBreaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerClosed:
		return true
	case BreakerOpen:
		if b.now().Sub(b.openedAt) < b.recoveryTimeout {
			return false
		}
		b.toHalfOpen()
		fallthrough
	case BreakerHalfOpen:
		if b.halfOpenTrials < b.halfOpenRequests {
			b.halfOpenTrials++
			return true
		}
		return false
	}
	return false
}

// RecordSuccess registra un exito. En half-open, al completar todos los
// trials con exito el breaker cierra y resetea el contador de fallos.
func (b *CircuitBreaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerClosed:
		b.failures = 0
	case BreakerHalfOpen:
		b.halfOpenSuccesses++
		if b.halfOpenSuccesses >= b.halfOpenRequests {
			b.state = BreakerClosed
			b.failures = 0
		}
	}
}

// RecordFailure registra un fallo (error, timeout o respuesta malformada).
// En closed abre al llegar al umbral; en half-open reabre de inmediato.
func (b *CircuitBreaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case BreakerClosed:
		b.failures++
		if b.failures >= b.failureThreshold {
			b.toOpen()
		}
	case BreakerHalfOpen:
		b.toOpen()
	}
}

// State expone el estado actual para tests y observabilidad.
func (b *CircuitBreaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Name identifica la dependencia protegida.
func (b *CircuitBreaker) Name() string {
	return b.name
}

func (b *CircuitBreaker) toOpen() {
	b.state = BreakerOpen
	b.openedAt = b.now()
}

func (b *CircuitBreaker) toHalfOpen() {
	b.state = BreakerHalfOpen
	b.halfOpenTrials = 0
	b.halfOpenSuccesses = 0
}
