package presentation

import (
	"log"
	"sync"

	"github.com/cleitonmarx/symbiont-userdirectory/internal/domain"
	"github.com/google/uuid"
)

type subscription[T any] struct {
	id       uint64
	observer Observer[T]
}

// stateMachine is the shared core of the view models. Only the most recently
// started request may complete it; completions of older requests are dropped.
type stateMachine[T any] struct {
	name   string
	clock  domain.CurrentTimeProvider
	logger *log.Logger

	// notifyMu serializes transitions with their notifications so observers
	// see them in order. Observers must not start a transition themselves.
	notifyMu sync.Mutex
	mu       sync.RWMutex
	state    ViewState[T]
	current  uuid.UUID
	nextSub  uint64
	subs     []subscription[T]
}

func newStateMachine[T any](name string, clock domain.CurrentTimeProvider, logger *log.Logger) *stateMachine[T] {
	return &stateMachine[T]{
		name:   name,
		clock:  clock,
		logger: logger,
		state:  ViewState[T]{Status: ViewStatus_Idle},
	}
}

// snapshot returns a copy of the current state.
func (m *stateMachine[T]) snapshot() ViewState[T] {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *stateMachine[T]) subscribe(observer Observer[T]) func() {
	m.mu.Lock()
	m.nextSub++
	id := m.nextSub
	m.subs = append(m.subs, subscription[T]{id: id, observer: observer})
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			for i, s := range m.subs {
				if s.id == id {
					m.subs = append(m.subs[:i:i], m.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// begin moves the machine into loading and returns the id of the new request.
func (m *stateMachine[T]) begin() uuid.UUID {
	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	requestID := uuid.New()

	m.mu.Lock()
	previous := m.state.Status
	superseded := m.current
	m.current = requestID
	m.state = ViewState[T]{
		Status:    ViewStatus_Loading,
		Data:      m.state.Data,
		UpdatedAt: m.state.UpdatedAt,
	}
	state, subs := m.state, m.observers()
	m.mu.Unlock()

	if superseded != uuid.Nil {
		m.logger.Printf("%s: request %s supersedes request %s", m.name, requestID, superseded)
	}
	m.logger.Printf("%s: %s -> %s (request %s)", m.name, previous, ViewStatus_Loading, requestID)
	notify(subs, state)
	return requestID
}

// complete finishes the request identified by requestID. It reports false when
// a newer request superseded it, leaving the state untouched.
func (m *stateMachine[T]) complete(requestID uuid.UUID, data T, err error) (ViewState[T], bool) {
	m.notifyMu.Lock()
	defer m.notifyMu.Unlock()

	m.mu.Lock()
	if requestID != m.current {
		state := m.state
		m.mu.Unlock()
		m.logger.Printf("%s: dropping completion of superseded request %s", m.name, requestID)
		return state, false
	}

	if err != nil {
		var zero T
		m.state = ViewState[T]{
			Status:    ViewStatus_Error,
			Data:      zero,
			Message:   err.Error(),
			UpdatedAt: m.clock.Now(),
		}
	} else {
		m.state = ViewState[T]{
			Status:    ViewStatus_Loaded,
			Data:      data,
			UpdatedAt: m.clock.Now(),
		}
	}
	m.current = uuid.Nil
	state, subs := m.state, m.observers()
	m.mu.Unlock()

	if err != nil {
		m.logger.Printf("%s: %s -> %s (request %s): %v", m.name, ViewStatus_Loading, ViewStatus_Error, requestID, err)
	} else {
		m.logger.Printf("%s: %s -> %s (request %s)", m.name, ViewStatus_Loading, ViewStatus_Loaded, requestID)
	}
	notify(subs, state)
	return state, true
}

// observers must be called with mu held.
func (m *stateMachine[T]) observers() []Observer[T] {
	out := make([]Observer[T], len(m.subs))
	for i, s := range m.subs {
		out[i] = s.observer
	}
	return out
}

func notify[T any](observers []Observer[T], state ViewState[T]) {
	for _, o := range observers {
		o(state)
	}
}
