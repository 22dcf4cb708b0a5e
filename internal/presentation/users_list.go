package presentation

import (
	"context"
	"log"
	"sync"

	"github.com/cleitonmarx/symbiont-userdirectory/internal/domain"
	"github.com/cleitonmarx/symbiont-userdirectory/internal/usecases"
	"github.com/cleitonmarx/symbiont/depend"
)

// UsersListModel is the view model of the users list screen.
type UsersListModel struct {
	listUsers usecases.ListUsers
	machine   *stateMachine[[]domain.User]

	queryMu sync.RWMutex
	query   string
}

// NewUsersListModel creates a new UsersListModel in the idle state.
func NewUsersListModel(listUsers usecases.ListUsers, clock domain.CurrentTimeProvider, logger *log.Logger) *UsersListModel {
	return &UsersListModel{
		listUsers: listUsers,
		machine:   newStateMachine[[]domain.User]("UsersListModel", clock, logger),
	}
}

// Fetch loads the users and returns the resulting state. When a later fetch
// starts before this one completes, its result is discarded and the current
// state is returned instead.
func (m *UsersListModel) Fetch(ctx context.Context) ViewState[[]domain.User] {
	requestID := m.machine.begin()
	users, err := m.listUsers.Query(ctx)
	state, _ := m.machine.complete(requestID, users, err)
	return state
}

// Refresh re-issues the same request as Fetch.
func (m *UsersListModel) Refresh(ctx context.Context) ViewState[[]domain.User] {
	return m.Fetch(ctx)
}

// SetSearchQuery replaces the search query applied by FilteredUsers.
func (m *UsersListModel) SetSearchQuery(query string) {
	m.queryMu.Lock()
	defer m.queryMu.Unlock()
	m.query = query
}

// SearchQuery returns the current search query.
func (m *UsersListModel) SearchQuery() string {
	m.queryMu.RLock()
	defer m.queryMu.RUnlock()
	return m.query
}

// FilteredUsers returns the loaded users matching the search query.
func (m *UsersListModel) FilteredUsers() []domain.User {
	return domain.FilterUsers(m.machine.snapshot().Data, m.SearchQuery())
}

// State returns a snapshot of the current state.
func (m *UsersListModel) State() ViewState[[]domain.User] {
	return m.machine.snapshot()
}

// Subscribe registers an observer for every state transition and returns a
// function that removes it.
func (m *UsersListModel) Subscribe(observer Observer[[]domain.User]) func() {
	return m.machine.subscribe(observer)
}

// InitUsersListModel initializes the shared UsersListModel and registers it in the dependency container.
type InitUsersListModel struct {
	ListUsers usecases.ListUsers         `resolve:""`
	Clock     domain.CurrentTimeProvider `resolve:""`
	Logger    *log.Logger                `resolve:""`
}

// Initialize registers the UsersListModel in the dependency container.
func (i InitUsersListModel) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(NewUsersListModel(i.ListUsers, i.Clock, i.Logger))
	return ctx, nil
}
