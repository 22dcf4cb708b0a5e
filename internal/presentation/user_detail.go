package presentation

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont-userdirectory/internal/domain"
	"github.com/cleitonmarx/symbiont-userdirectory/internal/usecases"
)

// UserDetailModel is the view model of the user detail screen.
type UserDetailModel struct {
	getUser usecases.GetUser
	machine *stateMachine[domain.User]
}

// NewUserDetailModel creates a new UserDetailModel in the idle state.
func NewUserDetailModel(getUser usecases.GetUser, clock domain.CurrentTimeProvider, logger *log.Logger) *UserDetailModel {
	return &UserDetailModel{
		getUser: getUser,
		machine: newStateMachine[domain.User]("UserDetailModel", clock, logger),
	}
}

// Fetch loads the user with the given id and returns the resulting state.
func (m *UserDetailModel) Fetch(ctx context.Context, id int) ViewState[domain.User] {
	requestID := m.machine.begin()
	user, err := m.getUser.Query(ctx, id)
	state, _ := m.machine.complete(requestID, user, err)
	return state
}

// State returns a snapshot of the current state.
func (m *UserDetailModel) State() ViewState[domain.User] {
	return m.machine.snapshot()
}

// Subscribe registers an observer for every state transition and returns a
// function that removes it.
func (m *UserDetailModel) Subscribe(observer Observer[domain.User]) func() {
	return m.machine.subscribe(observer)
}
