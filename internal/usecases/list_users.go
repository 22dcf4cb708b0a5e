package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-userdirectory/internal/domain"
	"github.com/cleitonmarx/symbiont-userdirectory/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ListUsers defines the interface for the ListUsers use case.
type ListUsers interface {
	Query(ctx context.Context) ([]domain.User, error)
}

// ListUsersImpl is the implementation of the ListUsers use case.
type ListUsersImpl struct {
	userRepo domain.UserRepository
}

// NewListUsersImpl creates a new instance of ListUsersImpl.
func NewListUsersImpl(userRepo domain.UserRepository) ListUsersImpl {
	return ListUsersImpl{
		userRepo: userRepo,
	}
}

// Query returns every user in the order the directory source returned them.
func (lui ListUsersImpl) Query(ctx context.Context) ([]domain.User, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	users, err := lui.userRepo.ListUsers(spanCtx)
	RecordUserFetch(spanCtx, OperationListUsers, err)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return users, nil
}

// InitListUsers initializes the ListUsers use case and registers it in the dependency container.
type InitListUsers struct {
	UserRepo domain.UserRepository `resolve:""`
}

// Initialize initializes the ListUsersImpl use case and registers it in the dependency container.
func (ilu InitListUsers) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListUsers](NewListUsersImpl(ilu.UserRepo))
	return ctx, nil
}
