package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-userdirectory/internal/domain"
	"github.com/cleitonmarx/symbiont-userdirectory/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// GetUser defines the interface for the GetUser use case.
type GetUser interface {
	Query(ctx context.Context, id int) (domain.User, error)
}

// GetUserImpl is the implementation of the GetUser use case.
type GetUserImpl struct {
	userRepo domain.UserRepository
}

// NewGetUserImpl creates a new instance of GetUserImpl.
func NewGetUserImpl(userRepo domain.UserRepository) GetUserImpl {
	return GetUserImpl{
		userRepo: userRepo,
	}
}

// Query returns the user with the given id.
func (gui GetUserImpl) Query(ctx context.Context, id int) (domain.User, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	user, err := gui.userRepo.GetUser(spanCtx, id)
	RecordUserFetch(spanCtx, OperationGetUser, err)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.User{}, err
	}
	return user, nil
}

// InitGetUser initializes the GetUser use case and registers it in the dependency container.
type InitGetUser struct {
	UserRepo domain.UserRepository `resolve:""`
}

// Initialize initializes the GetUserImpl use case and registers it in the dependency container.
func (igu InitGetUser) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetUser](NewGetUserImpl(igu.UserRepo))
	return ctx, nil
}
