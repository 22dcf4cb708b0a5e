package jsonplaceholder

import (
	"context"
	"net/http"

	"github.com/cleitonmarx/symbiont-userdirectory/internal/domain"
	"github.com/cleitonmarx/symbiont-userdirectory/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// UserRepository adapts APIClient to domain.UserRepository.
type UserRepository struct {
	client APIClient
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(client APIClient) UserRepository {
	return UserRepository{client: client}
}

// ListUsers implements domain.UserRepository.
func (r UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	records, err := r.client.ListUsers(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, toDomainError(err)
	}
	return toUsers(records), nil
}

// GetUser implements domain.UserRepository.
func (r UserRepository) GetUser(ctx context.Context, id int) (domain.User, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	record, err := r.client.GetUser(spanCtx, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.User{}, toDomainError(err)
	}
	return toUser(record), nil
}

var _ domain.UserRepository = UserRepository{}

// InitUserRepository initializes the users API repository dependency.
type InitUserRepository struct {
	HttpClient *http.Client `resolve:""`
	BaseURL    string       `config:"USERS_API_BASE_URL" default:"https://jsonplaceholder.typicode.com"`
}

// Initialize registers the UserRepository in the dependency container.
func (i InitUserRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.UserRepository](NewUserRepository(NewAPIClient(i.BaseURL, i.HttpClient)))
	return ctx, nil
}
