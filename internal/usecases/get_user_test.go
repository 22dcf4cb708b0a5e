package usecases

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont-userdirectory/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetUserImpl_Query(t *testing.T) {
	tests := map[string]struct {
		id              int
		setExpectations func(repo *domain.MockUserRepository)
		expectedUser    domain.User
		expectedErr     error
	}{
		"success": {
			id: 1,
			setExpectations: func(repo *domain.MockUserRepository) {
				repo.EXPECT().GetUser(mock.Anything, 1).Return(domain.User{ID: 1, Name: "Leanne Graham"}, nil)
			},
			expectedUser: domain.User{ID: 1, Name: "Leanne Graham"},
		},
		"user-not-found": {
			id: 999,
			setExpectations: func(repo *domain.MockUserRepository) {
				repo.EXPECT().GetUser(mock.Anything, 999).Return(domain.User{}, domain.NewUserNotFoundErr())
			},
			expectedErr: domain.NewUserNotFoundErr(),
		},
		"network-error": {
			id: 1,
			setExpectations: func(repo *domain.MockUserRepository) {
				repo.EXPECT().GetUser(mock.Anything, 1).Return(domain.User{}, domain.NewNetworkErr("Invalid network request"))
			},
			expectedErr: domain.NewNetworkErr("Invalid network request"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain.NewMockUserRepository(t)
			if tt.setExpectations != nil {
				tt.setExpectations(repo)
			}

			gui := NewGetUserImpl(repo)

			got, gotErr := gui.Query(context.Background(), tt.id)
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.Equal(t, tt.expectedUser, got)
		})
	}
}

func TestInitGetUser_Initialize(t *testing.T) {
	igu := InitGetUser{}

	ctx, err := igu.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registeredGetUser, err := depend.Resolve[GetUser]()
	assert.NoError(t, err)
	assert.NotNil(t, registeredGetUser)
}
