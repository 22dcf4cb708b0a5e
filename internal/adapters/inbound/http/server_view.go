package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-userdirectory/internal/domain"
	"github.com/cleitonmarx/symbiont-userdirectory/internal/presentation"
)

// GetUsersView returns the shared users list view filtered by its search query.
func (api UserDirectoryServer) GetUsersView(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, api.usersViewSnapshot())
}

// SetUsersViewSearch replaces the search query of the shared users list view.
func (api UserDirectoryServer) SetUsersViewSearch(w http.ResponseWriter, r *http.Request) {
	var req SetSearchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	api.UsersView.SetSearchQuery(req.Query)
	respondJSON(w, http.StatusOK, api.usersViewSnapshot())
}

// RefreshUsersView starts a background fetch of the shared users list view
// and returns the snapshot taken once the view is loading.
func (api UserDirectoryServer) RefreshUsersView(w http.ResponseWriter, r *http.Request) {
	loading := make(chan struct{})
	unsubscribe := api.UsersView.Subscribe(func(s presentation.ViewState[[]domain.User]) {
		if s.Status == presentation.ViewStatus_Loading {
			select {
			case <-loading:
			default:
				close(loading)
			}
		}
	})

	ctx := context.WithoutCancel(r.Context())
	done := make(chan struct{})
	go func() {
		defer close(done)
		api.UsersView.Refresh(ctx)
	}()

	select {
	case <-loading:
	case <-done:
	}
	unsubscribe()

	respondJSON(w, http.StatusAccepted, api.usersViewSnapshot())
}

// GetUserDetailView runs a user detail view for the given id and returns its final state.
func (api UserDirectoryServer) GetUserDetailView(w http.ResponseWriter, r *http.Request) {
	id, err := bindUserID(r)
	if err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}

	detail := presentation.NewUserDetailModel(api.GetUserUseCase, api.Clock, api.Logger)
	respondJSON(w, http.StatusOK, toUserDetailView(detail.Fetch(r.Context(), id)))
}

func (api UserDirectoryServer) usersViewSnapshot() UsersViewResp {
	return toUsersView(api.UsersView.State(), api.UsersView.SearchQuery(), api.UsersView.FilteredUsers())
}
