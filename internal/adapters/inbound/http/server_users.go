package http

import (
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-userdirectory/internal/domain"
	"github.com/oapi-codegen/runtime"
)

// ListUsersParams holds the query parameters of ListUsers.
type ListUsersParams struct {
	Query  *string
	Format *string
}

func bindListUsersParams(r *http.Request) (ListUsersParams, error) {
	var params ListUsersParams
	if err := runtime.BindQueryParameter("form", true, false, "q", r.URL.Query(), &params.Query); err != nil {
		return params, fmt.Errorf("invalid format for parameter q: %w", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &params.Format); err != nil {
		return params, fmt.Errorf("invalid format for parameter format: %w", err)
	}
	return params, nil
}

func bindUserID(r *http.Request) (int, error) {
	var id int
	err := runtime.BindStyledParameterWithOptions("simple", "id", r.PathValue("id"), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return 0, fmt.Errorf("invalid format for parameter id: %w", err)
	}
	return id, nil
}

// ListUsers returns the users matching the optional q query in the requested format.
func (api UserDirectoryServer) ListUsers(w http.ResponseWriter, r *http.Request) {
	params, err := bindListUsersParams(r)
	if err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}

	format := FormatJSON
	if params.Format != nil && *params.Format != "" {
		format = *params.Format
	}
	if format != FormatJSON && format != FormatYAML && format != FormatTOON {
		respondError(w, badRequest(fmt.Sprintf("unsupported format %q", format)))
		return
	}

	users, err := api.ListUsersUseCase.Query(r.Context())
	if err != nil {
		api.Logger.Printf("UserDirectoryServer: error listing users: %v", err)
		respondError(w, toError(err))
		return
	}

	if params.Query != nil {
		users = domain.FilterUsers(users, *params.Query)
	}

	resp := ListUsersResp{
		Users: toUsers(users),
		Count: len(users),
	}
	if err := respondFormatted(w, http.StatusOK, format, resp); err != nil {
		api.Logger.Printf("UserDirectoryServer: error encoding users: %v", err)
		respondError(w, toError(err))
	}
}

// GetUser returns a single user by id.
func (api UserDirectoryServer) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := bindUserID(r)
	if err != nil {
		respondError(w, badRequest(err.Error()))
		return
	}

	user, err := api.GetUserUseCase.Query(r.Context(), id)
	if err != nil {
		api.Logger.Printf("UserDirectoryServer: error getting user %d: %v", id, err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toUser(user))
}
