package http

import (
	"time"

	"github.com/cleitonmarx/symbiont-userdirectory/internal/domain"
	"github.com/cleitonmarx/symbiont-userdirectory/internal/presentation"
)

// ErrorCode is the machine-readable code of an error response.
type ErrorCode string

const (
	BADREQUEST      ErrorCode = "BAD_REQUEST"
	NOTFOUND        ErrorCode = "NOT_FOUND"
	BADGATEWAY      ErrorCode = "BAD_GATEWAY"
	TOOMANYREQUESTS ErrorCode = "TOO_MANY_REQUESTS"
	INTERNALERROR   ErrorCode = "INTERNAL_ERROR"
)

// Error is the body of an error response.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResp wraps an Error.
type ErrorResp struct {
	Error Error `json:"error"`
}

// HealthResp is returned by the health check.
type HealthResp struct {
	Status string `json:"status"`
}

// GeoResp is the wire shape of domain.Geo.
type GeoResp struct {
	Lat string `json:"lat" yaml:"lat" toon:"lat"`
	Lng string `json:"lng" yaml:"lng" toon:"lng"`
}

// AddressResp is the wire shape of domain.Address.
type AddressResp struct {
	Street  string  `json:"street" yaml:"street" toon:"street"`
	Suite   string  `json:"suite" yaml:"suite" toon:"suite"`
	City    string  `json:"city" yaml:"city" toon:"city"`
	Zipcode string  `json:"zipcode" yaml:"zipcode" toon:"zipcode"`
	Geo     GeoResp `json:"geo" yaml:"geo" toon:"geo"`
}

// CompanyResp is the wire shape of domain.Company.
type CompanyResp struct {
	Name        string `json:"name" yaml:"name" toon:"name"`
	CatchPhrase string `json:"catchPhrase" yaml:"catchPhrase" toon:"catchPhrase"`
	BS          string `json:"bs" yaml:"bs" toon:"bs"`
}

// UserResp is the wire shape of domain.User.
type UserResp struct {
	ID       int         `json:"id" yaml:"id" toon:"id"`
	Name     string      `json:"name" yaml:"name" toon:"name"`
	Username string      `json:"username" yaml:"username" toon:"username"`
	Email    string      `json:"email" yaml:"email" toon:"email"`
	Phone    string      `json:"phone" yaml:"phone" toon:"phone"`
	Website  string      `json:"website" yaml:"website" toon:"website"`
	Address  AddressResp `json:"address" yaml:"address" toon:"address"`
	Company  CompanyResp `json:"company" yaml:"company" toon:"company"`
}

// ListUsersResp is returned by the users listing.
type ListUsersResp struct {
	Users []UserResp `json:"users" yaml:"users" toon:"users"`
	Count int        `json:"count" yaml:"count" toon:"count"`
}

// UsersViewResp is a snapshot of the shared users list view model.
type UsersViewResp struct {
	Status      string     `json:"status"`
	Message     string     `json:"message,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	SearchQuery string     `json:"search_query"`
	Users       []UserResp `json:"users"`
}

// UserDetailViewResp is the final state of a user detail view model.
type UserDetailViewResp struct {
	Status    string     `json:"status"`
	Message   string     `json:"message,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	User      *UserResp  `json:"user,omitempty"`
}

// SetSearchReq is the body of a search query update.
type SetSearchReq struct {
	Query string `json:"query"`
}

func toError(err error) ErrorResp {
	errResp := ErrorResp{}
	switch domain.ErrorKind(err) {
	case domain.ErrorKind_UserNotFound:
		errResp.Error.Code = NOTFOUND
		errResp.Error.Message = err.Error()
	case domain.ErrorKind_Network, domain.ErrorKind_Decoding:
		errResp.Error.Code = BADGATEWAY
		errResp.Error.Message = err.Error()
	default:
		errResp.Error.Code = INTERNALERROR
		errResp.Error.Message = err.Error()
	}
	return errResp
}

func toUser(u domain.User) UserResp {
	return UserResp{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
		Website:  u.Website,
		Address: AddressResp{
			Street:  u.Address.Street,
			Suite:   u.Address.Suite,
			City:    u.Address.City,
			Zipcode: u.Address.Zipcode,
			Geo: GeoResp{
				Lat: u.Address.Geo.Lat,
				Lng: u.Address.Geo.Lng,
			},
		},
		Company: CompanyResp{
			Name:        u.Company.Name,
			CatchPhrase: u.Company.CatchPhrase,
			BS:          u.Company.BS,
		},
	}
}

func toUsers(users []domain.User) []UserResp {
	resp := make([]UserResp, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUser(u))
	}
	return resp
}

func toUsersView(state presentation.ViewState[[]domain.User], query string, filtered []domain.User) UsersViewResp {
	return UsersViewResp{
		Status:      string(state.Status),
		Message:     state.Message,
		UpdatedAt:   updatedAt(state.UpdatedAt),
		SearchQuery: query,
		Users:       toUsers(filtered),
	}
}

func toUserDetailView(state presentation.ViewState[domain.User]) UserDetailViewResp {
	resp := UserDetailViewResp{
		Status:    string(state.Status),
		Message:   state.Message,
		UpdatedAt: updatedAt(state.UpdatedAt),
	}
	if state.Status == presentation.ViewStatus_Loaded {
		user := toUser(state.Data)
		resp.User = &user
	}
	return resp
}

func updatedAt(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
