package mcp

import (
	"context"

	"github.com/cleitonmarx/symbiont-userdirectory/internal/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListUsersInput is the argument of the list_users tool.
type ListUsersInput struct {
	Query string `json:"query,omitempty" jsonschema:"case-insensitive filter on name, username or email"`
}

// ListUsersOutput is the result of the list_users tool.
type ListUsersOutput struct {
	Users []User `json:"users"`
}

// GetUserInput is the argument of the get_user tool.
type GetUserInput struct {
	ID int `json:"id" jsonschema:"id of the user"`
}

// GetUserOutput is the result of the get_user tool.
type GetUserOutput struct {
	User User `json:"user"`
}

// User is the tool representation of domain.User.
type User struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Website  string  `json:"website"`
	Address  Address `json:"address"`
	Company  Company `json:"company"`
}

// Address is the tool representation of domain.Address.
type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
	Lat     string `json:"lat"`
	Lng     string `json:"lng"`
}

// Company is the tool representation of domain.Company.
type Company struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	BS          string `json:"bs"`
}

var (
	listUsersTool = &mcp.Tool{
		Name:        "list_users",
		Description: "List the users of the directory, optionally filtered by a search query.",
	}
	getUserTool = &mcp.Tool{
		Name:        "get_user",
		Description: "Get a single user of the directory by id.",
	}
)

// NewServer builds the MCP server exposing the directory tools.
func (s UserDirectoryMCPServer) NewServer() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "userdirectory", Version: "v1.0.0"}, nil)
	mcp.AddTool(server, listUsersTool, s.listUsers)
	mcp.AddTool(server, getUserTool, s.getUser)
	return server
}

func (s UserDirectoryMCPServer) listUsers(ctx context.Context, _ *mcp.CallToolRequest, in ListUsersInput) (*mcp.CallToolResult, ListUsersOutput, error) {
	users, err := s.ListUsersUseCase.Query(ctx)
	if err != nil {
		s.Logger.Printf("UserDirectoryMCPServer: list_users failed: %v", err)
		return nil, ListUsersOutput{}, err
	}

	filtered := domain.FilterUsers(users, in.Query)
	out := ListUsersOutput{Users: make([]User, 0, len(filtered))}
	for _, u := range filtered {
		out.Users = append(out.Users, toUser(u))
	}
	return nil, out, nil
}

func (s UserDirectoryMCPServer) getUser(ctx context.Context, _ *mcp.CallToolRequest, in GetUserInput) (*mcp.CallToolResult, GetUserOutput, error) {
	user, err := s.GetUserUseCase.Query(ctx, in.ID)
	if err != nil {
		s.Logger.Printf("UserDirectoryMCPServer: get_user %d failed: %v", in.ID, err)
		return nil, GetUserOutput{}, err
	}
	return nil, GetUserOutput{User: toUser(user)}, nil
}

func toUser(u domain.User) User {
	return User{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
		Website:  u.Website,
		Address: Address{
			Street:  u.Address.Street,
			Suite:   u.Address.Suite,
			City:    u.Address.City,
			Zipcode: u.Address.Zipcode,
			Lat:     u.Address.Geo.Lat,
			Lng:     u.Address.Geo.Lng,
		},
		Company: Company{
			Name:        u.Company.Name,
			CatchPhrase: u.Company.CatchPhrase,
			BS:          u.Company.BS,
		},
	}
}
