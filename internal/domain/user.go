package domain

import (
	"context"
	"strings"
)

// User represents a person listed in the user directory.
type User struct {
	ID       int
	Name     string
	Username string
	Email    string
	Phone    string
	Website  string
	Company  Company
	Address  Address
}

// Company holds the employer details of a user.
type Company struct {
	Name        string
	CatchPhrase string
	BS          string
}

// Address holds the postal address of a user.
type Address struct {
	Street  string
	Suite   string
	City    string
	Zipcode string
	Geo     Geo
}

// Geo holds the coordinates of an address. Values are kept as received.
type Geo struct {
	Lat string
	Lng string
}

// UserRepository defines the interface for reading users from the directory source.
type UserRepository interface {
	// ListUsers returns all users in the order the source returned them.
	ListUsers(ctx context.Context) ([]User, error)
	// GetUser returns the user with the given id.
	GetUser(ctx context.Context, id int) (User, error)
}

// FilterUsers returns the users whose name, username or email contains the query,
// ignoring case. The relative order of the input is kept.
// An empty query returns the input unchanged.
func FilterUsers(users []User, query string) []User {
	if query == "" {
		return users
	}

	needle := strings.ToLower(query)
	filtered := []User{}
	for _, u := range users {
		if u.matches(needle) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

func (u User) matches(needle string) bool {
	return strings.Contains(strings.ToLower(u.Name), needle) ||
		strings.Contains(strings.ToLower(u.Username), needle) ||
		strings.Contains(strings.ToLower(u.Email), needle)
}
