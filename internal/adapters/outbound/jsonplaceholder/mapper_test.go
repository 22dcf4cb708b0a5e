package jsonplaceholder

import (
	"testing"

	"github.com/cleitonmarx/symbiont-userdirectory/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestToUser(t *testing.T) {
	tests := map[string]struct {
		record   UserRecord
		expected domain.User
	}{
		"full-record": {
			record: leanne,
			expected: domain.User{
				ID:       1,
				Name:     "Leanne Graham",
				Username: "Bret",
				Email:    "Sincere@april.biz",
				Phone:    "1-770-736-8031 x56442",
				Website:  "hildegard.org",
				Company: domain.Company{
					Name:        "Romaguera-Crona",
					CatchPhrase: "Multi-layered client-server neural-net",
					BS:          "harness real-time e-markets",
				},
				Address: domain.Address{
					Street:  "Kulas Light",
					Suite:   "Apt. 556",
					City:    "Gwenborough",
					Zipcode: "92998-3874",
					Geo:     domain.Geo{Lat: "-37.3159", Lng: "81.1496"},
				},
			},
		},
		"empty-record": {
			record:   UserRecord{},
			expected: domain.User{},
		},
		"malformed-but-valid-json-values": {
			record: UserRecord{ID: -7, Email: "not-an-email", Address: AddressRecord{Geo: GeoRecord{Lat: "north"}}},
			expected: domain.User{
				ID:      -7,
				Email:   "not-an-email",
				Address: domain.Address{Geo: domain.Geo{Lat: "north"}},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expected, toUser(tt.record))
		})
	}
}

func TestToUsers_PreservesOrder(t *testing.T) {
	got := toUsers([]UserRecord{ervin, leanne})

	assert.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 1, got[1].ID)
	assert.Empty(t, toUsers(nil))
}
