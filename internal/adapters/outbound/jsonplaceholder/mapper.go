package jsonplaceholder

import "github.com/cleitonmarx/symbiont-userdirectory/internal/domain"

func toUser(r UserRecord) domain.User {
	return domain.User{
		ID:       r.ID,
		Name:     r.Name,
		Username: r.Username,
		Email:    r.Email,
		Phone:    r.Phone,
		Website:  r.Website,
		Company: domain.Company{
			Name:        r.Company.Name,
			CatchPhrase: r.Company.CatchPhrase,
			BS:          r.Company.BS,
		},
		Address: domain.Address{
			Street:  r.Address.Street,
			Suite:   r.Address.Suite,
			City:    r.Address.City,
			Zipcode: r.Address.Zipcode,
			Geo: domain.Geo{
				Lat: r.Address.Geo.Lat,
				Lng: r.Address.Geo.Lng,
			},
		},
	}
}

func toUsers(records []UserRecord) []domain.User {
	users := make([]domain.User, len(records))
	for i, r := range records {
		users[i] = toUser(r)
	}
	return users
}
