package jsonplaceholder

// UserRecord mirrors the JSON user object served by /users and /users/{id}.
type UserRecord struct {
	ID       int           `json:"id"`
	Name     string        `json:"name"`
	Username string        `json:"username"`
	Email    string        `json:"email"`
	Phone    string        `json:"phone"`
	Website  string        `json:"website"`
	Company  CompanyRecord `json:"company"`
	Address  AddressRecord `json:"address"`
}

// CompanyRecord mirrors the nested company object.
type CompanyRecord struct {
	Name        string `json:"name"`
	CatchPhrase string `json:"catchPhrase"`
	BS          string `json:"bs"`
}

// AddressRecord mirrors the nested address object.
type AddressRecord struct {
	Street  string    `json:"street"`
	Suite   string    `json:"suite"`
	City    string    `json:"city"`
	Zipcode string    `json:"zipcode"`
	Geo     GeoRecord `json:"geo"`
}

// GeoRecord mirrors the coordinates of an address. Both values are strings on the wire.
type GeoRecord struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}
