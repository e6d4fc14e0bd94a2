package models

// About is the singleton academy profile record. The row is seeded by the
// initial migration and only ever updated in place.
type About struct {
	CompanyName     string `json:"company_name" db:"company_name"`
	Location        string `json:"location" db:"location"`
	EstablishedYear int    `json:"established_year" db:"established_year"`
	Email           string `json:"email" db:"email"`
	ContactPhone    string `json:"contact_phone" db:"contact_phone"`
}
