package child

import "time"

// Data is the JSON shape of a child in API responses.
type Data struct {
	ID         int64     `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name,omitempty"`
	BirthDate  string    `json:"birth_date"`
	Gender     string    `json:"gender"`
	SchoolYear string    `json:"school_year,omitempty"`
	SchoolName string    `json:"school_name,omitempty"`
	Address    string    `json:"address,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewData(c *Child) *Data {
	return &Data{
		ID:         c.ID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		BirthDate:  c.BirthDate.Format(time.DateOnly),
		Gender:     c.Gender,
		SchoolYear: c.SchoolYear,
		SchoolName: c.SchoolName,
		Address:    c.Address,
		CreatedAt:  c.CreatedAt,
	}
}
