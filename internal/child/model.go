package child

import "time"

const (
	GenderBoy   = "boy"
	GenderGirl  = "girl"
	GenderOther = "other"
)

// Child is a child profile owned by a parent account.
type Child struct {
	ID         int64
	UserID     int64
	FirstName  string
	LastName   string
	BirthDate  time.Time
	Gender     string
	SchoolYear string
	SchoolName string
	Address    string
	CreatedAt  time.Time
}

// Params holds the writable fields of a child. Empty optional fields are
// stored as NULL.
type Params struct {
	OwnerID    int64
	FirstName  string
	LastName   string
	BirthDate  time.Time
	Gender     string
	SchoolYear string
	SchoolName string
	Address    string
}
