package user

import (
	"time"
)

type User struct {
	ID        int64
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}

// Details is a user with the number of records the user owns.
type Details struct {
	User              User
	ChildrenCount     int
	ConversationCount int
}

type Stats struct {
	Users         int
	Children      int
	Conversations int
}

const ActionDeleteUser = "DELETE_USER"

// AdminLog is an entry in the audit trail of administrator actions.
type AdminLog struct {
	AdminID   int64
	Action    string
	Details   string
	IPAddress string
}
