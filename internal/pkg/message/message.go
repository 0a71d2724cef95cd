package message

const (
	Unauthorized    = "Unauthorized. Please sign in again."
	AdminRequired   = "Administrator privileges required."
	NoSelfDelete    = "You cannot delete your own account."
	InvalidInput    = "Invalid input."
	PayloadTooLarge = "Request body is too large."
	UnknownField    = "Unknown field in payload."
	UserNotFound    = "User not found."
	TokenValid      = "Token valid."
	UserDeleted     = "User deleted."

	ChildNotFound        = "Child not found."
	ChildCreated         = "Child added."
	ChildUpdated         = "Child updated."
	ChildDeleted         = "Child deleted."
	ConversationNotFound = "Conversation not found."
	ConversationCreated  = "Conversation created."
	ConversationDeleted  = "Conversation deleted."

	EnvErrFmt = "environment variable is not set: %s"
)
