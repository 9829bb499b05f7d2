package handler

const (
	errInternalServer     = "Internal server error"
	errInvalidCredentials = "Invalid credentials"
	errEmailExists        = "Email already exists"
	errMissingCredentials = "Missing required fields (email, password)"
	errMissingNoteFields  = "Missing required fields (title, content)"
	errNoteNotFound       = "Note not found"
	errTokenInvalid       = "Token is invalid or expired"
)
