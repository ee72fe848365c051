package response

// DateTimeFormat is the layout used by DateTime.
const DateTimeFormat = "2006-01-02 15:04:05"

const (
	codeSuccess       = 0
	codeInternalError = 1
	codeValidation    = 2
	codeUnauthorized  = 3

	messageSuccess       = "Success"
	messageInternalError = "Something went wrong"
	messageValidation    = "Validation error"
	messageUnauthorized  = "Unauthorized"
)
