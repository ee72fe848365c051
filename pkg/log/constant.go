package log

const (
	// ModeProduction selects production defaults (JSON-friendly keys, no stack on warn).
	ModeProduction = "production"
	// ModeDevelopment selects development defaults.
	ModeDevelopment = "debug"

	// EncodingConsole writes human readable lines.
	EncodingConsole = "console"
	// EncodingJSON writes one JSON object per line.
	EncodingJSON = "json"

	fieldRequestID = "request_id"
)
