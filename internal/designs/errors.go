package designs

// Error is a domain error carrying the numeric code exposed to API clients.
// Codes follow the original service's category scheme (2x design codes,
// 3x images, 9x authorization).
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrInvalidDesignCode = &Error{Code: 22, Message: "invalid design code"}

	ErrUnknownImage     = &Error{Code: 31, Message: "unknown image ID"}
	ErrBadDeletionToken = &Error{Code: 32, Message: "incorrect image deletion token"}
	ErrEmptyImage       = &Error{Code: 33, Message: "an image must contain at least one layer"}

	// The two tiering violations are distinct so callers can tell the user
	// exactly which rule they broke.
	ErrDimensionsRequired  = &Error{Code: 34, Message: "a single-layer image requires explicit, positive width and height"}
	ErrDimensionsForbidden = &Error{Code: 35, Message: "a multi-layer image must not specify width or height"}

	ErrTileCountMismatch = &Error{Code: 36, Message: "design ID count does not match layer count"}
	ErrInvalidDesignID   = &Error{Code: 37, Message: "design IDs must be positive and fit twelve base-30 digits"}

	ErrUnknownUser  = &Error{Code: 91, Message: "unknown user ID"}
	ErrInvalidToken = &Error{Code: 92, Message: "invalid or incorrect authorization token"}
)
