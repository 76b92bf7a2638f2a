package domain

import "errors"

// Sentinel errors returned by the core. The HTTP layer maps each one to a
// status code in the central error handler; the core never decides
// presentation.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrCourseNotFound = errors.New("course not found")

	// ErrEmailExists signals a uniqueness violation on user creation.
	ErrEmailExists = errors.New("email already exists")

	// ErrIDExists guards the store against duplicate identifier inserts.
	// With monotonic allocation it should be unreachable.
	ErrIDExists = errors.New("identifier already exists")

	// ErrInvalidPagination is returned for non-positive page or limit values
	// that slip past the boundary validation.
	ErrInvalidPagination = errors.New("invalid pagination parameters")

	// ErrInvalidRole is returned for a role outside the known set. The
	// boundary validates roles too; this covers callers that bypass it.
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidCredentials deliberately covers both unknown email and wrong
	// password so the response does not reveal which field mismatched.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid or expired token")
)
