package domain

// Identity is the public snapshot of an authenticated account, embedded in
// token claims and echoed back on login. It never carries the secret.
type Identity struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// Credential is a static demo login record. The secret is stored in plain
// text and compared in constant time; a production deployment must replace
// this with salted hashes before going anywhere near real users.
type Credential struct {
	Email    string
	Secret   string
	Identity Identity
}
