package domain

// User is a dashboard account. Password holds the bcrypt hash, never the
// plaintext, and is excluded from JSON output.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
