package domain

import "time"

// Role names form a fixed vocabulary. Role rows are seeded by migration and
// only ever looked up by name, never created at runtime.
const (
	RoleUser    = "user"
	RoleAdmin   = "admin"
	RoleBlocked = "blocked"
)

// Theme groups FAQ entries by topic. Names are unique (exact match after
// trimming).
type Theme struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

// Role is a reference-data row describing an access level.
type Role struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

// User is an account keyed by an externally supplied identifier (a
// messaging-platform ID). Every user has exactly one role.
type User struct {
	ID          int64   `json:"id"`
	DisplayName *string `json:"name,omitempty"`
	RoleID      int32   `json:"-"`
	Role        *Role   `json:"-"`
}

// RoleName returns the name of the user's role, or "" when the role
// reference has not been loaded.
func (u *User) RoleName() string {
	if u.Role == nil {
		return ""
	}
	return u.Role.Name
}

// FAQ is a curated question-answer pair bound to a theme. ThemeName is
// denormalized on read so responses carry the theme without a second lookup.
type FAQ struct {
	ID        int64  `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	ThemeID   int32  `json:"-"`
	ThemeName string `json:"theme"`
}

// UserQuestion is a question submitted by a user. Answer stays null until
// someone fills it in through a channel outside this service.
type UserQuestion struct {
	ID        int64     `json:"id"`
	Question  string    `json:"question"`
	Answer    *string   `json:"answer"`
	UserID    int64     `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
