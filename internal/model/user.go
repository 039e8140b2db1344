package model

type Role string

const (
	RoleAdmin        Role = "admin"
	RoleFleetManager Role = "fleet_manager"
	RoleDriver       Role = "driver"
)

// User is a credential-store entry. The password never leaves the auth
// package; everything downstream works with StoredUser or Principal.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// StoredUser is the password-stripped identity handed to clients.
type StoredUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

func (u User) Stored() StoredUser {
	return StoredUser{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
		Name:     u.Name,
		Email:    u.Email,
	}
}

// Principal is the authenticated identity reconstructed from a token.
type Principal struct {
	UserID   string
	Username string
	Role     Role
	Name     string
	Email    string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

func (p Principal) IsFleetManager() bool {
	return p.Role == RoleFleetManager
}

func (p Principal) IsDriver() bool {
	return p.Role == RoleDriver
}

func (p Principal) Stored() StoredUser {
	return StoredUser{
		ID:       p.UserID,
		Username: p.Username,
		Role:     p.Role,
		Name:     p.Name,
		Email:    p.Email,
	}
}
