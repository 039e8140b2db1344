package auth

import "fleet-service/internal/model"

// Static credential store. Plaintext comparison is deliberate: this is demo
// identity plumbing, not a security boundary.
var users = []model.User{
	{
		ID:       "1",
		Username: "admin",
		Password: "admin123",
		Role:     model.RoleAdmin,
		Name:     "Admin User",
		Email:    "admin@fleet.com",
	},
	{
		ID:       "2",
		Username: "manager",
		Password: "manager123",
		Role:     model.RoleFleetManager,
		Name:     "Fleet Manager",
		Email:    "manager@fleet.com",
	},
	{
		ID:       "3",
		Username: "driver",
		Password: "driver123",
		Role:     model.RoleDriver,
		Name:     "Driver User",
		Email:    "driver@fleet.com",
	},
}

// Authenticate returns the password-stripped user on a credential match.
func Authenticate(username, password string) (model.StoredUser, bool) {
	for _, u := range users {
		if u.Username == username && u.Password == password {
			return u.Stored(), true
		}
	}
	return model.StoredUser{}, false
}
