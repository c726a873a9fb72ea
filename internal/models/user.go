package models

// Role tells apart customer accounts from store-owner accounts. It is chosen
// explicitly at signup and never derived from the email text.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleStore    Role = "store"
)

// User is the locally stored account record of the current session.
type User struct {
	ID           string `json:"user_id"`
	Email        string `json:"email"`
	Name         string `json:"name,omitempty"`
	Role         Role   `json:"role,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	PasswordHash string `json:"password_hash,omitempty"`
}
