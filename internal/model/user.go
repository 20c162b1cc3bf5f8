package model

// Role identifies which dashboard and route subtree a user gets.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

// User is a registered account. The credential registry stores the full
// record including the plaintext password; the session copy has the
// password stripped before it is written.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password,omitempty"`
	Role         Role   `json:"role"`
	Phone        string `json:"phone,omitempty"`
	DateOfBirth  string `json:"dateOfBirth,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
	Approved     bool   `json:"isApproved"`
}

// WithoutPassword returns a copy of the user safe to hand to the session
// store or a response body.
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}

// RegisterRequest carries a new account registration.
type RegisterRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Role        Role   `json:"role" binding:"required,oneof=patient doctor admin"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"dateOfBirth"`
}

// LoginRequest carries a login attempt. Role is optional; when set the
// match must also agree on role.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     Role   `json:"role" binding:"omitempty,oneof=patient doctor admin"`
}

// AuthResult mirrors the success/message pair every auth operation
// resolves to.
type AuthResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    *User  `json:"user,omitempty"`
}
