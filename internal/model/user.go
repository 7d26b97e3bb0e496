package model

// User is the single local profile. Its absence means "not logged in".
type User struct {
	Meta
	Name  string `json:"name"`
	Email string `json:"email"`
}
