package models

// User represents an administrator allowed to mutate the catalog.
type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex" json:"email"`
	DisplayName  string `json:"display_name"`
	PasswordHash string `json:"-"`
}
