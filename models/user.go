package models

import "gorm.io/gorm"

// User is a dashboard login. Passwords are bcrypt hashes.
type User struct {
	gorm.Model
	FullName string `json:"fullName"`
	Username string `json:"username" gorm:"uniqueIndex;type:varchar(191)"`
	Password string `json:"-"`
}
