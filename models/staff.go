package models

import "github.com/golang-jwt/jwt/v5"

// StaffUser is a dashboard login. Passwords are stored bcrypt-hashed.
type StaffUser struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `json:"username" gorm:"unique"`
	Password string `json:"password"`
}

type StaffClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
