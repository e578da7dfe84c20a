package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type AdminUser struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// AdminSession is the server-side half of a login. A token is only honoured
// while its session exists.
type AdminSession struct {
	ID        string    `json:"id"`
	AdminID   int64     `json:"admin_id"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

type Claims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
	AdminID   int64  `json:"admin_id"`
	Username  string `json:"username"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
