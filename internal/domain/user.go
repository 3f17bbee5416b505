package domain

import "time"

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleShop    UserRole = "shop"
	RoleAdmin   UserRole = "admin"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	NameJa       string    `json:"name_ja"`
	Email        string    `json:"email"`
	Role         UserRole  `json:"role"`
	StudentID    string    `json:"student_id,omitempty"`
	Department   string    `json:"department,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	TotalBorrows int       `json:"total_borrows"`
	TotalReturns int       `json:"total_returns"`
	Points       int       `json:"points"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	LastLoginAt  time.Time `json:"last_login_at"`
}
