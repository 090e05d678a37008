package dto

import (
	"time"

	"github.com/thereayou/messagely/internal/models"
)

// UserSummary is the public shape of a user embedded in listings and
// message responses.
type UserSummary struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// UserDetail adds the timestamps. The password hash is deliberately
// absent from both shapes.
type UserDetail struct {
	UserSummary
	JoinAt      time.Time `json:"join_at"`
	LastLoginAt time.Time `json:"last_login_at"`
}

func NewUserSummary(u *models.User) UserSummary {
	return UserSummary{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
	}
}

func NewUserDetail(u *models.User) UserDetail {
	return UserDetail{
		UserSummary: NewUserSummary(u),
		JoinAt:      u.JoinAt,
		LastLoginAt: u.LastLoginAt,
	}
}
