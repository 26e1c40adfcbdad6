package models

import "time"

type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Password   string    `json:"-"`
	Birthday   string    `json:"birthday"` // YYYY-MM-DD
	ProfilePic string    `json:"profile_pic"`
	Bio        string    `json:"bio"`
	Location   string    `json:"location"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type UserProfile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Birthday string `json:"birthday"`
}

func (u *User) ToProfile() *UserProfile {
	return &UserProfile{
		Name:     u.Name,
		Email:    u.Email,
		Birthday: u.Birthday,
	}
}
