package models

import "time"

// User represents a registered user of the catalog.
type User struct {
	ID       string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Username string    `json:"username" gorm:"uniqueIndex;type:varchar(50);not null"`
	Email    string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Password string    `json:"-" gorm:"type:varchar(255);not null"` // bcrypt hash
	Created  time.Time `json:"created" gorm:"column:created_at;autoCreateTime"`
	Modified time.Time `json:"modified" gorm:"column:modified_at;autoUpdateTime"`
}

// CreateUserRequest is the payload accepted when registering a user.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UserResponse is the shape returned to clients. The password is
// deliberately not part of it.
type UserResponse struct {
	ID       string    `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`
}

// ToResponse projects the user onto its response contract.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Created:  u.Created,
		Modified: u.Modified,
	}
}
