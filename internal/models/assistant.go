package models

import "time"

// Assistant is a staff account. Assistants are provisioned through the
// administrative endpoint, never through public signup.
type Assistant struct {
	ID               uint       `gorm:"primarykey" json:"id"`
	Email            string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash     string     `gorm:"type:varchar(255);not null" json:"-"`
	FirstName        string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName         string     `gorm:"type:varchar(100);not null" json:"last_name"`
	IsActive         bool       `gorm:"not null;default:true" json:"is_active"`
	GenderID         uint       `gorm:"not null" json:"-"`
	DateOfBirth      time.Time  `gorm:"not null" json:"-"`
	ProfileImagePath string     `gorm:"type:varchar(255)" json:"-"`
	LastLoginAt      *time.Time `json:"-"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	Gender Gender `gorm:"foreignKey:GenderID" json:"-"`
}

func (Assistant) TableName() string { return "assistants" }
