package models

import "time"

// Client is a customer account. IsActive doubles as the soft-delete
// flag: an inactive client is invisible to default retrieval but the
// row is kept for referential history.
type Client struct {
	ID                 uint       `gorm:"primarykey" json:"id"`
	Email              string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash       string     `gorm:"type:varchar(255);not null" json:"-"`
	FirstName          string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName           string     `gorm:"type:varchar(100);not null" json:"last_name"`
	Phone              string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"phone"`
	IsActive           bool       `gorm:"not null;default:true" json:"is_active"`
	GenderID           uint       `gorm:"not null" json:"-"`
	ProfessionID       uint       `gorm:"not null" json:"-"`
	PrimaryAssistantID *uint      `json:"primary_assistant_id"`
	DateOfBirth        time.Time  `gorm:"not null" json:"-"`
	ProfileImagePath   string     `gorm:"type:varchar(255)" json:"-"`
	LastLoginAt        *time.Time `json:"-"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	Gender           Gender     `gorm:"foreignKey:GenderID" json:"-"`
	Profession       Profession `gorm:"foreignKey:ProfessionID" json:"-"`
	PrimaryAssistant *Assistant `gorm:"foreignKey:PrimaryAssistantID" json:"-"`
	Tasks            []Task     `gorm:"foreignKey:ClientID" json:"-"`
}

func (Client) TableName() string { return "clients" }
