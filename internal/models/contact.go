package models

import (
	"time"

	"gorm.io/gorm"
)

// Contact is an address-book entry a task can reference. Identity for
// dedup purposes is (email, client) or (phone, client); email and phone
// are stored as NULL when absent so the unique indexes do not collide
// on blanks.
type Contact struct {
	ID        uint    `gorm:"primarykey" json:"id"`
	FirstName string  `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string  `gorm:"type:varchar(100);not null" json:"last_name"`
	Email     *string `gorm:"type:varchar(255);uniqueIndex:uniq_contacts_email_client" json:"email"`
	Phone     *string `gorm:"type:varchar(50);uniqueIndex:uniq_contacts_phone_client" json:"phone"`
	ClientID  *uint   `json:"client_id"`
	// ClientScope mirrors ClientID with 0 for ownerless contacts. The
	// unique indexes hang off it rather than ClientID because NULLs
	// compare distinct in unique indexes, which would let two racing
	// inserts of the same ownerless identity both land.
	ClientScope uint      `gorm:"not null;default:0;uniqueIndex:uniq_contacts_email_client;uniqueIndex:uniq_contacts_phone_client" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Client *Client `gorm:"foreignKey:ClientID" json:"-"`
	Tasks  []Task  `gorm:"many2many:task_contacts" json:"-"`
}

func (Contact) TableName() string { return "contacts" }

// BeforeSave keeps ClientScope in step with ClientID.
func (c *Contact) BeforeSave(tx *gorm.DB) error {
	if c.ClientID != nil {
		c.ClientScope = *c.ClientID
	} else {
		c.ClientScope = 0
	}
	return nil
}
