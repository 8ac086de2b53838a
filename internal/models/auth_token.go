package models

import "time"

// Principal kinds an auth token can belong to.
const (
	UserTypeClient    = "client"
	UserTypeAssistant = "assistant"
)

// AuthToken is the opaque bearer token presented per request. At most
// one token exists per account; logout deletes it and the next login
// transparently re-issues one.
type AuthToken struct {
	Key       string    `gorm:"type:varchar(64);primarykey" json:"key"`
	UserType  string    `gorm:"type:varchar(20);not null;uniqueIndex:uniq_auth_tokens_user" json:"-"`
	UserID    uint      `gorm:"not null;uniqueIndex:uniq_auth_tokens_user" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (AuthToken) TableName() string { return "auth_tokens" }
