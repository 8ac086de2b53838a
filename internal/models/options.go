package models

// Reference option rows. Seeded out-of-band and immutable through the
// API; the permalink slug is the external identifier in payloads.

type Gender struct {
	ID        uint   `gorm:"primarykey" json:"-"`
	Sort      int16  `gorm:"not null" json:"sort"`
	Display   string `gorm:"type:varchar(10);not null" json:"display"`
	Permalink string `gorm:"type:varchar(10);uniqueIndex;not null" json:"permalink"`
}

func (Gender) TableName() string { return "genders" }

type Profession struct {
	ID        uint   `gorm:"primarykey" json:"-"`
	Sort      int16  `gorm:"not null" json:"sort"`
	Display   string `gorm:"type:varchar(100);not null" json:"display"`
	Permalink string `gorm:"type:varchar(100);uniqueIndex;not null" json:"permalink"`
}

func (Profession) TableName() string { return "professions" }

type TaskType struct {
	ID        uint   `gorm:"primarykey" json:"-"`
	Sort      int16  `gorm:"not null" json:"sort"`
	Display   string `gorm:"type:varchar(100);not null" json:"display"`
	Permalink string `gorm:"type:varchar(100);uniqueIndex;not null" json:"permalink"`
}

func (TaskType) TableName() string { return "task_types" }
