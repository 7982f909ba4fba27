package model

import "time"

const (
	ItemTypeLost  = "lost"
	ItemTypeFound = "found"
)

// Item is a single lost/found report. Rows are insert-only; there is no
// edit or delete path, so the struct carries no UpdatedAt.
type Item struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	ItemType    string    `gorm:"size:20;not null"`
	ItemName    string    `gorm:"size:100;not null"`
	Description string    `gorm:"type:text"`
	Location    string    `gorm:"size:255;not null"`
	ContactInfo string    `gorm:"size:100;not null"`
	ImagePath   *string   `gorm:"size:512"`
	Tag         string    `gorm:"size:50"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Item) TableName() string {
	return "items"
}
