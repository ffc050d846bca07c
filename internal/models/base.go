package models

import "time"

// BaseModel provides shared columns for all tables. The autoincrement ID
// doubles as the insertion sequence number used to break ordering ties.
type BaseModel struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
