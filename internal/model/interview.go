package model

import (
	"time"
)

type Interview struct {
	ID        string    `gorm:"primaryKey;size:64" bson:"_id" json:"id"`
	UserID    string    `gorm:"not null;index:idx_interviews_user_created,priority:1" bson:"user_id" json:"userId"`
	Role      string    `gorm:"not null" bson:"role" json:"role"`
	Type      string    `gorm:"not null" bson:"type" json:"type"` // "Technical", "Behavioral", "Mixed"
	Techstack []string  `gorm:"serializer:json;type:text" bson:"techstack" json:"techstack"`
	Level     string    `bson:"level" json:"level"`
	Questions []string  `gorm:"serializer:json;type:text" bson:"questions" json:"questions"`
	Finalized bool      `gorm:"not null;default:false;index" bson:"finalized" json:"finalized"`
	CreatedAt time.Time `gorm:"not null;index:idx_interviews_user_created,priority:2" bson:"created_at" json:"createdAt"`
}
