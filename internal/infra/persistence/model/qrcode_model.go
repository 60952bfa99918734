package model

import (
	"time"

	"github.com/google/uuid"
)

// QRCodeModel mirrors the 'qr_codes' table.
type QRCodeModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code            string     `gorm:"type:varchar(64);uniqueIndex;not null"`
	Status          string     `gorm:"type:varchar(16);index;not null"`
	LinkedUserID    *uuid.UUID `gorm:"type:uuid;index"`
	EmergencyInfoID *uuid.UUID `gorm:"type:uuid"`
	ScansCount      int64      `gorm:"not null;default:0"`
	CreatedAt       time.Time  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (QRCodeModel) TableName() string {
	return "qr_codes"
}
