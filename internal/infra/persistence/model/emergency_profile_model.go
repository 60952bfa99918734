package model

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyProfileModel mirrors the 'emergency_profiles' table.
// qr_code is not unique: inactive profiles may remain for a code.
type EmergencyProfileModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	QRCode               string    `gorm:"column:qr_code;type:varchar(64);index;not null"`
	Name                 string    `gorm:"type:varchar(255)"`
	EmergencyContact     string    `gorm:"type:varchar(64)"`
	EmergencyContactName string    `gorm:"type:varchar(255)"`
	BloodGroup           string    `gorm:"type:varchar(16)"`
	Allergies            string    `gorm:"type:text"`
	MedicalConditions    string    `gorm:"type:text"`
	CustomMessage        string    `gorm:"type:text"`
	IsActive             bool      `gorm:"not null;index"`
	CreatedAt            time.Time
	LastScanned          *time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmergencyProfileModel) TableName() string {
	return "emergency_profiles"
}
