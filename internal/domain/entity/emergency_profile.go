package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyProfile is the medical and contact record shown to whoever scans a code.
type EmergencyProfile struct {
	ID                   uuid.UUID
	QRCode               string // Forward key used for resolution.
	Name                 string
	EmergencyContact     string
	EmergencyContactName string
	BloodGroup           string
	Allergies            string
	MedicalConditions    string
	CustomMessage        string
	IsActive             bool
	CreatedAt            time.Time
	LastScanned          *time.Time
}

// ProfileDetails are the owner-editable fields of a profile.
type ProfileDetails struct {
	Name                 string
	EmergencyContact     string
	EmergencyContactName string
	BloodGroup           string
	Allergies            string
	MedicalConditions    string
	CustomMessage        string
}

// Apply overwrites every editable field. Identity, creation time and scan data are untouched.
func (p *EmergencyProfile) Apply(d ProfileDetails) {
	p.Name = d.Name
	p.EmergencyContact = d.EmergencyContact
	p.EmergencyContactName = d.EmergencyContactName
	p.BloodGroup = d.BloodGroup
	p.Allergies = d.Allergies
	p.MedicalConditions = d.MedicalConditions
	p.CustomMessage = d.CustomMessage
}
