package handler

import (
	"time"

	"lifelink/internal/domain/entity"
)

// --- Requests ---

type registerRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type profileRequest struct {
	Name                 string `json:"name" validate:"required,max=200"`
	EmergencyContact     string `json:"emergencyContact" validate:"required,max=100"`
	EmergencyContactName string `json:"emergencyContactName" validate:"required,max=200"`
	BloodGroup           string `json:"bloodGroup" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Allergies            string `json:"allergies" validate:"max=2000"`
	MedicalConditions    string `json:"medicalConditions" validate:"max=2000"`
	CustomMessage        string `json:"customMessage" validate:"max=2000"`
}

func (r profileRequest) toDetails() entity.ProfileDetails {
	return entity.ProfileDetails{
		Name:                 r.Name,
		EmergencyContact:     r.EmergencyContact,
		EmergencyContactName: r.EmergencyContactName,
		BloodGroup:           r.BloodGroup,
		Allergies:            r.Allergies,
		MedicalConditions:    r.MedicalConditions,
		CustomMessage:        r.CustomMessage,
	}
}

type issueCodesRequest struct {
	Count int `json:"count" validate:"omitempty,min=1,max=500"`
}

// --- Responses ---

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	QRCodes   []string  `json:"qrCodes"`
	CreatedAt time.Time `json:"createdAt"`
}

func newUserResponse(u *entity.User) userResponse {
	codes := u.QRCodes
	if codes == nil {
		codes = []string{}
	}

	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		QRCodes:   codes,
		CreatedAt: u.CreatedAt,
	}
}

type authResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         userResponse `json:"user"`
	Roles        []string     `json:"roles"`
}

type accessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type profileResponse struct {
	ID                   string     `json:"id"`
	QRCode               string     `json:"qrCode"`
	Name                 string     `json:"name"`
	EmergencyContact     string     `json:"emergencyContact"`
	EmergencyContactName string     `json:"emergencyContactName"`
	BloodGroup           string     `json:"bloodGroup"`
	Allergies            string     `json:"allergies"`
	MedicalConditions    string     `json:"medicalConditions"`
	CustomMessage        string     `json:"customMessage"`
	IsActive             bool       `json:"isActive"`
	CreatedAt            time.Time  `json:"createdAt"`
	LastScanned          *time.Time `json:"lastScanned,omitempty"`
}

func newProfileResponse(p *entity.EmergencyProfile) profileResponse {
	return profileResponse{
		ID:                   p.ID.String(),
		QRCode:               p.QRCode,
		Name:                 p.Name,
		EmergencyContact:     p.EmergencyContact,
		EmergencyContactName: p.EmergencyContactName,
		BloodGroup:           p.BloodGroup,
		Allergies:            p.Allergies,
		MedicalConditions:    p.MedicalConditions,
		CustomMessage:        p.CustomMessage,
		IsActive:             p.IsActive,
		CreatedAt:            p.CreatedAt,
		LastScanned:          p.LastScanned,
	}
}

func newProfileResponses(profiles []*entity.EmergencyProfile) []profileResponse {
	out := make([]profileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, newProfileResponse(p))
	}

	return out
}

type codeResponse struct {
	ID              string    `json:"id"`
	Code            string    `json:"code"`
	Status          string    `json:"status"`
	LinkedUserID    *string   `json:"linkedUserId,omitempty"`
	EmergencyInfoID *string   `json:"emergencyInfoId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	ScansCount      int64     `json:"scansCount"`
}

func newCodeResponse(c *entity.QRCode) codeResponse {
	resp := codeResponse{
		ID:         c.ID.String(),
		Code:       c.Code,
		Status:     c.Status.String(),
		CreatedAt:  c.CreatedAt,
		ScansCount: c.ScansCount,
	}
	if c.LinkedUserID != nil {
		id := c.LinkedUserID.String()
		resp.LinkedUserID = &id
	}
	if c.EmergencyInfoID != nil {
		id := c.EmergencyInfoID.String()
		resp.EmergencyInfoID = &id
	}

	return resp
}

func newCodeResponses(codes []*entity.QRCode) []codeResponse {
	out := make([]codeResponse, 0, len(codes))
	for _, c := range codes {
		out = append(out, newCodeResponse(c))
	}

	return out
}

type codePageResponse struct {
	Codes      []codeResponse `json:"codes"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
}

// emergencyResponse is the public view shown to whoever scans a code.
type emergencyResponse struct {
	QRCode               string     `json:"qrCode"`
	Name                 string     `json:"name"`
	EmergencyContact     string     `json:"emergencyContact"`
	EmergencyContactName string     `json:"emergencyContactName"`
	BloodGroup           string     `json:"bloodGroup"`
	Allergies            string     `json:"allergies"`
	MedicalConditions    string     `json:"medicalConditions"`
	CustomMessage        string     `json:"customMessage"`
	LastScanned          *time.Time `json:"lastScanned,omitempty"`
}

func newEmergencyResponse(p *entity.EmergencyProfile) emergencyResponse {
	return emergencyResponse{
		QRCode:               p.QRCode,
		Name:                 p.Name,
		EmergencyContact:     p.EmergencyContact,
		EmergencyContactName: p.EmergencyContactName,
		BloodGroup:           p.BloodGroup,
		Allergies:            p.Allergies,
		MedicalConditions:    p.MedicalConditions,
		CustomMessage:        p.CustomMessage,
		LastScanned:          p.LastScanned,
	}
}
