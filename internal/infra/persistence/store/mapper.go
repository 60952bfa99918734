package store

import (
	"lifelink/internal/domain/entity"
	"lifelink/internal/infra/persistence/model"
)

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	codes := make([]string, len(data.QRCodes))
	copy(codes, data.QRCodes)

	return &entity.User{
		ID:        data.ID,
		Email:     data.Email,
		Name:      data.Name,
		QRCodes:   codes,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	codes := make(model.StringList, len(data.QRCodes))
	copy(codes, data.QRCodes)

	return &model.UserModel{
		ID:        data.ID,
		Email:     data.Email,
		Name:      data.Name,
		QRCodes:   codes,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toAuthenticationDomain(data *model.AuthenticationModel) *entity.Authentication {
	if data == nil {
		return nil
	}

	return &entity.Authentication{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       data.Provider,
		ProviderUserID: data.ProviderUserID,
		PasswordHash:   data.PasswordHash,
		CreatedAt:      data.CreatedAt,
	}
}

func fromAuthenticationDomain(data *entity.Authentication) *model.AuthenticationModel {
	if data == nil {
		return nil
	}

	return &model.AuthenticationModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       data.Provider,
		ProviderUserID: data.ProviderUserID,
		PasswordHash:   data.PasswordHash,
		CreatedAt:      data.CreatedAt,
	}
}

func toRefreshTokenDomain(data *model.RefreshTokenModel) *entity.RefreshToken {
	if data == nil {
		return nil
	}

	return &entity.RefreshToken{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromRefreshTokenDomain(data *entity.RefreshToken) *model.RefreshTokenModel {
	if data == nil {
		return nil
	}

	return &model.RefreshTokenModel{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

func toQRCodeDomain(data *model.QRCodeModel) *entity.QRCode {
	if data == nil {
		return nil
	}

	return &entity.QRCode{
		ID:              data.ID,
		Code:            data.Code,
		Status:          entity.CodeStatus(data.Status),
		LinkedUserID:    data.LinkedUserID,
		EmergencyInfoID: data.EmergencyInfoID,
		ScansCount:      data.ScansCount,
		CreatedAt:       data.CreatedAt,
	}
}

func fromQRCodeDomain(data *entity.QRCode) *model.QRCodeModel {
	if data == nil {
		return nil
	}

	return &model.QRCodeModel{
		ID:              data.ID,
		Code:            data.Code,
		Status:          data.Status.String(),
		LinkedUserID:    data.LinkedUserID,
		EmergencyInfoID: data.EmergencyInfoID,
		ScansCount:      data.ScansCount,
		CreatedAt:       data.CreatedAt,
	}
}

func toProfileDomain(data *model.EmergencyProfileModel) *entity.EmergencyProfile {
	if data == nil {
		return nil
	}

	return &entity.EmergencyProfile{
		ID:                   data.ID,
		QRCode:               data.QRCode,
		Name:                 data.Name,
		EmergencyContact:     data.EmergencyContact,
		EmergencyContactName: data.EmergencyContactName,
		BloodGroup:           data.BloodGroup,
		Allergies:            data.Allergies,
		MedicalConditions:    data.MedicalConditions,
		CustomMessage:        data.CustomMessage,
		IsActive:             data.IsActive,
		CreatedAt:            data.CreatedAt,
		LastScanned:          data.LastScanned,
	}
}

func fromProfileDomain(data *entity.EmergencyProfile) *model.EmergencyProfileModel {
	if data == nil {
		return nil
	}

	return &model.EmergencyProfileModel{
		ID:                   data.ID,
		QRCode:               data.QRCode,
		Name:                 data.Name,
		EmergencyContact:     data.EmergencyContact,
		EmergencyContactName: data.EmergencyContactName,
		BloodGroup:           data.BloodGroup,
		Allergies:            data.Allergies,
		MedicalConditions:    data.MedicalConditions,
		CustomMessage:        data.CustomMessage,
		IsActive:             data.IsActive,
		CreatedAt:            data.CreatedAt,
		LastScanned:          data.LastScanned,
	}
}
