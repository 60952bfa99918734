package service

import (
	"context"

	"lifelink/internal/domain/entity"
)

// ScanNotifier tells a code owner that their emergency profile was opened.
type ScanNotifier interface {
	NotifyScan(ctx context.Context, owner *entity.User, profile *entity.EmergencyProfile) error
}
