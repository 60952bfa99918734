package repository

import "context"

// TransactionManager runs multi-record writes atomically. A non-nil error from
// fn rolls back every write made through the factory it receives.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories that share one transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewAuthRepository() AuthRepository
	NewRefreshTokenRepository() RefreshTokenRepository
	NewQRCodeRepository() QRCodeRepository
	NewProfileRepository() ProfileRepository
}
