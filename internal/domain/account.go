package domain

import "context"

// ForgottenPasswordToken maps a random token to a user. It is created on a
// password-reset request and looked up on reset.
type ForgottenPasswordToken struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user"`
	Token  string `json:"token"`
}

type ForgottenPasswordTokenRepository interface {
	Create(ctx context.Context, token *ForgottenPasswordToken) error
	GetByToken(ctx context.Context, token string) (*ForgottenPasswordToken, error)
}

// Mailer is the external mail collaborator.
type Mailer interface {
	SendInvite(to, inviterName, link string) error
	SendPasswordReset(to, preferredName, link string) error
}

// CredentialHasher is the external credential collaborator. The core never
// sees plaintext password storage.
type CredentialHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}

// TokenIssuer is the external session-token collaborator.
type TokenIssuer interface {
	Issue(userID int64, username string) (string, error)
}

type AccountUsecase interface {
	SendInvite(ctx context.Context, actingUsername, email, link string) error
	RequestPasswordReset(ctx context.Context, email, link string) error
	ResetPassword(ctx context.Context, token, password string) error
	// ChangePassword verifies the current password, stores the new one and
	// returns a fresh session token.
	ChangePassword(ctx context.Context, username, currentPassword, newPassword string) (string, error)
}
