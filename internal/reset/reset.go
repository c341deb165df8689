// Package reset coordinates the password-reset flow: mint a one-time action
// code, deliver it out-of-band, redeem it for a password change.
package reset

import (
	"context"

	"github.com/rht-21/intervue/pkg/apperr"
	"github.com/rht-21/intervue/pkg/model"
	"go.uber.org/zap"
)

// MinPasswordLen is enforced before any code redemption is attempted.
const MinPasswordLen = 6

// IdentityStore is the read side needed to confirm an account exists before
// a code is minted for it.
type IdentityStore interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// CredentialProvider owns action codes: minting, verification, redemption.
type CredentialProvider interface {
	GeneratePasswordResetLink(ctx context.Context, email, continueURL string) (string, error)
	VerifyResetCode(ctx context.Context, code string) (string, error)
	ConfirmPasswordReset(ctx context.Context, code, newPassword string) error
}

// MailDispatcher delivers the reset link. The link never travels back to the
// requesting client.
type MailDispatcher interface {
	SendResetLink(ctx context.Context, to, link string) error
}

type Service struct {
	users       IdentityStore
	creds       CredentialProvider
	mail        MailDispatcher
	continueURL string
	log         *zap.Logger
}

func NewService(users IdentityStore, creds CredentialProvider, mail MailDispatcher, continueURL string, log *zap.Logger) *Service {
	return &Service{users: users, creds: creds, mail: mail, continueURL: continueURL, log: log}
}

// ForgotPassword starts a fresh reset request. Mail dispatch is a required
// step: if it fails the whole operation fails, and the link minted
// server-side is abandoned rather than re-used.
func (s *Service) ForgotPassword(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", apperr.New(apperr.KindValidation, "Email is required.")
	}

	if _, err := s.users.GetByEmail(ctx, email); err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return "", apperr.New(apperr.KindNotFound, "No account found with this email.")
		}
		return "", apperr.Wrap(apperr.KindExternalService, "Failed to generate password reset link.", err)
	}

	link, err := s.creds.GeneratePasswordResetLink(ctx, email, s.continueURL)
	if err != nil {
		return "", err
	}

	if err := s.mail.SendResetLink(ctx, email, link); err != nil {
		s.log.Error("reset mail dispatch failed", zap.String("email", email), zap.Error(err))
		return "", apperr.Wrap(apperr.KindExternalService, "Failed to send password reset email.", err)
	}

	return "Password reset link generated. Please check your email.", nil
}

// VerifyResetCode resolves which account a code belongs to, so the
// redemption form can show it. Terminal codes fail here and the client is
// expected to bounce back to sign-in.
func (s *Service) VerifyResetCode(ctx context.Context, code string) (string, error) {
	if code == "" {
		return "", apperr.New(apperr.KindInvalidOrExpired, "Invalid or expired reset link.")
	}
	return s.creds.VerifyResetCode(ctx, code)
}

// ResetPassword re-verifies the code and confirms the change. All redemption
// failures look the same to the end user; "already used" and "expired" are
// deliberately not distinguished.
func (s *Service) ResetPassword(ctx context.Context, code, newPassword string) error {
	if len(newPassword) < MinPasswordLen {
		return apperr.New(apperr.KindValidation, "Password must be at least 6 characters long.")
	}
	if _, err := s.creds.VerifyResetCode(ctx, code); err != nil {
		return err
	}
	if err := s.creds.ConfirmPasswordReset(ctx, code, newPassword); err != nil {
		if apperr.IsKind(err, apperr.KindInvalidOrExpired) || apperr.IsKind(err, apperr.KindNotFound) {
			return apperr.New(apperr.KindInvalidOrExpired, "Invalid or expired reset link.")
		}
		return err
	}
	return nil
}
