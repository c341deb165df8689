// Package auth is the credential provider: it owns password hashes, checks
// email/password pairs, and mints the three token kinds the rest of the
// system consumes: short-lived proof tokens, one-week session artifacts and
// one-time password-reset action codes.
package auth

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rht-21/intervue/pkg"
	"github.com/rht-21/intervue/pkg/apperr"
	"go.uber.org/zap"
)

// CredentialStore persists password hashes keyed by uid and email.
type CredentialStore interface {
	Save(ctx context.Context, uid, email, hash string) error
	GetByEmail(ctx context.Context, email string) (uid, hash string, err error)
	UpdateHashByEmail(ctx context.Context, email, hash string) error
}

// CodeLedger records which reset-code ids are still redeemable. Session and
// proof tokens are stateless; reset codes are the one token kind that must
// be single-use, so they get this side table.
type CodeLedger interface {
	Put(ctx context.Context, id string, ttl time.Duration) error
	Exists(ctx context.Context, id string) (bool, error)
	Consume(ctx context.Context, id string) (bool, error)
}

type Provider struct {
	creds      CredentialStore
	ledger     CodeLedger
	secret     []byte
	publicURL  string
	proofTTL   time.Duration
	sessionTTL time.Duration
	resetTTL   time.Duration
	log        *zap.Logger
}

func NewProvider(creds CredentialStore, ledger CodeLedger, secret, publicURL string, proofTTL, sessionTTL, resetTTL time.Duration, log *zap.Logger) *Provider {
	return &Provider{
		creds:      creds,
		ledger:     ledger,
		secret:     []byte(secret),
		publicURL:  publicURL,
		proofTTL:   proofTTL,
		sessionTTL: sessionTTL,
		resetTTL:   resetTTL,
		log:        log,
	}
}

// Register stores the bcrypt hash for a new account.
func (p *Provider) Register(ctx context.Context, uid, email, password string) error {
	if uid == "" || email == "" || password == "" {
		return apperr.New(apperr.KindValidation, "Missing required fields.")
	}
	hash, err := pkg.HashPassword(password)
	if err != nil {
		return apperr.Wrap(apperr.KindExternalService, "Failed to create an account.", err)
	}
	if err := p.creds.Save(ctx, uid, email, hash); err != nil {
		return err
	}
	return nil
}

// Authenticate checks an email/password pair and issues a short-lived proof
// token. The proof token is the only evidence of a password check the rest
// of the system ever sees.
func (p *Provider) Authenticate(ctx context.Context, email, password string) (string, error) {
	uid, hash, err := p.creds.GetByEmail(ctx, email)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return "", apperr.New(apperr.KindAuth, "Invalid email or password.")
		}
		return "", err
	}
	if err := pkg.ComparePassword(hash, password); err != nil {
		return "", apperr.New(apperr.KindAuth, "Invalid email or password.")
	}

	claims := newClaims(useProof, uuid.NewString(), p.proofTTL)
	claims.UID = uid
	claims.Email = email
	token, err := p.mint(claims)
	if err != nil {
		return "", apperr.Wrap(apperr.KindExternalService, "Failed to sign in.", err)
	}
	return token, nil
}

// CreateSessionToken exchanges a valid proof token for a session artifact.
// The artifact is stateless: validity is re-derivable from signature and
// expiry alone, no side table.
func (p *Provider) CreateSessionToken(ctx context.Context, proofToken string) (string, error) {
	proof, err := p.parse(proofToken, useProof)
	if err != nil {
		return "", apperr.Wrap(apperr.KindAuth, "Invalid credentials.", err)
	}

	claims := newClaims(useSession, uuid.NewString(), p.sessionTTL)
	claims.UID = proof.UID
	token, err := p.mint(claims)
	if err != nil {
		return "", apperr.Wrap(apperr.KindExternalService, "Failed to create session.", err)
	}
	return token, nil
}

// VerifySessionToken returns the uid embedded in a session artifact, or an
// auth error for anything unverifiable (bad signature, expired, wrong use).
func (p *Provider) VerifySessionToken(ctx context.Context, token string) (string, error) {
	claims, err := p.parse(token, useSession)
	if err != nil {
		return "", apperr.Wrap(apperr.KindAuth, "Invalid session.", err)
	}
	return claims.UID, nil
}

// GeneratePasswordResetLink mints a one-time action code bound to the email
// and continuation URL and returns the full redemption link. The caller is
// responsible for delivering it out-of-band; it must never go back to the
// requesting client.
func (p *Provider) GeneratePasswordResetLink(ctx context.Context, email, continueURL string) (string, error) {
	if _, _, err := p.creds.GetByEmail(ctx, email); err != nil {
		return "", err
	}

	claims := newClaims(useReset, uuid.NewString(), p.resetTTL)
	claims.Email = email
	claims.ContinueURL = continueURL
	code, err := p.mint(claims)
	if err != nil {
		return "", apperr.Wrap(apperr.KindExternalService, "Failed to generate password reset link.", err)
	}
	if err := p.ledger.Put(ctx, claims.ID, p.resetTTL); err != nil {
		return "", apperr.Wrap(apperr.KindExternalService, "Failed to generate password reset link.", err)
	}

	q := url.Values{}
	q.Set("mode", "resetPassword")
	q.Set("oobCode", code)
	q.Set("continueUrl", continueURL)
	return fmt.Sprintf("%s/reset-password?%s", p.publicURL, q.Encode()), nil
}

// VerifyResetCode resolves the account a live action code belongs to.
// Expired, malformed and already-consumed codes are indistinguishable to the
// caller.
func (p *Provider) VerifyResetCode(ctx context.Context, code string) (string, error) {
	claims, err := p.parse(code, useReset)
	if err != nil {
		return "", apperr.Wrap(apperr.KindInvalidOrExpired, "Invalid or expired reset link.", err)
	}
	live, err := p.ledger.Exists(ctx, claims.ID)
	if err != nil {
		return "", apperr.Wrap(apperr.KindExternalService, "Failed to verify reset link.", err)
	}
	if !live {
		return "", apperr.New(apperr.KindInvalidOrExpired, "Invalid or expired reset link.")
	}
	return claims.Email, nil
}

// ConfirmPasswordReset consumes the code and writes the new hash. The code
// is consumed before the hash write; a failed write does not revive it.
func (p *Provider) ConfirmPasswordReset(ctx context.Context, code, newPassword string) error {
	claims, err := p.parse(code, useReset)
	if err != nil {
		return apperr.Wrap(apperr.KindInvalidOrExpired, "Invalid or expired reset link.", err)
	}

	consumed, err := p.ledger.Consume(ctx, claims.ID)
	if err != nil {
		return apperr.Wrap(apperr.KindExternalService, "Failed to reset password.", err)
	}
	if !consumed {
		return apperr.New(apperr.KindInvalidOrExpired, "Invalid or expired reset link.")
	}

	hash, err := pkg.HashPassword(newPassword)
	if err != nil {
		return apperr.Wrap(apperr.KindExternalService, "Failed to reset password.", err)
	}
	if err := p.creds.UpdateHashByEmail(ctx, claims.Email, hash); err != nil {
		return err
	}
	return nil
}
