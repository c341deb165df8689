// Package session turns proof-of-identity tokens into session cookies and
// resolves those cookies back into user records.
package session

import (
	"context"

	"github.com/rht-21/intervue/pkg/apperr"
	"github.com/rht-21/intervue/pkg/model"
	"go.uber.org/zap"
)

const (
	// CookieName is the session cookie, httpOnly, path "/", sameSite lax.
	CookieName = "session"
	// CookieMaxAge is one week in seconds.
	CookieMaxAge = 60 * 60 * 24 * 7
)

// IdentityStore is the persisted user directory.
type IdentityStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// CredentialProvider exchanges proof tokens for session artifacts and
// verifies them. Password checks already happened upstream.
type CredentialProvider interface {
	CreateSessionToken(ctx context.Context, proofToken string) (string, error)
	VerifySessionToken(ctx context.Context, token string) (string, error)
}

// Writer is the transport capability for the session cookie. One exists per
// request; everything else in this package stays transport-free.
type Writer interface {
	Write(value string, maxAge int)
	Read() (string, bool)
}

type Service struct {
	users IdentityStore
	creds CredentialProvider
	log   *zap.Logger
}

func NewService(users IdentityStore, creds CredentialProvider, log *zap.Logger) *Service {
	return &Service{users: users, creds: creds, log: log}
}

// SignUp creates the user record for a fresh uid.
func (s *Service) SignUp(ctx context.Context, uid, name, email string) error {
	if uid == "" || name == "" || email == "" {
		return apperr.New(apperr.KindValidation, "Missing required fields.")
	}

	_, err := s.users.GetByID(ctx, uid)
	if err == nil {
		return apperr.New(apperr.KindDuplicateIdentity, "User already exists. Please sign in instead.")
	}
	if !apperr.IsKind(err, apperr.KindNotFound) {
		return apperr.Wrap(apperr.KindExternalService, "Failed to create an account.", err)
	}

	if err := s.users.Create(ctx, &model.User{ID: uid, Name: name, Email: email}); err != nil {
		return err
	}
	return nil
}

// SignIn checks the account exists and issues a session. The proof token is
// trusted as-is; the credential provider already validated the password when
// it minted it.
func (s *Service) SignIn(ctx context.Context, w Writer, email, proofToken string) error {
	if email == "" || proofToken == "" {
		return apperr.New(apperr.KindValidation, "Email and token are required.")
	}

	if _, err := s.users.GetByEmail(ctx, email); err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return apperr.New(apperr.KindNotFound, "User does not exist.")
		}
		return apperr.Wrap(apperr.KindExternalService, "Failed to log into an account.", err)
	}

	s.IssueSession(ctx, w, proofToken)
	return nil
}

// IssueSession writes a one-week session cookie. A mint failure is logged
// and swallowed: the caller simply ends up unauthenticated instead of seeing
// a crash.
func (s *Service) IssueSession(ctx context.Context, w Writer, proofToken string) {
	token, err := s.creds.CreateSessionToken(ctx, proofToken)
	if err != nil {
		s.log.Warn("session mint failed", zap.Error(err))
		return
	}
	w.Write(token, CookieMaxAge)
}

// ResolveSession maps the session cookie to a user record. Any failure to
// resolve (no cookie, bad signature, expired artifact, user record gone)
// comes out as nil, never an error.
func (s *Service) ResolveSession(ctx context.Context, w Writer) *model.User {
	value, ok := w.Read()
	if !ok || value == "" {
		return nil
	}

	uid, err := s.creds.VerifySessionToken(ctx, value)
	if err != nil {
		s.log.Debug("session verify failed", zap.Error(err))
		return nil
	}

	user, err := s.users.GetByID(ctx, uid)
	if err != nil {
		s.log.Debug("session user lookup failed", zap.String("uid", uid), zap.Error(err))
		return nil
	}
	return user
}

func (s *Service) IsAuthenticated(ctx context.Context, w Writer) bool {
	return s.ResolveSession(ctx, w) != nil
}

// ClearSession overwrites the cookie with an empty value and zero max-age.
// The artifact itself stays verifiable until it expires; there is no
// revocation list.
func (s *Service) ClearSession(w Writer) {
	w.Write("", 0)
}
