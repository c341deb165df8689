package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenUse tags a token with the single purpose it may be redeemed for.
type tokenUse string

const (
	useProof   tokenUse = "proof"
	useSession tokenUse = "session"
	useReset   tokenUse = "reset"
)

type Claims struct {
	UID         string `json:"uid,omitempty"`
	Email       string `json:"email,omitempty"`
	ContinueURL string `json:"continue_url,omitempty"`
	Use         string `json:"use"`
	jwt.RegisteredClaims
}

func newClaims(use tokenUse, id string, ttl time.Duration) Claims {
	now := time.Now()
	return Claims{
		Use: string(use),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

func (p *Provider) mint(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

func (p *Provider) parse(tokenStr string, use tokenUse) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return p.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	if claims.Use != string(use) {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
