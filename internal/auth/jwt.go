package auth

import (
	"errors"
	"fmt"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/0thman3698/on-demand-backend/internal/domain"
)

// Claims is the shape of access tokens issued by the identity service. This
// package only verifies and extracts; issuance lives elsewhere.
type Claims struct {
	Sub  string `json:"sub"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Verifier turns bearer tokens into principals with an injected secret.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

func (v *Verifier) Verify(tokenStr string) (domain.Principal, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return domain.Principal{}, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return domain.Principal{}, errors.New("invalid token")
	}

	return domain.Principal{
		AccountID: claims.Sub,
		Role:      domain.Role(claims.Role),
	}, nil
}
