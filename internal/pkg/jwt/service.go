package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims mirrors the access token minted by the identity service. This
// service only verifies; issuance lives elsewhere.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email,omitempty"`

	jwtlib.RegisteredClaims
}

type Verifier interface {
	ValidateAccessToken(tokenString string) (Claims, error)
}

type HMACVerifier struct {
	secret []byte

	now func() time.Time
}

func NewHMACVerifier(secret string) *HMACVerifier {
	return &HMACVerifier{
		secret: []byte(secret),
		now:    time.Now,
	}
}

func (s *HMACVerifier) ValidateAccessToken(tokenString string) (Claims, error) {
	if len(s.secret) == 0 {
		return Claims{}, ErrTokenInvalid
	}

	p := jwtlib.NewParser(jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))

	var c Claims
	tok, err := p.ParseWithClaims(tokenString, &c, func(token *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}

	if c.UserID == uuid.Nil {
		// Older tokens carry the user only in the subject claim.
		sub, err := c.GetSubject()
		if err != nil || sub == "" {
			return Claims{}, ErrTokenInvalid
		}
		id, err := uuid.Parse(sub)
		if err != nil {
			return Claims{}, ErrTokenInvalid
		}
		c.UserID = id
	}

	return c, nil
}
