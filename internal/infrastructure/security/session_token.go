package security

import (
	"crypto/sha256"
	"errors"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/hkdf"
)

const issuer = "courseadmin"

// SessionTokens signs the value of the session cookie. The cookie only
// carries the session id; everything else stays in redis.
type SessionTokens struct {
	key []byte
}

func NewSessionTokens(secret string) (*SessionTokens, error) {
	if len(secret) < 16 {
		return nil, errors.New("session secret must be at least 16 characters")
	}

	// ключ подписи выводим из секрета, сам секрет нигде не используется напрямую
	key := make([]byte, 32)
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte("courseadmin session cookie v1"))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, err
	}
	return &SessionTokens{key: key}, nil
}

func (m *SessionTokens) Generate(sessionID, adminID string, expiresAt time.Time) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid":  sessionID,
		"sub":  adminID,
		"iss":  issuer,
		"exp":  expiresAt.Unix(),
		"type": "session",
	})
	return t.SignedString(m.key)
}

// Validate returns the session id carried by a cookie value.
func (m *SessionTokens) Validate(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.key, nil
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid || claims["type"] != "session" {
		return "", errors.New("invalid token")
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", errors.New("invalid token")
	}
	return sid, nil
}
