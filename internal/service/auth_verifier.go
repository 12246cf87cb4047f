package service

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid cubre todo token rechazado; no se filtra la causa.
var ErrTokenInvalid = errors.New("token invalid")

// AuthClaims son los claims minimos de un access token emitido por el
// servicio de cuentas externo.
type AuthClaims struct {
	UserID    string `json:"uid"`
	TokenType string `json:"typ,omitempty"`
	jwt.RegisteredClaims
}

// AuthVerifier valida access tokens firmados aguas arriba. Este servicio no
// emite ni refresca tokens: registro y credenciales son colaboradores
// externos.
type AuthVerifier struct {
	secret []byte
}

func NewAuthVerifier(secret string) *AuthVerifier {
	return &AuthVerifier{secret: []byte(secret)}
}

// Verify parsea y valida la firma HMAC y la expiracion del token.
func (s *AuthVerifier) Verify(token string) (AuthClaims, error) {
	if len(s.secret) == 0 || strings.TrimSpace(token) == "" {
		return AuthClaims{}, ErrTokenInvalid
	}

	var claims AuthClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return AuthClaims{}, ErrTokenInvalid
	}
	if claims.TokenType != "" && claims.TokenType != "access" {
		return AuthClaims{}, ErrTokenInvalid
	}
	return claims, nil
}
