package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"turnero/internal/shared/authorization"
	"turnero/internal/shared/biztime"
)

const issuer = "turnero"

// Claims identify an admin session.
type Claims struct {
	AdminID   uint                    `json:"admin_id"`
	Username  string                  `json:"username"`
	Role      authorization.AdminRole `json:"role"`
	SessionID string                  `json:"session_id"`
	jwt.RegisteredClaims
}

type AccessToken struct {
	Token     string
	ExpiresAt time.Time
	ExpiresIn int64
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
}

func NewJWTService(secret string, accessExpMinutes int) *JWTService {
	if accessExpMinutes <= 0 {
		accessExpMinutes = 60
	}
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
	}
}

func (s *JWTService) Generate(adminID uint, username string, role authorization.AdminRole, sessionID string) (*AccessToken, error) {
	now := biztime.NowUTC()
	exp := now.Add(s.AccessTTL())

	claims := &Claims{
		AdminID:   adminID,
		Username:  username,
		Role:      role,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ID:        sessionID,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	return &AccessToken{
		Token:     signed,
		ExpiresAt: exp,
		ExpiresIn: int64(s.accessExpMinutes * 60),
	}, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.AdminID == 0 || claims.SessionID == "" {
		return nil, fmt.Errorf("token is missing admin identity")
	}
	return claims, nil
}

// AccessTTL is the lifetime of issued tokens.
func (s *JWTService) AccessTTL() time.Duration {
	return time.Duration(s.accessExpMinutes) * time.Minute
}
