package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"roomscheduler/internal/domain"
)

type jwtClaims struct {
	jwt.RegisteredClaims
	RoomCode string `json:"room_code"`
}

type jwtTokens struct {
	secret []byte
	now    func() time.Time
}

// JWT signs and verifies participant tokens.
type JWT interface {
	domain.TokenIssuer
	domain.TokenVerifier
}

// NewJWT returns a JWT that signs with HS256 using the given secret.
func NewJWT(secret string) JWT {
	return &jwtTokens{secret: []byte(secret), now: time.Now}
}

func (j *jwtTokens) Issue(participantID, roomCode string, expiry time.Duration) (string, error) {
	now := j.now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   participantID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		RoomCode: roomCode,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (j *jwtTokens) Verify(token string) (*domain.TokenClaims, error) {
	claims := &jwtClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(j.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, errors.New("invalid token: missing subject")
	}
	return &domain.TokenClaims{ParticipantID: claims.Subject, RoomCode: claims.RoomCode}, nil
}
