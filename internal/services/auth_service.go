package services

import (
	"errors"
	"time"

	"photonx/internal/domain"
	"photonx/internal/repos"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrBadCreds = errors.New("invalid credentials")

// AuthService is the auth gate: it issues bearer tokens and resolves
// them back to a user identity.
type AuthService struct {
	Users    *repos.UserRepo
	Secret   []byte
	TokenTTL time.Duration
}

func NewAuthService(users *repos.UserRepo, secret string) *AuthService {
	return &AuthService{Users: users, Secret: []byte(secret), TokenTTL: 24 * time.Hour}
}

func (s *AuthService) Register(name, email, password string) (string, *domain.User, error) {
	if _, err := s.Users.ByEmail(email); err == nil {
		return "", nil, domain.ErrDuplicate
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return "", nil, err
	}
	u := &domain.User{ID: uuid.NewString(), Name: name, Email: email, Hash: string(h)}
	if err := s.Users.Create(u); err != nil {
		return "", nil, err
	}
	tok, err := s.issueToken(u.ID)
	return tok, u, err
}

func (s *AuthService) Login(email, password string) (string, *domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return "", nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return "", nil, ErrBadCreds
	}
	tok, err := s.issueToken(u.ID)
	return tok, u, err
}

func (s *AuthService) issueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.TokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

// ResolveToken verifies a bearer token and loads the user it names.
// Expired or otherwise invalid tokens resolve to ErrForbidden.
func (s *AuthService) ResolveToken(raw string) (*domain.User, error) {
	tok, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.Secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, domain.ErrForbidden
	}
	claims, ok := tok.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return nil, domain.ErrForbidden
	}
	u, err := s.Users.ByID(claims.Subject)
	if err != nil {
		return nil, domain.ErrForbidden
	}
	return u, nil
}

// ResetPassword verifies the supplied token and overwrites the stored
// credential hash for the user it names.
func (s *AuthService) ResetPassword(raw, password string) error {
	u, err := s.ResolveToken(raw)
	if err != nil {
		return err
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return err
	}
	ok, err := s.Users.UpdatePassword(u.ID, string(h))
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFoundf("user %s", u.ID)
	}
	return nil
}
