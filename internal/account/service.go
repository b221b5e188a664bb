package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mycloudhq/mycloud/internal/config"
	"github.com/mycloudhq/mycloud/internal/plan"
)

// userStore abstracts the account persistence layer.
type userStore interface {
	CreateUser(ctx context.Context, name, email, password, planName string, limitBytes int64) (User, error)
	FindUserByEmail(ctx context.Context, email string) (User, error)
	FindUserByID(ctx context.Context, userID uuid.UUID) (User, error)
	ApplyUsageDelta(ctx context.Context, userID uuid.UUID, deltaBytes int64) (User, error)
	UpdatePlan(ctx context.Context, userID uuid.UUID, planName string, limitBytes int64) (User, error)
}

// Service encapsulates account use cases.
type Service struct {
	store    userStore
	cfg      config.SessionConfig
	nowFunc  func() time.Time
	idIssuer string
	parser   *jwt.Parser
}

// NewService creates a Service with dependencies.
func NewService(store userStore, cfg config.SessionConfig) *Service {
	return &Service{
		store:    store,
		cfg:      cfg,
		nowFunc:  time.Now,
		idIssuer: "mycloud",
		parser:   jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name})),
	}
}

// RegisterInput carries data for account signup.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput carries login credentials.
type LoginInput struct {
	Email    string
	Password string
}

// SessionClaims describes the identity extracted from a session token.
type SessionClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// Register creates a new user on the default plan with zero usage.
func (s *Service) Register(ctx context.Context, input RegisterInput) (User, error) {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Email) == "" ||
		input.Password == "" {
		return User{}, ErrMissingField
	}

	starter := plan.Default()
	user, err := s.store.CreateUser(ctx, input.Name, input.Email, input.Password, starter.Name, starter.LimitBytes())
	if err != nil {
		if errors.Is(err, ErrEmailExists) {
			return User{}, ErrEmailExists
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Authenticate resolves credentials to a user record. Both email and
// password must match the stored record exactly.
func (s *Service) Authenticate(ctx context.Context, input LoginInput) (User, error) {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return User{}, ErrInvalidCredentials
	}

	user, err := s.store.FindUserByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, fmt.Errorf("find user: %w", err)
	}

	if user.Password != input.Password {
		return User{}, ErrInvalidCredentials
	}

	return user, nil
}

// Get returns the authoritative snapshot for a user id.
func (s *Service) Get(ctx context.Context, userID uuid.UUID) (User, error) {
	return s.store.FindUserByID(ctx, userID)
}

// ApplyUsageDelta adjusts the user's storage usage, clamped at zero.
func (s *Service) ApplyUsageDelta(ctx context.Context, userID uuid.UUID, deltaBytes int64) (User, error) {
	return s.store.ApplyUsageDelta(ctx, userID, deltaBytes)
}

// ChangePlan switches the user to the named catalog plan, rescaling
// the limit while leaving usage untouched.
func (s *Service) ChangePlan(ctx context.Context, userID uuid.UUID, planName string) (User, error) {
	target, ok := plan.ByName(planName)
	if !ok {
		return User{}, fmt.Errorf("unknown plan %q", planName)
	}
	return s.store.UpdatePlan(ctx, userID, target.Name, target.LimitBytes())
}

// IssueSessionToken signs a session token identifying the user.
func (s *Service) IssueSessionToken(user User) (string, time.Time, error) {
	now := s.nowFunc()
	expiresAt := now.Add(s.cfg.TokenTTL)
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"iss":   s.idIssuer,
		"aud":   "mycloud-api",
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
		"email": user.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.TokenSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// ValidateSessionToken verifies the token signature and extracts claims.
func (s *Service) ValidateSessionToken(tokenString string) (SessionClaims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return SessionClaims{}, ErrUnauthorized
	}

	parsed, err := s.parser.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.TokenSecret), nil
	})
	if err != nil || !parsed.Valid {
		return SessionClaims{}, ErrUnauthorized
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return SessionClaims{}, ErrUnauthorized
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return SessionClaims{}, ErrUnauthorized
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return SessionClaims{}, ErrUnauthorized
	}

	email, _ := claims["email"].(string)

	expFloat, okExp := claims["exp"].(float64)
	if !okExp {
		return SessionClaims{}, ErrUnauthorized
	}
	exp := time.Unix(int64(expFloat), 0)

	iat := time.Time{}
	if iatFloat, ok := claims["iat"].(float64); ok {
		iat = time.Unix(int64(iatFloat), 0)
	}

	if exp.Before(s.nowFunc()) {
		return SessionClaims{}, ErrUnauthorized
	}

	return SessionClaims{
		UserID:    userID,
		Email:     email,
		ExpiresAt: exp,
		IssuedAt:  iat,
	}, nil
}
