package account

import (
	"context"
	"testing"
	"time"

	"github.com/mycloudhq/mycloud/internal/config"
)

const gib = int64(1024 * 1024 * 1024)

func newTestService() *Service {
	cfg := config.SessionConfig{
		TokenSecret: "session-secret",
		TokenTTL:    time.Hour,
	}
	return NewService(NewRepository(), cfg)
}

func TestRegisterDefaults(t *testing.T) {
	service := newTestService()

	user, err := service.Register(context.Background(), RegisterInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "hunter2",
	})
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}

	if user.Plan != "Free" {
		t.Fatalf("expected Free plan, got %s", user.Plan)
	}
	if user.StorageLimit != 5*gib {
		t.Fatalf("expected 5 GiB limit, got %d", user.StorageLimit)
	}
	if user.StorageUsed != 0 {
		t.Fatalf("expected zero usage, got %d", user.StorageUsed)
	}
	if user.CreatedAt.IsZero() {
		t.Fatalf("expected created timestamp to be set")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service := newTestService()

	if _, err := service.Register(context.Background(), RegisterInput{
		Name: "Ada", Email: "ada@example.com", Password: "hunter2",
	}); err != nil {
		t.Fatalf("initial registration returned error: %v", err)
	}

	_, err := service.Register(context.Background(), RegisterInput{
		Name: "Other Ada", Email: "ada@example.com", Password: "different",
	})
	if err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestRegisterMissingField(t *testing.T) {
	service := newTestService()

	_, err := service.Register(context.Background(), RegisterInput{
		Name: "", Email: "ada@example.com", Password: "hunter2",
	})
	if err != ErrMissingField {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}

func TestAuthenticateRoundTrip(t *testing.T) {
	service := newTestService()

	registered, err := service.Register(context.Background(), RegisterInput{
		Name: "Ada", Email: "ada@example.com", Password: "hunter2",
	})
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}

	user, err := service.Authenticate(context.Background(), LoginInput{
		Email: "ada@example.com", Password: "hunter2",
	})
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("expected same user id across register/login")
	}

	if _, err := service.Authenticate(context.Background(), LoginInput{
		Email: "ada@example.com", Password: "wrong",
	}); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
}

func TestAuthenticateEmailIsCaseSensitive(t *testing.T) {
	service := newTestService()

	if _, err := service.Register(context.Background(), RegisterInput{
		Name: "Ada", Email: "Ada@example.com", Password: "hunter2",
	}); err != nil {
		t.Fatalf("register returned error: %v", err)
	}

	if _, err := service.Authenticate(context.Background(), LoginInput{
		Email: "ada@example.com", Password: "hunter2",
	}); err != ErrInvalidCredentials {
		t.Fatalf("expected exact-match email comparison, got %v", err)
	}
}

func TestApplyUsageDeltaClampsAtZero(t *testing.T) {
	service := newTestService()

	user, err := service.Register(context.Background(), RegisterInput{
		Name: "Ada", Email: "ada@example.com", Password: "hunter2",
	})
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}

	if _, err := service.ApplyUsageDelta(context.Background(), user.ID, 2*gib); err != nil {
		t.Fatalf("apply delta returned error: %v", err)
	}

	// Deleting more than was ever uploaded must floor usage at zero.
	updated, err := service.ApplyUsageDelta(context.Background(), user.ID, -5*gib)
	if err != nil {
		t.Fatalf("apply delta returned error: %v", err)
	}
	if updated.StorageUsed != 0 {
		t.Fatalf("expected usage clamped at 0, got %d", updated.StorageUsed)
	}
}

func TestChangePlanLeavesUsageUntouched(t *testing.T) {
	service := newTestService()

	user, err := service.Register(context.Background(), RegisterInput{
		Name: "Ada", Email: "ada@example.com", Password: "hunter2",
	})
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}

	if _, err := service.ApplyUsageDelta(context.Background(), user.ID, 40*gib); err != nil {
		t.Fatalf("apply delta returned error: %v", err)
	}

	upgraded, err := service.ChangePlan(context.Background(), user.ID, "Basic")
	if err != nil {
		t.Fatalf("change plan returned error: %v", err)
	}
	if upgraded.Plan != "Basic" || upgraded.StorageLimit != 50*gib {
		t.Fatalf("unexpected plan after upgrade: %s / %d", upgraded.Plan, upgraded.StorageLimit)
	}
	if upgraded.StorageUsed != 40*gib {
		t.Fatalf("expected usage untouched by plan change, got %d", upgraded.StorageUsed)
	}

	// A downgrade below current usage is accepted, leaving the user over quota.
	downgraded, err := service.ChangePlan(context.Background(), user.ID, "Free")
	if err != nil {
		t.Fatalf("change plan returned error: %v", err)
	}
	if downgraded.StorageLimit != 5*gib {
		t.Fatalf("expected 5 GiB limit after downgrade, got %d", downgraded.StorageLimit)
	}
	if downgraded.StorageUsed != 40*gib {
		t.Fatalf("expected usage preserved on downgrade, got %d", downgraded.StorageUsed)
	}

	if _, err := service.ChangePlan(context.Background(), user.ID, "Enterprise"); err == nil {
		t.Fatalf("expected error for unknown plan")
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	service := newTestService()

	user, err := service.Register(context.Background(), RegisterInput{
		Name: "Ada", Email: "ada@example.com", Password: "hunter2",
	})
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}

	token, expiresAt, err := service.IssueSessionToken(user)
	if err != nil {
		t.Fatalf("issue token returned error: %v", err)
	}
	if token == "" || expiresAt.IsZero() {
		t.Fatalf("expected a signed token with an expiry")
	}

	claims, err := service.ValidateSessionToken(token)
	if err != nil {
		t.Fatalf("validate token returned error: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected claims for user %s, got %s", user.ID, claims.UserID)
	}

	if _, err := service.ValidateSessionToken("not-a-token"); err != ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized for garbage token, got %v", err)
	}
}
