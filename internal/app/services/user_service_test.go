package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/coursemart/coursemart-backend/internal/app/models"
	"github.com/coursemart/coursemart-backend/internal/app/models/dto"
	"github.com/coursemart/coursemart-backend/internal/pkg/apperrors"
)

type fakeUserStore struct {
	users         map[string]*models.User
	upserts       []bson.M
	statusUpdates []models.UserStatus
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	store := &fakeUserStore{users: map[string]*models.User{}}
	for _, u := range users {
		store.users[u.Email] = u
	}
	return store
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) FindAll(ctx context.Context) ([]*models.User, error) {
	all := make([]*models.User, 0, len(f.users))
	for _, u := range f.users {
		all = append(all, u)
	}
	return all, nil
}

func (f *fakeUserStore) Upsert(ctx context.Context, email string, fields bson.M) (*models.User, error) {
	f.upserts = append(f.upserts, fields)
	user, ok := f.users[email]
	if !ok {
		user = &models.User{Email: email}
		f.users[email] = user
	}
	if role, ok := fields["role"].(models.RoleType); ok {
		user.Role = role
	}
	if name, ok := fields["name"].(string); ok {
		user.Name = name
	}
	if status, ok := fields["status"].(models.UserStatus); ok {
		user.Status = status
	}
	if cover, ok := fields["coverImg"].(string); ok {
		user.CoverImage = cover
	}
	return user, nil
}

func (f *fakeUserStore) UpdateStatus(ctx context.Context, email string, status models.UserStatus) error {
	f.statusUpdates = append(f.statusUpdates, status)
	if user, ok := f.users[email]; ok {
		user.Status = status
	}
	return nil
}

func TestUpsertUserCreatesNewUser(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, zerolog.Nop())

	user, err := svc.UpsertUser(context.Background(), "new@example.com", &dto.UpsertUserRequest{Name: "New User", Role: "guest"})
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if user.Role != models.RoleGuest || user.Name != "New User" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestUpsertUserDefaultsToStudent(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, zerolog.Nop())

	user, err := svc.UpsertUser(context.Background(), "new@example.com", &dto.UpsertUserRequest{Name: "New User"})
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if user.Role != models.RoleStudent {
		t.Fatalf("expected default student role, got %q", user.Role)
	}
}

func TestUpsertUserLeavesExistingUntouched(t *testing.T) {
	existing := &models.User{Email: "old@example.com", Name: "Old", Role: models.RoleTeacher}
	store := newFakeUserStore(existing)
	svc := NewUserService(store, zerolog.Nop())

	user, err := svc.UpsertUser(context.Background(), "old@example.com", &dto.UpsertUserRequest{Name: "Changed", Role: "guest"})
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if user.Role != models.RoleTeacher || user.Name != "Old" {
		t.Fatalf("existing user must not be overwritten: %+v", user)
	}
	if len(store.upserts) != 0 {
		t.Fatalf("no upsert expected for existing user")
	}
}

func TestUpsertUserRecordsUpgradeRequest(t *testing.T) {
	existing := &models.User{Email: "s@example.com", Role: models.RoleStudent}
	store := newFakeUserStore(existing)
	svc := NewUserService(store, zerolog.Nop())

	user, err := svc.UpsertUser(context.Background(), "s@example.com", &dto.UpsertUserRequest{Role: "teacher", Status: "requested"})
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if user.Status != models.StatusRequested {
		t.Fatalf("expected requested status, got %q", user.Status)
	}
	if user.Role != models.RoleStudent {
		t.Fatalf("upgrade request must not change the role yet, got %q", user.Role)
	}
}

func TestUpsertUserIsIdempotent(t *testing.T) {
	existing := &models.User{Email: "s@example.com", Role: models.RoleStudent}
	store := newFakeUserStore(existing)
	svc := NewUserService(store, zerolog.Nop())

	req := &dto.UpsertUserRequest{Role: "teacher", Status: "requested"}
	if _, err := svc.UpsertUser(context.Background(), "s@example.com", req); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if _, err := svc.UpsertUser(context.Background(), "s@example.com", req); err != nil {
		t.Fatalf("second call: %v", err)
	}
	if len(store.statusUpdates) != 1 {
		t.Fatalf("repeated request must not rewrite the status, got %d updates", len(store.statusUpdates))
	}
}

func TestUpdateUserRolePromotes(t *testing.T) {
	existing := &models.User{Email: "s@example.com", Role: models.RoleStudent, Status: models.StatusRequested}
	store := newFakeUserStore(existing)
	svc := NewUserService(store, zerolog.Nop())

	user, err := svc.UpdateUserRole(context.Background(), "s@example.com", &dto.UpdateUserRequest{Role: "teacher"})
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if user.Role != models.RoleTeacher {
		t.Fatalf("expected teacher role, got %q", user.Role)
	}
	if user.Status != models.StatusNone {
		t.Fatalf("promotion must clear the pending request, got %q", user.Status)
	}
}

func TestUpdateUserRoleUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), zerolog.Nop())

	_, err := svc.UpdateUserRole(context.Background(), "missing@example.com", &dto.UpdateUserRequest{Role: "teacher"})
	if err == nil {
		t.Fatalf("expected error for unknown user")
	}
}
