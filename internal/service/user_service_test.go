package service

import (
	"errors"
	"testing"

	"lms_backend/internal/model"
	"lms_backend/internal/util"
)

func TestUserService_UpdateRoleAndEmail(t *testing.T) {
	env := newTestEnv(t)
	u := env.createUser(t, "a@example.com", model.Student)
	env.createUser(t, "taken@example.com", model.Student)

	role := model.Instructor
	updated, err := env.user.Update(u.ID, UserUpdateReq{Role: &role})
	if err != nil {
		t.Fatalf("update role: %v", err)
	}
	if updated.Role != model.Instructor {
		t.Fatalf("expected role change to apply")
	}

	taken := "taken@example.com"
	if _, err := env.user.Update(u.ID, UserUpdateReq{Email: &taken}); !errors.Is(err, util.ErrEmailRegistered) {
		t.Fatalf("expected ErrEmailRegistered got %v", err)
	}

	// 改成自己的邮箱不算冲突
	same := "a@example.com"
	if _, err := env.user.Update(u.ID, UserUpdateReq{Email: &same}); err != nil {
		t.Fatalf("update with own email: %v", err)
	}

	if _, err := env.user.Update(9999, UserUpdateReq{Role: &role}); !errors.Is(err, util.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound got %v", err)
	}
}

func TestUserService_ListAndDelete(t *testing.T) {
	env := newTestEnv(t)
	u1 := env.createUser(t, "a@example.com", model.Student)
	env.createUser(t, "b@example.com", model.Student)

	users, total, err := env.user.List(1, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 || len(users) != 2 {
		t.Fatalf("expected 2 users got total=%d len=%d", total, len(users))
	}

	if err := env.user.Delete(u1.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := env.user.Delete(u1.ID); !errors.Is(err, util.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound after delete got %v", err)
	}

	_, total, err = env.user.List(1, 10)
	if err != nil {
		t.Fatalf("list after delete: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 user left got %d", total)
	}
}
