package rest

import (
	"testing"

	"github.com/google/uuid"
	"github.com/gustavoSo3/adogtame-back/internal/model"
	"github.com/gustavoSo3/adogtame-back/util/values"
)

func TestPermissionAllows(t *testing.T) {
	tests := []struct {
		name   string
		perm   string
		action Action
		want   bool
	}{
		{"member can read group posts", values.PermissionUser, ActionGroupPosts, true},
		{"member can create posts", values.PermissionUser, ActionPostCreate, true},
		{"member can read comments", values.PermissionUser, ActionCommentRead, true},
		{"member can create comments", values.PermissionUser, ActionCommentCreate, true},
		{"member cannot update group", values.PermissionUser, ActionGroupUpdate, false},
		{"member cannot delete group", values.PermissionUser, ActionGroupDelete, false},
		{"member cannot grant permissions", values.PermissionUser, ActionPermissionGrant, false},
		{"member cannot revoke permissions", values.PermissionUser, ActionPermissionRevoke, false},
		{"admin can update group", values.PermissionAdmin, ActionGroupUpdate, true},
		{"admin can delete group", values.PermissionAdmin, ActionGroupDelete, true},
		{"admin can grant permissions", values.PermissionAdmin, ActionPermissionGrant, true},
		{"admin can read group posts", values.PermissionAdmin, ActionGroupPosts, true},
		{"non member cannot read group posts", "", ActionGroupPosts, false},
		{"non member cannot create posts", "", ActionPostCreate, false},
		{"non member cannot update group", "", ActionGroupUpdate, false},
		{"unknown action is denied", values.PermissionAdmin, Action("bogus"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := permissionAllows(tt.perm, tt.action); got != tt.want {
				t.Errorf("permissionAllows(%q, %q) = %v, want %v", tt.perm, tt.action, got, tt.want)
			}
		})
	}
}

func TestAuthorizeGroupAction(t *testing.T) {
	group := &model.Group{ID: uuid.New(), Name: "lost-cats"}

	t.Run("missing group wins over missing permission", func(t *testing.T) {
		status, _, err := authorizeGroupAction(nil, "", ActionGroupDelete)
		if err != errNotFound {
			t.Fatalf("err = %v, want errNotFound", err)
		}
		if status != values.NotFound {
			t.Errorf("status = %q, want %q", status, values.NotFound)
		}
	})

	t.Run("missing group wins even for an admin", func(t *testing.T) {
		status, _, err := authorizeGroupAction(nil, values.PermissionAdmin, ActionGroupDelete)
		if err != errNotFound {
			t.Fatalf("err = %v, want errNotFound", err)
		}
		if status != values.NotFound {
			t.Errorf("status = %q, want %q", status, values.NotFound)
		}
	})

	t.Run("insufficient permission", func(t *testing.T) {
		status, _, err := authorizeGroupAction(group, values.PermissionUser, ActionGroupDelete)
		if err != errForbidden {
			t.Fatalf("err = %v, want errForbidden", err)
		}
		if status != values.NotAllowed {
			t.Errorf("status = %q, want %q", status, values.NotAllowed)
		}
	})

	t.Run("allowed", func(t *testing.T) {
		status, message, err := authorizeGroupAction(group, values.PermissionAdmin, ActionGroupDelete)
		if err != nil {
			t.Fatalf("err = %v, want nil", err)
		}
		if status != values.Success || message != "" {
			t.Errorf("got (%q, %q), want (%q, \"\")", status, message, values.Success)
		}
	})
}

func TestCanDeleteComment(t *testing.T) {
	author := uuid.New()
	admin := uuid.New()
	other := uuid.New()

	tests := []struct {
		name  string
		perm  string
		actor uuid.UUID
		want  bool
	}{
		{"author deletes own comment", values.PermissionUser, author, true},
		{"admin deletes any comment", values.PermissionAdmin, admin, true},
		{"member cannot delete another's comment", values.PermissionUser, other, false},
		{"non member cannot delete", "", other, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canDeleteComment(tt.perm, author, tt.actor); got != tt.want {
				t.Errorf("canDeleteComment(%q, author, actor) = %v, want %v", tt.perm, got, tt.want)
			}
		})
	}
}

func TestCanModifyPost(t *testing.T) {
	author := uuid.New()
	other := uuid.New()

	if !canModifyPost(author, author) {
		t.Error("author should be able to modify their post")
	}
	if canModifyPost(author, other) {
		t.Error("only the author may modify a post")
	}
}

func TestCanActOnUser(t *testing.T) {
	self := uuid.New()
	other := uuid.New()

	if !canActOnUser(self, self) {
		t.Error("a user should be able to act on themselves")
	}
	if canActOnUser(self, other) {
		t.Error("no user may act on another user's record")
	}
}

func TestValidPermission(t *testing.T) {
	tests := []struct {
		perm string
		want bool
	}{
		{values.PermissionAdmin, true},
		{values.PermissionUser, true},
		{"owner", false},
		{"none", false},
		{"", false},
		{"Admin", false},
	}
	for _, tt := range tests {
		if got := validPermission(tt.perm); got != tt.want {
			t.Errorf("validPermission(%q) = %v, want %v", tt.perm, got, tt.want)
		}
	}
}
