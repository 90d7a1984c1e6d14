package model

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
)

// The mobile clients depend on the exact wire field names, in
// particular the id_user/id_group/id_post spelling.
func TestWireFieldNames(t *testing.T) {
	post := Post{ID: uuid.New(), UserID: uuid.New(), GroupID: uuid.New(), PetType: "dog"}
	raw, err := json.Marshal(post)
	if err != nil {
		t.Fatalf("marshal post: %v", err)
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal post: %v", err)
	}
	for _, key := range []string{"id_user", "id_group", "pet_type", "contact_info", "resolved"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("post JSON missing field %q", key)
		}
	}

	comment := Comment{ID: uuid.New(), PostID: uuid.New(), GroupID: uuid.New(), UserID: uuid.New()}
	raw, err = json.Marshal(comment)
	if err != nil {
		t.Fatalf("marshal comment: %v", err)
	}
	fields = nil
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal comment: %v", err)
	}
	for _, key := range []string{"id_post", "id_group", "id_user", "comment"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("comment JSON missing field %q", key)
		}
	}
}

func TestPasswordHashNeverSerialized(t *testing.T) {
	hash := "$2a$10$abcdefghijklmnopqrstuv"
	user := User{ID: uuid.New(), Email: "a@b.mx", PasswordHash: &hash}
	raw, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("marshal user: %v", err)
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal user: %v", err)
	}
	if _, ok := fields["password"]; ok {
		t.Error("password must not appear in user JSON")
	}
	for _, v := range fields {
		if s, ok := v.(string); ok && s == hash {
			t.Error("password hash leaked into user JSON")
		}
	}
}
