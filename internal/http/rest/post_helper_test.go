package rest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/gustavoSo3/adogtame-back/internal/model"
	"github.com/gustavoSo3/adogtame-back/util/values"
	"github.com/jackc/pgx/v5"
)

// fakePostReader serves single posts without any membership data: a
// post read consults nothing else.
type fakePostReader struct {
	posts map[uuid.UUID]model.Post
}

func (f *fakePostReader) GetPostByIDRepo(_ context.Context, postID uuid.UUID) (model.Post, error) {
	post, ok := f.posts[postID]
	if !ok {
		return model.Post{}, pgx.ErrNoRows
	}
	return post, nil
}

func TestGetPostOpenToAnyAuthenticatedCaller(t *testing.T) {
	post := model.Post{ID: uuid.New(), UserID: uuid.New(), GroupID: uuid.New(), Title: "Lost dog"}
	reader := &fakePostReader{posts: map[uuid.UUID]model.Post{post.ID: post}}

	got, status, _, err := getPost(context.Background(), reader, post.ID)
	if err != nil {
		t.Fatalf("getPost() error = %v", err)
	}
	if status != values.Success {
		t.Errorf("status = %q, want %q", status, values.Success)
	}
	if got.ID != post.ID || got.Title != post.Title {
		t.Errorf("got post %v, want %v", got.ID, post.ID)
	}
}

func TestGetPostMissing(t *testing.T) {
	reader := &fakePostReader{posts: map[uuid.UUID]model.Post{}}

	_, status, _, err := getPost(context.Background(), reader, uuid.New())
	if err != errNotFound {
		t.Fatalf("err = %v, want errNotFound", err)
	}
	if status != values.NotFound {
		t.Errorf("status = %q, want %q", status, values.NotFound)
	}
}
