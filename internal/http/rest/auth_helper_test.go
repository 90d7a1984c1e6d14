package rest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gustavoSo3/adogtame-back/config"
	"github.com/gustavoSo3/adogtame-back/internal/model"
	"github.com/gustavoSo3/adogtame-back/util/values"
	"github.com/jackc/pgx/v5"
)

func testAPI(secret, expires string) *API {
	return &API{Config: &config.Config{JwtSecret: secret, JwtExpires: expires}}
}

func TestTokenRoundtrip(t *testing.T) {
	api := testAPI("test-secret", "1h")

	token, expiresAt, err := api.createToken("user-123", "ada@example.com")
	if err != nil {
		t.Fatalf("createToken() error = %v", err)
	}
	if remaining := time.Until(expiresAt); remaining < 55*time.Minute || remaining > time.Hour {
		t.Errorf("expiry %v not about an hour out", remaining)
	}

	claims, err := api.verifyToken(token)
	if err != nil {
		t.Fatalf("verifyToken() error = %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("UserID = %q, want %q", claims.UserID, "user-123")
	}
	if claims.Email != "ada@example.com" {
		t.Errorf("Email = %q, want %q", claims.Email, "ada@example.com")
	}
	if claims.Exp != expiresAt.Unix() {
		t.Errorf("Exp = %d, want %d", claims.Exp, expiresAt.Unix())
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	api := testAPI("test-secret", "-1h")

	token, _, err := api.createToken("user-123", "ada@example.com")
	if err != nil {
		t.Fatalf("createToken() error = %v", err)
	}

	_, err = api.verifyToken(token)
	if err == nil {
		t.Fatal("verifyToken() accepted an expired token")
	}
	if err.Error() != "token expired" {
		t.Errorf("err = %q, want %q", err.Error(), "token expired")
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, _, err := testAPI("one-secret", "1h").createToken("user-123", "ada@example.com")
	if err != nil {
		t.Fatalf("createToken() error = %v", err)
	}

	if _, err := testAPI("other-secret", "1h").verifyToken(token); err == nil {
		t.Fatal("verifyToken() accepted a token signed with a different secret")
	}
}

func TestVerifyTokenGarbage(t *testing.T) {
	api := testAPI("test-secret", "1h")

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := api.verifyToken(token); err == nil {
			t.Errorf("verifyToken(%q) accepted garbage", token)
		}
	}
}

func TestCreateTokenBadExpiry(t *testing.T) {
	api := testAPI("test-secret", "soon")

	if _, _, err := api.createToken("user-123", "ada@example.com"); err == nil {
		t.Fatal("createToken() should reject an unparseable expiry")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := hashPassword("hunter2")
	if err != nil {
		t.Fatalf("hashPassword() error = %v", err)
	}
	if hash == "hunter2" {
		t.Fatal("password stored in the clear")
	}

	if !checkPassword(hash, "hunter2") {
		t.Error("correct password rejected")
	}
	if checkPassword(hash, "hunter3") {
		t.Error("wrong password accepted")
	}
	if checkPassword("not-a-hash", "hunter2") {
		t.Error("malformed hash accepted")
	}
}

// fakeAuthStore keeps users in memory, keyed by stored (normalized)
// email.
type fakeAuthStore struct {
	users map[string]model.User

	emailExistsErr error
	getUserErr     error
}

func newFakeAuthStore() *fakeAuthStore {
	return &fakeAuthStore{users: make(map[string]model.User)}
}

func (f *fakeAuthStore) EmailExists(_ context.Context, email string) (bool, error) {
	if f.emailExistsErr != nil {
		return false, f.emailExistsErr
	}
	_, ok := f.users[email]
	return ok, nil
}

func (f *fakeAuthStore) CreateUserRepo(_ context.Context, user model.User) (model.User, error) {
	f.users[user.Email] = user
	return user, nil
}

func (f *fakeAuthStore) GetUserByEmail(_ context.Context, email string) (model.User, error) {
	if f.getUserErr != nil {
		return model.User{}, f.getUserErr
	}
	user, ok := f.users[email]
	if !ok {
		return model.User{}, pgx.ErrNoRows
	}
	return user, nil
}

func (f *fakeAuthStore) UpdateUserTokenRepo(_ context.Context, userID uuid.UUID, token string) error {
	for email, user := range f.users {
		if user.ID == userID {
			user.Token = &token
			f.users[email] = user
		}
	}
	return nil
}

func registerReq(email string) model.RegisterRequest {
	return model.RegisterRequest{Name: "Ada", Email: email, Password: "hunter2"}
}

func TestRegisterUser(t *testing.T) {
	api := testAPI("test-secret", "1h")
	store := newFakeAuthStore()

	user, status, _, err := api.registerUser(context.Background(), store, registerReq("Ada@Example.com"))
	if err != nil {
		t.Fatalf("registerUser() error = %v", err)
	}
	if status != values.Created {
		t.Errorf("status = %q, want %q", status, values.Created)
	}
	if user.Email != "ada@example.com" {
		t.Errorf("stored email = %q, want normalized %q", user.Email, "ada@example.com")
	}
	if user.Token == nil || *user.Token == "" {
		t.Error("registration should issue a token")
	}
	if user.PasswordHash == nil || *user.PasswordHash == "hunter2" {
		t.Error("password must be stored hashed")
	}
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	api := testAPI("test-secret", "1h")
	store := newFakeAuthStore()

	if _, _, _, err := api.registerUser(context.Background(), store, registerReq("ada@example.com")); err != nil {
		t.Fatalf("first registration error = %v", err)
	}

	_, status, _, err := api.registerUser(context.Background(), store, registerReq("Ada@Example.com"))
	if err != errEmailTaken {
		t.Fatalf("err = %v, want errEmailTaken", err)
	}
	if status != values.Conflict {
		t.Errorf("status = %q, want %q", status, values.Conflict)
	}
}

func TestRegisterUserInvalidEmail(t *testing.T) {
	api := testAPI("test-secret", "1h")
	store := newFakeAuthStore()

	_, status, _, err := api.registerUser(context.Background(), store, registerReq("not-an-email"))
	if err == nil {
		t.Fatal("registerUser() accepted a malformed email")
	}
	if status != values.BadRequestBody {
		t.Errorf("status = %q, want %q", status, values.BadRequestBody)
	}
	if len(store.users) != 0 {
		t.Error("no user should be created for a malformed email")
	}
}

// An unknown email and a wrong password must be indistinguishable to
// the caller.
func TestLoginUserFailuresIndistinguishable(t *testing.T) {
	api := testAPI("test-secret", "1h")
	store := newFakeAuthStore()

	if _, _, _, err := api.registerUser(context.Background(), store, registerReq("ada@example.com")); err != nil {
		t.Fatalf("registration error = %v", err)
	}

	_, unknownStatus, unknownMessage, unknownErr := api.loginUser(context.Background(), store,
		model.LoginRequest{Email: "nobody@example.com", Password: "hunter2"})
	_, wrongStatus, wrongMessage, wrongErr := api.loginUser(context.Background(), store,
		model.LoginRequest{Email: "ada@example.com", Password: "wrong"})

	if unknownErr == nil || wrongErr == nil {
		t.Fatal("both logins must fail")
	}
	if unknownStatus != wrongStatus || unknownMessage != wrongMessage || unknownErr != wrongErr {
		t.Errorf("failure responses differ: (%q, %q, %v) vs (%q, %q, %v)",
			unknownStatus, unknownMessage, unknownErr, wrongStatus, wrongMessage, wrongErr)
	}
	if unknownStatus != values.BadRequestBody {
		t.Errorf("status = %q, want %q", unknownStatus, values.BadRequestBody)
	}
}

func TestLoginUserSuccess(t *testing.T) {
	api := testAPI("test-secret", "1h")
	store := newFakeAuthStore()

	if _, _, _, err := api.registerUser(context.Background(), store, registerReq("ada@example.com")); err != nil {
		t.Fatalf("registration error = %v", err)
	}

	user, status, _, err := api.loginUser(context.Background(), store,
		model.LoginRequest{Email: "ada@example.com", Password: "hunter2"})
	if err != nil {
		t.Fatalf("loginUser() error = %v", err)
	}
	if status != values.Success {
		t.Errorf("status = %q, want %q", status, values.Success)
	}
	if user.Token == nil || *user.Token == "" {
		t.Error("login should issue a token")
	}
}

// A store failure is not a credentials problem and must not hide
// behind the bad-credentials response.
func TestLoginUserStoreError(t *testing.T) {
	api := testAPI("test-secret", "1h")
	store := newFakeAuthStore()
	store.getUserErr = errors.New("connection refused")

	_, status, _, err := api.loginUser(context.Background(), store,
		model.LoginRequest{Email: "ada@example.com", Password: "hunter2"})
	if err != store.getUserErr {
		t.Fatalf("err = %v, want the store error", err)
	}
	if status != values.Error {
		t.Errorf("status = %q, want %q", status, values.Error)
	}
}
