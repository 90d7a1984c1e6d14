package rest

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/gustavoSo3/adogtame-back/internal/model"
	"github.com/gustavoSo3/adogtame-back/util"
	"github.com/gustavoSo3/adogtame-back/util/values"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// authStore is the slice of the repository the register and login
// flows need.
type authStore interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	CreateUserRepo(ctx context.Context, user model.User) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	UpdateUserTokenRepo(ctx context.Context, userID uuid.UUID, token string) error
}

type TokenClaims struct {
	UserID string `json:"sub"`
	Email  string `json:"email"`
	Exp    int64  `json:"exp"`
}

func (api *API) createToken(id string, email string) (string, time.Time, error) {
	exp_time, err := time.ParseDuration(api.Config.JwtExpires)
	if err != nil {
		return "", time.Time{}, err
	}
	expiresAt := time.Now().Add(exp_time)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   id,
		"email": email,
		"exp":   expiresAt.Unix(),
		"iat":   time.Now().Unix(),
	})

	tokenString, err := token.SignedString([]byte(api.Config.JwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func checkPassword(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// badCredentials is the single response for every login failure, so a
// caller cannot tell a missing account from a wrong password.
func badCredentials() (model.User, string, string, error) {
	return model.User{}, values.BadRequestBody, "Bad credentials", errBadCredentials
}

// RegisterUser creates a user from the registration payload and issues
// a token bound to the new identity.
func (api *API) RegisterUser(ctx context.Context, req model.RegisterRequest) (model.User, string, string, error) {
	return api.registerUser(ctx, api, req)
}

func (api *API) registerUser(ctx context.Context, s authStore, req model.RegisterRequest) (model.User, string, string, error) {
	if err := util.ValidateStruct(req); err != nil {
		return model.User{}, values.BadRequestBody, "You need at least: name, email, and password", err
	}
	if err := util.ValidEmail(req.Email); err != nil {
		return model.User{}, values.BadRequestBody, "You need a valid email", err
	}

	req.Email = util.NormalizeEmail(req.Email)

	exists, err := s.EmailExists(ctx, req.Email)
	if err != nil {
		return model.User{}, values.Error, "Error checking email", err
	}
	if exists {
		return model.User{}, values.Conflict, "There is a username, with this email, try login in", errEmailTaken
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return model.User{}, values.Error, "Error creating new user", err
	}

	user := model.User{
		ID:             util.GenerateUUID(),
		Email:          req.Email,
		PasswordHash:   &hash,
		Name:           req.Name,
		LastName:       req.LastName,
		DateBirth:      req.DateBirth,
		Tags:           req.Tags,
		PhoneNumber:    req.PhoneNumber,
		ProfilePicture: req.ProfilePicture,
	}

	created, err := s.CreateUserRepo(ctx, user)
	if err != nil {
		return model.User{}, values.Error, "Error creating new user", err
	}

	token, _, err := api.createToken(created.ID.String(), created.Email)
	if err != nil {
		return model.User{}, values.Error, "Failed to create token", err
	}
	if err := s.UpdateUserTokenRepo(ctx, created.ID, token); err != nil {
		return model.User{}, values.Error, "Failed to store token", err
	}
	created.Token = &token

	return created, values.Created, "User created successfully", nil
}

// LoginUser checks credentials and issues a fresh token. The email is
// matched exactly as submitted; registration stores it lowercased.
func (api *API) LoginUser(ctx context.Context, req model.LoginRequest) (model.User, string, string, error) {
	return api.loginUser(ctx, api, req)
}

func (api *API) loginUser(ctx context.Context, s authStore, req model.LoginRequest) (model.User, string, string, error) {
	if err := util.ValidateStruct(req); err != nil {
		return model.User{}, values.BadRequestBody, "Missing body parameters", err
	}

	user, err := s.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return badCredentials()
		}
		return model.User{}, values.Error, "Error logging in", err
	}
	if user.PasswordHash == nil || !checkPassword(*user.PasswordHash, req.Password) {
		return badCredentials()
	}

	token, _, err := api.createToken(user.ID.String(), user.Email)
	if err != nil {
		return model.User{}, values.Error, "Failed to create token", err
	}
	if err := s.UpdateUserTokenRepo(ctx, user.ID, token); err != nil {
		return model.User{}, values.Error, "Failed to store token", err
	}
	user.Token = &token

	return user, values.Success, "Login successful", nil
}
