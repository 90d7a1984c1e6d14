package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/gustavoSo3/adogtame-back/util/tracing"
	"github.com/gustavoSo3/adogtame-back/util/values"
	"github.com/lucsky/cuid"
)

const missingTokenMessage = "token required as part of body:token or as part of the url query:token or as header: x-access-token"

// RequestTracing handles the request tracing context
func RequestTracing(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestSource := r.Header.Get(values.HeaderRequestSource)
		if requestSource == "" {
			requestSource = "client"
		}

		requestID := r.Header.Get(values.HeaderRequestID)
		if requestID == "" {
			requestID = cuid.New()
		}

		tracingContext := tracing.Context{
			RequestID:     requestID,
			RequestSource: requestSource,
		}

		ctx = context.WithValue(ctx, values.ContextTracingKey, tracingContext)
		next.ServeHTTP(w, r.WithContext(ctx))
	}

	return http.HandlerFunc(fn)
}

// extractToken looks for the bearer token in the x-access-token header,
// an Authorization Bearer header, the token query parameter, or a token
// field in a JSON body. A consumed body is restored for downstream
// handlers.
func extractToken(r *http.Request) string {
	if token := r.Header.Get(values.HeaderAccessToken); token != "" {
		return token
	}

	authorization := strings.Split(r.Header.Get("Authorization"), " ")
	if len(authorization) == 2 && authorization[0] == "Bearer" {
		return authorization[1]
	}

	if token := r.URL.Query().Get("token"); token != "" {
		return token
	}

	if r.Body == nil || !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return ""
	}

	raw, err := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil {
		return ""
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Token
}

// RequireLogin rejects requests without a valid token and stores the
// caller's user id in the request context.
func (api *API) RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			writeErrorResponse(w, nil, values.NotAuthorised, missingTokenMessage)
			return
		}

		claims, err := api.verifyToken(token)
		if err != nil {
			if err.Error() == "token expired" {
				writeErrorResponse(w, err, values.TokenExpired, "token-expired")
				return
			}
			writeErrorResponse(w, err, values.BadRequestBody, "invalid-token")
			return
		}

		dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		user, err := api.GetUserByID(dbCtx, claims.UserID)
		if err != nil {
			writeErrorResponse(w, err, values.BadRequestBody, "user-not-found")
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, "user_id", user.ID.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (api *API) verifyToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			log.Println("unexpected signing method")
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(api.Config.JwtSecret), nil
	})

	if ve, ok := err.(*jwt.ValidationError); ok {
		if ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, fmt.Errorf("token expired")
		}
	}

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims")
	}

	userID, ok := claims["sub"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid user id")
	}

	email, _ := claims["email"].(string)

	exp, _ := claims["exp"].(float64)

	return &TokenClaims{
		UserID: userID,
		Email:  email,
		Exp:    int64(exp),
	}, nil
}
