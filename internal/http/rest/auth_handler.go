package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gustavoSo3/adogtame-back/internal/model"
	"github.com/gustavoSo3/adogtame-back/util"
	"github.com/gustavoSo3/adogtame-back/util/tracing"
	"github.com/gustavoSo3/adogtame-back/util/values"
	"github.com/jackc/pgx/v5"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleoauth "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

func (api *API) AuthRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Get("/google", api.GoogleLogin)
	mux.Get("/google/redirect", api.GoogleCallback)
	return mux
}

func (api *API) googleOauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     api.Config.GoogleClientID,
		ClientSecret: api.Config.GoogleClientSecret,
		RedirectURL:  api.Config.GoogleRedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

func (api *API) Register(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.RegisterRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	user, status, message, err := api.RegisterUser(r.Context(), req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Status:     status,
		Message:    message,
		Data:       user,
		StatusCode: util.StatusCode(status),
	}
}

func (api *API) Login(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.LoginRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	user, status, message, err := api.LoginUser(r.Context(), req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Status:     status,
		Message:    message,
		Data:       user,
		StatusCode: util.StatusCode(status),
	}
}

// GoogleLogin sends the browser to Google's consent screen. The client
// opens this in a popup and waits for a postMessage from the redirect.
func (api *API) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	url := api.googleOauthConfig().AuthCodeURL("adogtame", oauth2.AccessTypeOnline)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// oauthPopupPage hands the logged-in user back to the window that
// opened the popup, then closes it.
const oauthPopupPage = `<!DOCTYPE html>
<html>
<body>
<script>
	window.opener.postMessage(%s, "*");
	window.close();
</script>
</body>
</html>`

func (api *API) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	code := r.URL.Query().Get("code")
	if code == "" {
		writeErrorResponse(w, nil, values.BadRequestBody, "missing authorization code")
		return
	}

	conf := api.googleOauthConfig()
	tok, err := conf.Exchange(ctx, code)
	if err != nil {
		writeErrorResponse(w, err, values.NotAuthorised, "could not exchange authorization code")
		return
	}

	svc, err := googleoauth.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx, tok)))
	if err != nil {
		writeErrorResponse(w, err, values.Error, "could not reach google")
		return
	}
	info, err := svc.Userinfo.Get().Do()
	if err != nil {
		writeErrorResponse(w, err, values.Error, "could not fetch google profile")
		return
	}

	user, err := api.findOrCreateGoogleUser(ctx, info)
	if err != nil {
		writeErrorResponse(w, err, values.Error, "could not sign in with google")
		return
	}

	token, _, err := api.createToken(user.ID.String(), user.Email)
	if err != nil {
		writeErrorResponse(w, err, values.Error, "failed to create token")
		return
	}
	if err := api.UpdateUserTokenRepo(ctx, user.ID, token); err != nil {
		writeErrorResponse(w, err, values.Error, "failed to store token")
		return
	}
	user.Token = &token

	payload, err := json.Marshal(user)
	if err != nil {
		writeErrorResponse(w, err, values.Error, "unable to marshal server response")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, oauthPopupPage, payload)
}

// findOrCreateGoogleUser looks the google account up by email and
// provisions a passwordless user on first sign-in.
func (api *API) findOrCreateGoogleUser(ctx context.Context, info *googleoauth.Userinfo) (model.User, error) {
	email := util.NormalizeEmail(info.Email)

	user, err := api.GetUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if err != pgx.ErrNoRows {
		return model.User{}, err
	}

	user = model.User{
		ID:       util.GenerateUUID(),
		Email:    email,
		Name:     info.GivenName,
		LastName: info.FamilyName,
	}
	if info.Picture != "" {
		user.ProfilePicture = &info.Picture
	}
	return api.CreateUserRepo(ctx, user)
}
