package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gustavoSo3/adogtame-back/util"
	"github.com/gustavoSo3/adogtame-back/util/values"
)

func (api *API) FeedRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Group(func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Get("/feed", api.Feed)
	})

	return mux
}

// Feed upgrades to a websocket and streams new posts from the groups
// the caller belongs to. Browsers cannot set headers on a websocket
// handshake, so clients pass the token as a query parameter.
func (api *API) Feed(w http.ResponseWriter, r *http.Request) {
	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		writeErrorResponse(w, err, values.NotAuthorised, "unable to get user ID from context")
		return
	}

	groups, err := api.GroupsForUserRepo(r.Context(), userID)
	if err != nil {
		writeErrorResponse(w, err, values.Error, "failed to get user groups")
		return
	}

	allowed := make(map[string]bool, len(groups))
	for _, group := range groups {
		allowed[group.ID.String()] = true
	}

	api.Deps.Feed.HandleConnections(w, r, userID.String(), allowed)
}
