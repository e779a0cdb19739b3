package devserver

import (
	"context"
	"net/http"
)

type contextKey string

const userContextKey = contextKey("user")

func (app *Application) createUserContext(r *http.Request, user *User) *http.Request {
	ctx := context.WithValue(r.Context(), userContextKey, user)
	return r.WithContext(ctx)
}

// getUserContext returns nil for anonymous requests.
func (app *Application) getUserContext(r *http.Request) *User {
	user, ok := r.Context().Value(userContextKey).(*User)
	if !ok {
		return nil
	}
	return user
}
