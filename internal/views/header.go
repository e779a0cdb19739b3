package views

import (
	"context"
	"io"

	"github.com/sushihentaime/blogistui/internal/apiclient"
)

// Header is the navigation bar shown above every page.
type Header struct {
	env *Env
}

func NewHeader(env *Env) *Header {
	return &Header{env: env}
}

func (h *Header) User() *apiclient.User {
	return h.env.Session.User()
}

// Logout ends the session and returns the route to continue to. The
// in-memory session is cleared even when storage fails.
func (h *Header) Logout(ctx context.Context) (string, error) {
	if err := h.env.Session.Logout(ctx); err != nil {
		h.env.Logger.Error().Err(err).Str("page", "header").Msg("Failed to sign out")
		return RouteHome, err
	}
	return RouteHome, nil
}

func (h *Header) Render(w io.Writer) error {
	return render(w, "header", h)
}
