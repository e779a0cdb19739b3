package views

import (
	"context"
	"io"

	"github.com/sushihentaime/blogistui/internal/apiclient"
)

// Home lists the signed-in user's stories under the landing hero.
type Home struct {
	env *Env
	State
	Blogs []apiclient.Blog
}

func NewHome(env *Env) *Home {
	return &Home{env: env}
}

func (h *Home) Authenticated() bool {
	return h.env.Session.IsAuthenticated()
}

// Load fetches the story list. Listing requires a signed-in user, so an
// anonymous Home makes no request.
func (h *Home) Load(ctx context.Context) error {
	h.Err = ""
	if !h.Authenticated() {
		h.Blogs = nil
		return nil
	}

	h.Loading = true
	defer func() { h.Loading = false }()

	res, err := h.env.Client.ListBlogs(ctx)
	if err != nil {
		h.Err = h.env.fail("home", err, "Failed to fetch blogs")
		return err
	}

	h.Blogs = res.Blogs
	return nil
}

func (h *Home) Render(w io.Writer) error {
	return render(w, "home", h)
}
