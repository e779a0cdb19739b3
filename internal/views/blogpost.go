package views

import (
	"context"
	"io"
	"net/http"

	"github.com/sushihentaime/blogistui/internal/apiclient"
)

// BlogPost shows a single story.
type BlogPost struct {
	env *Env
	State
	Blog *apiclient.Blog
}

func NewBlogPost(env *Env) *BlogPost {
	return &BlogPost{env: env}
}

// Load fetches the post. A 404 is not an error: the page renders
// "Blog post not found".
func (p *BlogPost) Load(ctx context.Context, id string) error {
	p.Err = ""
	p.Blog = nil
	p.Loading = true
	defer func() { p.Loading = false }()

	res, err := p.env.Client.GetBlog(ctx, id)
	if err != nil {
		if apiclient.IsStatus(err, http.StatusNotFound) {
			return nil
		}
		p.Err = p.env.fail("blog_post", err, "Failed to fetch blog post")
		return err
	}

	blog := res.Blog
	p.Blog = &blog
	return nil
}

func (p *BlogPost) Authenticated() bool {
	return p.env.Session.IsAuthenticated()
}

// IsAuthor reports whether the signed-in user wrote the loaded post.
func (p *BlogPost) IsAuthor() bool {
	if p.Blog == nil {
		return false
	}
	user := p.env.Session.User()
	return user != nil && user.ID == p.Blog.AuthorID
}

// Delete removes the post once the user confirms and returns the route to
// move to. A declined confirmation returns "" and sends nothing.
func (p *BlogPost) Delete(ctx context.Context, confirm Confirmer) (string, error) {
	if p.Blog == nil {
		return "", ErrNoPost
	}
	if !p.IsAuthor() {
		return "", ErrNotAuthor
	}
	if !confirm(deletePrompt) {
		return "", nil
	}

	p.Err = ""
	if _, err := p.env.Client.DeleteBlog(ctx, p.Blog.ID); err != nil {
		p.Err = p.env.fail("blog_post", err, "Failed to delete post")
		return "", err
	}

	return RouteProfile, nil
}

func (p *BlogPost) Render(w io.Writer) error {
	return render(w, "blog_post", p)
}

