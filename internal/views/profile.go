package views

import (
	"context"
	"io"

	"github.com/sushihentaime/blogistui/internal/apiclient"
)

// Profile lists the signed-in user's own stories with a few totals.
type Profile struct {
	env *Env
	State
	Blogs []apiclient.Blog
}

func NewProfile(env *Env) *Profile {
	return &Profile{env: env}
}

func (p *Profile) User() *apiclient.User {
	return p.env.Session.User()
}

func (p *Profile) Load(ctx context.Context) error {
	if !p.env.Session.IsAuthenticated() {
		return ErrNotSignedIn
	}

	p.Err = ""
	p.Loading = true
	defer func() { p.Loading = false }()

	res, err := p.env.Client.ListBlogs(ctx)
	if err != nil {
		p.Err = p.env.fail("profile", err, "Failed to fetch your posts")
		return err
	}

	p.Blogs = res.Blogs
	return nil
}

// Delete removes one of the listed stories after confirmation. On success
// the story is dropped from the local list; the list is not fetched again.
func (p *Profile) Delete(ctx context.Context, id string, confirm Confirmer) error {
	if !confirm(deletePrompt) {
		return nil
	}

	p.Err = ""
	if _, err := p.env.Client.DeleteBlog(ctx, id); err != nil {
		p.Err = p.env.fail("profile", err, "Failed to delete post")
		return err
	}

	blogs := p.Blogs[:0]
	for _, b := range p.Blogs {
		if b.ID != id {
			blogs = append(blogs, b)
		}
	}
	p.Blogs = blogs
	return nil
}

func (p *Profile) StoriesPublished() int {
	return len(p.Blogs)
}

func (p *Profile) TotalWords() int {
	total := 0
	for _, b := range p.Blogs {
		total += wordCount(b.Content)
	}
	return total
}

// MemberSince is the year the user joined, or the current year when the
// session does not know.
func (p *Profile) MemberSince() int {
	if u := p.User(); u != nil && !u.CreatedAt.IsZero() {
		return u.CreatedAt.Year()
	}
	return p.env.Now().Year()
}

func (p *Profile) Render(w io.Writer) error {
	return render(w, "profile", p)
}
