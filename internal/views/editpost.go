package views

import (
	"context"
	"io"
	"net/http"

	"github.com/sushihentaime/blogistui/internal/apiclient"
)

// EditPost is the editor for an existing story.
type EditPost struct {
	env *Env
	State
	postForm
	Blog *apiclient.Blog
}

func NewEditPost(env *Env) *EditPost {
	return &EditPost{env: env}
}

// Load fetches the post and seeds the form with its current values.
func (e *EditPost) Load(ctx context.Context, id string) error {
	e.Err = ""
	e.Blog = nil
	e.Loading = true
	defer func() { e.Loading = false }()

	res, err := e.env.Client.GetBlog(ctx, id)
	if err != nil {
		if apiclient.IsStatus(err, http.StatusNotFound) {
			e.Err = "Blog post not found"
		} else {
			e.Err = e.env.fail("edit_post", err, "Failed to fetch blog post")
		}
		return err
	}

	blog := res.Blog
	e.Blog = &blog
	e.Title, e.Content = blog.Title, blog.Content
	return nil
}

// Submit saves the edit and returns the route of the post.
func (e *EditPost) Submit(ctx context.Context, title, content string) (string, error) {
	if e.Blog == nil {
		return "", ErrNoPost
	}
	user := e.env.Session.User()
	if user == nil {
		return "", ErrNotSignedIn
	}
	if user.ID != e.Blog.AuthorID {
		return "", ErrNotAuthor
	}

	e.Err = ""
	if err := e.validate(title, content); err != nil {
		return "", err
	}

	e.Loading = true
	defer func() { e.Loading = false }()

	res, err := e.env.Client.UpdateBlog(ctx, e.Blog.ID, apiclient.UpdateBlogPayload{
		Title:   title,
		Content: content,
	})
	if err != nil {
		e.Err = e.env.fail("edit_post", err, "Failed to update post. Please try again.")
		return "", err
	}

	blog := res.Blog
	e.Blog = &blog
	return BlogRoute(blog.ID), nil
}

func (e *EditPost) Render(w io.Writer) error {
	return render(w, "edit_post", e)
}
