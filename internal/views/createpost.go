package views

import (
	"context"
	"io"

	"github.com/sushihentaime/blogistui/internal/apiclient"
)

const (
	titlePlaceholder   = "Your story title..."
	contentPlaceholder = "Start writing your story..."
)

// CreatePost is the editor for a new story.
type CreatePost struct {
	env *Env
	State
	postForm
	Preview bool
}

func NewCreatePost(env *Env) *CreatePost {
	return &CreatePost{env: env}
}

func (c *CreatePost) TogglePreview() {
	c.Preview = !c.Preview
}

func (c *CreatePost) TitleOrPlaceholder() string {
	if c.Title == "" {
		return titlePlaceholder
	}
	return c.Title
}

func (c *CreatePost) ContentOrPlaceholder() string {
	if c.Content == "" {
		return contentPlaceholder
	}
	return c.Content
}

// Submit publishes the story and returns the route of the new post. Blank
// fields are rejected before anything is sent.
func (c *CreatePost) Submit(ctx context.Context, title, content string) (string, error) {
	user := c.env.Session.User()
	if user == nil {
		return "", ErrNotSignedIn
	}

	c.Err = ""
	if err := c.validate(title, content); err != nil {
		return "", err
	}

	c.Loading = true
	defer func() { c.Loading = false }()

	res, err := c.env.Client.CreateBlog(ctx, apiclient.CreateBlogPayload{
		Title:    title,
		Content:  content,
		AuthorID: user.ID,
	})
	if err != nil {
		c.Err = c.env.failWithServerMessage("create_post", err, "Failed to create post. Please try again.")
		return "", err
	}

	return BlogRoute(res.Blog.ID), nil
}

func (c *CreatePost) Render(w io.Writer) error {
	return render(w, "create_post", c)
}
