package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/sushihentaime/blogistui/internal/common"
	"github.com/sushihentaime/blogistui/internal/views"
)

// errShown means the page already rendered the failure.
var errShown = errors.New("failure already shown")

type command func(ctx context.Context, app *application, args []string) error

var commands = map[string]command{
	"home":           homeCommand,
	"post":           postCommand,
	"write":          writeCommand,
	"edit":           editCommand,
	"delete":         deleteCommand,
	"profile":        profileCommand,
	"profile-delete": profileDeleteCommand,
	"login":          loginCommand,
	"register":       registerCommand,
	"logout":         logoutCommand,
	"whoami":         whoamiCommand,
}

type page interface {
	Render(w io.Writer) error
}

// show renders the header followed by p.
func (app *application) show(p page) error {
	if err := views.NewHeader(app.env).Render(app.out); err != nil {
		return err
	}
	fmt.Fprintln(app.out)
	return p.Render(app.out)
}

// showResult renders p and reports whether it ended up in its error state.
func (app *application) showResult(p page, st *views.State) error {
	if err := app.show(p); err != nil {
		return err
	}
	if st.Err != "" {
		return errShown
	}
	return nil
}

// navigate renders the page behind route.
func (app *application) navigate(ctx context.Context, route string) error {
	switch {
	case route == views.RouteHome:
		return homeCommand(ctx, app, nil)
	case route == views.RouteProfile:
		return profileCommand(ctx, app, nil)
	case strings.HasPrefix(route, "/blog/"):
		return postCommand(ctx, app, []string{"-id", strings.TrimPrefix(route, "/blog/")})
	case route == views.RouteLogin:
		fmt.Fprintln(app.out, "Account created. Sign in with: blogist login -email <email> -password <password>")
		return nil
	default:
		return fmt.Errorf("no page for route %q", route)
	}
}

// confirmer asks on the terminal unless yes is set.
func (app *application) confirmer(yes bool) views.Confirmer {
	return func(prompt string) bool {
		if yes {
			return true
		}
		fmt.Fprintf(app.out, "%s [y/N] ", prompt)
		line, _ := app.in.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		default:
			return false
		}
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func requireFlag(name, value string) error {
	if value == "" {
		return fmt.Errorf("-%s must be provided", name)
	}
	return nil
}

func homeCommand(ctx context.Context, app *application, args []string) error {
	home := views.NewHome(app.env)
	_ = home.Load(ctx)
	return app.showResult(home, &home.State)
}

func postCommand(ctx context.Context, app *application, args []string) error {
	fs := newFlagSet("post")
	id := fs.String("id", "", "post id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlag("id", *id); err != nil {
		return err
	}

	post := views.NewBlogPost(app.env)
	_ = post.Load(ctx, *id)
	if err := app.showResult(post, &post.State); err != nil {
		return err
	}
	if post.Blog == nil {
		return errShown
	}
	return nil
}

func writeCommand(ctx context.Context, app *application, args []string) error {
	fs := newFlagSet("write")
	title := fs.String("title", "", "story title")
	content := fs.String("content", "", "story body")
	preview := fs.Bool("preview", false, "preview without publishing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	page := views.NewCreatePost(app.env)
	if *preview {
		page.Title, page.Content = *title, *content
		page.TogglePreview()
		return app.show(page)
	}

	route, err := page.Submit(ctx, *title, *content)
	if err != nil {
		return app.formFailure(page, &page.State, err)
	}

	return app.navigate(ctx, route)
}

func editCommand(ctx context.Context, app *application, args []string) error {
	fs := newFlagSet("edit")
	id := fs.String("id", "", "post id")
	title := fs.String("title", "", "new title, unchanged when empty")
	content := fs.String("content", "", "new body, unchanged when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlag("id", *id); err != nil {
		return err
	}

	page := views.NewEditPost(app.env)
	if err := page.Load(ctx, *id); err != nil {
		return app.showResult(page, &page.State)
	}

	newTitle, newContent := page.Title, page.Content
	if *title != "" {
		newTitle = *title
	}
	if *content != "" {
		newContent = *content
	}

	route, err := page.Submit(ctx, newTitle, newContent)
	if err != nil {
		return app.formFailure(page, &page.State, err)
	}

	return app.navigate(ctx, route)
}

func deleteCommand(ctx context.Context, app *application, args []string) error {
	fs := newFlagSet("delete")
	id := fs.String("id", "", "post id")
	yes := fs.Bool("yes", false, "do not ask for confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlag("id", *id); err != nil {
		return err
	}

	post := views.NewBlogPost(app.env)
	if err := post.Load(ctx, *id); err != nil || post.Blog == nil {
		if err := app.showResult(post, &post.State); err != nil {
			return err
		}
		return errShown
	}

	route, err := post.Delete(ctx, app.confirmer(*yes))
	if err != nil {
		if post.Err != "" {
			return app.showResult(post, &post.State)
		}
		return err
	}
	if route == "" {
		fmt.Fprintln(app.out, "Cancelled.")
		return nil
	}

	return app.navigate(ctx, route)
}

func profileCommand(ctx context.Context, app *application, args []string) error {
	profile := views.NewProfile(app.env)
	if err := profile.Load(ctx); errors.Is(err, views.ErrNotSignedIn) {
		return fmt.Errorf("%w: run blogist login first", err)
	}
	return app.showResult(profile, &profile.State)
}

func profileDeleteCommand(ctx context.Context, app *application, args []string) error {
	fs := newFlagSet("profile-delete")
	id := fs.String("id", "", "post id")
	yes := fs.Bool("yes", false, "do not ask for confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlag("id", *id); err != nil {
		return err
	}

	profile := views.NewProfile(app.env)
	if err := profile.Load(ctx); err != nil {
		if errors.Is(err, views.ErrNotSignedIn) {
			return fmt.Errorf("%w: run blogist login first", err)
		}
		return app.showResult(profile, &profile.State)
	}

	_ = profile.Delete(ctx, *id, app.confirmer(*yes))
	return app.showResult(profile, &profile.State)
}

func loginCommand(ctx context.Context, app *application, args []string) error {
	fs := newFlagSet("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	page := views.NewLogin(app.env)
	route, err := page.Submit(ctx, *email, *password)
	if err != nil {
		return app.formFailure(page, &page.State, err)
	}

	return app.navigate(ctx, route)
}

func registerCommand(ctx context.Context, app *application, args []string) error {
	fs := newFlagSet("register")
	username := fs.String("username", "", "username")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	page := views.NewRegister(app.env)
	route, err := page.Submit(ctx, *username, *email, *password)
	if err != nil {
		return app.formFailure(page, &page.State, err)
	}

	return app.navigate(ctx, route)
}

func logoutCommand(ctx context.Context, app *application, args []string) error {
	route, err := views.NewHeader(app.env).Logout(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(app.out, "Signed out.")
	return app.navigate(ctx, route)
}

func whoamiCommand(ctx context.Context, app *application, args []string) error {
	user := app.session.User()
	if user == nil {
		fmt.Fprintln(app.out, "Not signed in.")
		return nil
	}
	fmt.Fprintf(app.out, "%s <%s>\nid: %s\n", user.Username, user.Email, user.ID)
	return nil
}

// formFailure renders a form page that rejected its input or failed to
// submit. Other errors are returned as they are.
func (app *application) formFailure(p page, st *views.State, err error) error {
	var ve common.ValidationError
	if errors.As(err, &ve) || st.Err != "" {
		if renderErr := app.show(p); renderErr != nil {
			return renderErr
		}
		return errShown
	}
	if errors.Is(err, views.ErrNotSignedIn) {
		return fmt.Errorf("%w: run blogist login first", err)
	}
	return err
}
