// Package views implements the client's pages. Each page keeps its own
// loading and error state plus the data it fetched, and renders itself as
// plain text. Pages never navigate themselves: actions that would move the
// user elsewhere return the route to go to.
package views

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/sushihentaime/blogistui/internal/apiclient"
	"github.com/sushihentaime/blogistui/internal/session"
	"github.com/sushihentaime/blogistui/pkg/logger"
)

const (
	RouteHome     = "/"
	RouteLogin    = "/login"
	RouteRegister = "/register"
	RouteCreate   = "/create"
	RouteProfile  = "/profile"
)

func BlogRoute(id string) string { return "/blog/" + id }

func EditRoute(id string) string { return "/edit/" + id }

const deletePrompt = "Are you sure you want to delete this post?"

var (
	ErrNotSignedIn = errors.New("not signed in")
	ErrNotAuthor   = errors.New("only the author can change this post")
	ErrNoPost      = errors.New("no post loaded")
)

// State is the local state every page carries while it talks to the backend.
type State struct {
	Loading bool
	Err     string
}

// Confirmer asks the user a yes/no question.
type Confirmer func(prompt string) bool

// Env is what every page depends on.
type Env struct {
	Session *session.Session
	Client  *apiclient.Client
	Logger  zerolog.Logger
	Now     func() time.Time
}

func NewEnv(sess *session.Session, client *apiclient.Client) *Env {
	return &Env{
		Session: sess,
		Client:  client,
		Logger:  logger.Get(),
		Now:     time.Now,
	}
}

// fail logs err and returns the message the page shows in its place.
func (e *Env) fail(page string, err error, message string) string {
	e.Logger.Error().Err(err).Str("page", page).Msg(message)
	return message
}

// failWithServerMessage prefers the backend's own error message.
func (e *Env) failWithServerMessage(page string, err error, fallback string) string {
	msg := fallback
	if m := apiclient.ServerMessage(err); m != "" {
		msg = m
	}
	e.Logger.Error().Err(err).Str("page", page).Msg(fallback)
	return msg
}
