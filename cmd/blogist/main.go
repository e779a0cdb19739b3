package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/sushihentaime/blogistui/internal/apiclient"
	"github.com/sushihentaime/blogistui/internal/config"
	"github.com/sushihentaime/blogistui/internal/session"
	"github.com/sushihentaime/blogistui/internal/storage"
	"github.com/sushihentaime/blogistui/internal/views"
	"github.com/sushihentaime/blogistui/pkg/logger"
)

// version is set at build time via ldflags.
var version = "dev"

type application struct {
	config  *config.Config
	logger  zerolog.Logger
	store   storage.Storage
	session *session.Session
	env     *views.Env
	in      *bufio.Reader
	out     io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 2
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "blogist %s\n", version)
		return 0
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return 2
	}

	cfg, err := config.Load(os.Getenv("BLOGIST_CONFIG"))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty, Output: stderr})

	app, err := newApplication(ctx, cfg, log, stdin, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer app.close()

	err = cmd(ctx, app, args[1:])
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errShown):
		return 1
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

func newApplication(ctx context.Context, cfg *config.Config, log zerolog.Logger, stdin io.Reader, stdout io.Writer) (*application, error) {
	store, err := openSessionStorage(cfg.SessionPath)
	if err != nil {
		return nil, fmt.Errorf("open session storage: %w", err)
	}

	sess := session.New(store, session.WithSecret(cfg.JWTSecret), session.WithLogger(log))
	if err := sess.Restore(ctx); err != nil {
		store.Close()
		return nil, err
	}

	client := apiclient.New(cfg.APIURL,
		apiclient.WithTokenSource(sess),
		apiclient.WithTimeout(cfg.Timeout),
	)

	env := views.NewEnv(sess, client)
	env.Logger = log

	return &application{
		config:  cfg,
		logger:  log,
		store:   store,
		session: sess,
		env:     env,
		in:      bufio.NewReader(stdin),
		out:     stdout,
	}, nil
}

// memorySessionPath keeps the session for the current run only.
const memorySessionPath = ":memory:"

func openSessionStorage(path string) (storage.Storage, error) {
	if path == memorySessionPath {
		return storage.NewMemory(), nil
	}
	return storage.NewSQLite(path)
}

func (app *application) close() {
	if err := app.store.Close(); err != nil {
		app.logger.Warn().Err(err).Msg("failed to close session storage")
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `blogist - read and write stories from the terminal

Usage:
  blogist <command> [flags]

Commands:
  home                                   Show the latest stories
  post -id <id>                          Read a story
  write -title <t> -content <c>          Publish a story (-preview to only preview)
  edit -id <id> [-title <t>] [-content <c>]
                                         Edit one of your stories
  delete -id <id> [-yes]                 Delete one of your stories
  profile                                Show your profile and stories
  profile-delete -id <id> [-yes]         Delete a story from your profile
  login -email <e> -password <p>         Sign in
  register -username <u> -email <e> -password <p>
                                         Create an account
  logout                                 Sign out
  whoami                                 Show the signed-in user
  version                                Print the blogist version
  help                                   Show this help message

Environment:
  BLOGIST_API_URL, BLOGIST_SESSION_PATH (":memory:" for a throwaway session),
  BLOGIST_JWT_SECRET, BLOGIST_TIMEOUT, BLOGIST_LOG_LEVEL, BLOGIST_CONFIG`)
}
