package views

import (
	"context"
	"io"

	"github.com/sushihentaime/blogistui/internal/apiclient"
)

type loginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// Login signs an existing user in.
type Login struct {
	env *Env
	State
	Email  string
	Fields map[string]string
}

func NewLogin(env *Env) *Login {
	return &Login{env: env}
}

// Submit signs in and returns the route to continue to.
func (l *Login) Submit(ctx context.Context, email, password string) (string, error) {
	l.Err = ""
	l.Email = email

	fields, err := validateForm(loginForm{Email: email, Password: password})
	l.Fields = fields
	if err != nil {
		return "", err
	}

	l.Loading = true
	defer func() { l.Loading = false }()

	res, err := l.env.Client.Login(ctx, apiclient.LoginPayload{Email: email, Password: password})
	if err != nil {
		l.Err = l.env.failWithServerMessage("login", err, "Failed to sign in")
		return "", err
	}

	return completeAuth(ctx, l.env, &l.State, "login", res, "Failed to sign in")
}

func (l *Login) Render(w io.Writer) error {
	return render(w, "login", l)
}

type registerForm struct {
	Username string `form:"username" validate:"required,min=3,max=25,alphanum"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=8,max=72"`
}

// Register creates an account.
type Register struct {
	env *Env
	State
	Username string
	Email    string
	Fields   map[string]string
}

func NewRegister(env *Env) *Register {
	return &Register{env: env}
}

// Submit creates the account. When the backend signs the new user in
// straight away the route is home, otherwise the login page.
func (r *Register) Submit(ctx context.Context, username, email, password string) (string, error) {
	r.Err = ""
	r.Username, r.Email = username, email

	fields, err := validateForm(registerForm{Username: username, Email: email, Password: password})
	r.Fields = fields
	if err != nil {
		return "", err
	}

	r.Loading = true
	defer func() { r.Loading = false }()

	res, err := r.env.Client.Register(ctx, apiclient.RegisterPayload{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		r.Err = r.env.failWithServerMessage("register", err, "Failed to create account")
		return "", err
	}

	return completeAuth(ctx, r.env, &r.State, "register", res, "Failed to create account")
}

func (r *Register) Render(w io.Writer) error {
	return render(w, "register", r)
}

// completeAuth stores the token from an auth response in the session.
func completeAuth(ctx context.Context, env *Env, st *State, page string, res *apiclient.AuthResponse, fallback string) (string, error) {
	if res.Token == "" {
		return RouteLogin, nil
	}

	if err := env.Session.Login(ctx, res.Token); err != nil {
		st.Err = env.fail(page, err, fallback)
		return "", err
	}

	return RouteHome, nil
}
