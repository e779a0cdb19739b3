package apiclient

import "time"

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Blog struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateBlogPayload struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	AuthorID string `json:"author_id"`
}

type UpdateBlogPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type RegisterPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by both auth endpoints. Token is empty when the
// server does not sign the user in straight away.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
}

type BlogResponse struct {
	Blog Blog `json:"blog"`
}

type BlogsResponse struct {
	Blogs []Blog `json:"blogs"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
