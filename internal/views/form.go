package views

import (
	"github.com/sushihentaime/blogistui/internal/common"
)

// postForm is the title/body pair behind the create and edit pages.
type postForm struct {
	Title   string
	Content string
	Fields  map[string]string
}

// validate records the submitted values and requires both to be non-blank.
func (f *postForm) validate(title, content string) error {
	f.Title, f.Content = title, content

	v := common.NewValidator()
	v.Check(common.NotBlank(title), "title", "must be provided")
	v.Check(common.NotBlank(content), "content", "must be provided")

	f.Fields = v.Errors
	if !v.Valid() {
		return v.ValidationError()
	}
	return nil
}
