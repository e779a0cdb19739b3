package apiclient

import (
	"context"
	"net/http"
	"net/url"
)

func blogPath(id string) (string, error) {
	if id == "" {
		return "", ErrEmptyID
	}
	return "/api/blogs/" + url.PathEscape(id), nil
}

func (c *Client) ListBlogs(ctx context.Context) (*BlogsResponse, error) {
	var res BlogsResponse
	if err := c.do(ctx, http.MethodGet, "/api/blogs", nil, &res); err != nil {
		return nil, err
	}
	if res.Blogs == nil {
		res.Blogs = []Blog{}
	}
	return &res, nil
}

func (c *Client) GetBlog(ctx context.Context, id string) (*BlogResponse, error) {
	path, err := blogPath(id)
	if err != nil {
		return nil, err
	}

	var res BlogResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreateBlog(ctx context.Context, payload CreateBlogPayload) (*BlogResponse, error) {
	var res BlogResponse
	if err := c.do(ctx, http.MethodPost, "/api/blogs", payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) UpdateBlog(ctx context.Context, id string, payload UpdateBlogPayload) (*BlogResponse, error) {
	path, err := blogPath(id)
	if err != nil {
		return nil, err
	}

	var res BlogResponse
	if err := c.do(ctx, http.MethodPut, path, payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) DeleteBlog(ctx context.Context, id string) (*MessageResponse, error) {
	path, err := blogPath(id)
	if err != nil {
		return nil, err
	}

	var res MessageResponse
	if err := c.do(ctx, http.MethodDelete, path, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
