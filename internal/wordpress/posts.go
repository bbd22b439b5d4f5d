package wordpress

import (
	"context"
	"net/http"
	"net/url"
)

const postsPath = "/wp-json/wp/v2/posts"

// StatusDraft is the status every post created through this client gets.
const StatusDraft = "draft"

func postPath(id string) string {
	return postsPath + "/" + url.PathEscape(id)
}

// CreatePost creates a draft post. The returned Post keeps the raw response
// body in Raw; no fields are required in the response.
func (c *Client) CreatePost(ctx context.Context, title, content string) (Post, error) {
	data, err := c.call(ctx, Request{
		Method: http.MethodPost,
		Path:   postsPath,
		Body:   newPost{Title: title, Content: content, Status: StatusDraft},
	})
	if err != nil {
		return Post{}, err
	}
	return decodePost(data, postFields{})
}

// UpdatePost edits post id with the fields present in upd.
func (c *Client) UpdatePost(ctx context.Context, id string, upd PostUpdate) (Post, error) {
	data, err := c.call(ctx, Request{
		Method: http.MethodPost,
		Path:   postPath(id),
		Body:   upd,
	})
	if err != nil {
		return Post{}, err
	}
	return decodePost(data, postFields{id: true, title: true})
}

// ListPosts returns the first page of posts as WordPress orders them.
func (c *Client) ListPosts(ctx context.Context) ([]Post, error) {
	data, err := c.call(ctx, Request{Path: postsPath})
	if err != nil {
		return nil, err
	}
	return decodePosts(data, postFields{id: true, title: true})
}

// GetPost fetches a single post.
func (c *Client) GetPost(ctx context.Context, id string) (Post, error) {
	data, err := c.call(ctx, Request{Path: postPath(id)})
	if err != nil {
		return Post{}, err
	}
	return decodePost(data, postFields{title: true, content: true})
}
