package wordpress

import (
	"encoding/json"
	"fmt"
)

// Rendered wraps a field WordPress returns in its HTML-processed form.
type Rendered struct {
	Rendered string `json:"rendered"`
}

// Post is the subset of a wp/v2 post used by the tools.
type Post struct {
	ID         int
	Title      Rendered
	Content    Rendered
	Status     string
	Categories []int
	Link       string

	// Raw is the response body the post was decoded from.
	Raw json.RawMessage
}

// Category is the subset of a wp/v2 category used by the tools.
type Category struct {
	ID          int
	Name        string
	Description string
	Parent      int
	Count       int
}

// PostUpdate carries the optional fields of an edit. Empty strings are not
// sent; Categories is sent whenever it is non-nil, so an empty non-nil slice
// clears the post's categories.
type PostUpdate struct {
	Title      string `json:"title,omitempty"`
	Content    string `json:"content,omitempty"`
	Status     string `json:"status,omitempty"`
	Categories []int  `json:"categories,omitzero"`
}

// CategoryInput is the body of a category creation. A nil Parent is not sent.
type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Parent      *int   `json:"parent,omitempty"`
}

type newPost struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Status  string `json:"status"`
}

type categoryName struct {
	Name string `json:"name"`
}

// postFields and categoryFields name the members a response must carry.
type postFields struct {
	id, title, content bool
}

type wirePost struct {
	ID         *int      `json:"id"`
	Title      *Rendered `json:"title"`
	Content    *Rendered `json:"content"`
	Status     string    `json:"status"`
	Categories []int     `json:"categories"`
	Link       string    `json:"link"`
}

func (w wirePost) post(need postFields) (Post, error) {
	switch {
	case need.id && w.ID == nil:
		return Post{}, unexpected("post has no id")
	case need.title && w.Title == nil:
		return Post{}, unexpected("post has no title")
	case need.content && w.Content == nil:
		return Post{}, unexpected("post has no content")
	}

	p := Post{Status: w.Status, Categories: w.Categories, Link: w.Link}
	if w.ID != nil {
		p.ID = *w.ID
	}
	if w.Title != nil {
		p.Title = *w.Title
	}
	if w.Content != nil {
		p.Content = *w.Content
	}
	return p, nil
}

type wireCategory struct {
	ID          *int    `json:"id"`
	Name        *string `json:"name"`
	Description string  `json:"description"`
	Parent      int     `json:"parent"`
	Count       int     `json:"count"`
}

func (w wireCategory) category() (Category, error) {
	if w.ID == nil {
		return Category{}, unexpected("category has no id")
	}
	if w.Name == nil {
		return Category{}, unexpected("category has no name")
	}
	return Category{
		ID:          *w.ID,
		Name:        *w.Name,
		Description: w.Description,
		Parent:      w.Parent,
		Count:       w.Count,
	}, nil
}

func decodePost(data []byte, need postFields) (Post, error) {
	var w wirePost
	if err := json.Unmarshal(data, &w); err != nil {
		return Post{}, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	p, err := w.post(need)
	if err != nil {
		return Post{}, err
	}
	p.Raw = json.RawMessage(data)
	return p, nil
}

func decodePosts(data []byte, need postFields) ([]Post, error) {
	var ws []wirePost
	if err := json.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	posts := make([]Post, 0, len(ws))
	for i, w := range ws {
		p, err := w.post(need)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		posts = append(posts, p)
	}
	return posts, nil
}

func decodeCategory(data []byte) (Category, error) {
	var w wireCategory
	if err := json.Unmarshal(data, &w); err != nil {
		return Category{}, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	return w.category()
}

func decodeCategories(data []byte) ([]Category, error) {
	var ws []wireCategory
	if err := json.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	cats := make([]Category, 0, len(ws))
	for i, w := range ws {
		c, err := w.category()
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		cats = append(cats, c)
	}
	return cats, nil
}
