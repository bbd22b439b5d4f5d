package wordpress

import (
	"context"
	"net/http"
	"net/url"
)

const categoriesPath = "/wp-json/wp/v2/categories"

func categoryPath(id string) string {
	return categoriesPath + "/" + url.PathEscape(id)
}

// ListCategories returns the first page of categories.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	data, err := c.call(ctx, Request{Path: categoriesPath})
	if err != nil {
		return nil, err
	}
	return decodeCategories(data)
}

// UpdateCategory renames category id.
func (c *Client) UpdateCategory(ctx context.Context, id, name string) (Category, error) {
	data, err := c.call(ctx, Request{
		Method: http.MethodPost,
		Path:   categoryPath(id),
		Body:   categoryName{Name: name},
	})
	if err != nil {
		return Category{}, err
	}
	return decodeCategory(data)
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, in CategoryInput) (Category, error) {
	data, err := c.call(ctx, Request{
		Method: http.MethodPost,
		Path:   categoriesPath,
		Body:   in,
	})
	if err != nil {
		return Category{}, err
	}
	return decodeCategory(data)
}

// DeleteCategory deletes category id. The force=true query is only added
// when force is set; terms cannot be trashed, so WordPress rejects the
// call without it.
func (c *Client) DeleteCategory(ctx context.Context, id string, force bool) error {
	path := categoryPath(id)
	if force {
		path += "?force=true"
	}
	_, err := c.call(ctx, Request{Method: http.MethodDelete, Path: path})
	return err
}
