package mcp

import (
	"context"
	"fmt"
	"strings"

	"wpmcp/internal/validation"
	"wpmcp/internal/wordpress"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
)

// toolFunc performs one tool call and returns its success text.
type toolFunc func(ctx context.Context, wp *wordpress.Client, args arguments) (string, error)

// toolDef pairs an advertised tool schema with its handler and the label
// used to prefix failures.
type toolDef struct {
	tool  mcpgo.Tool
	label string
	run   toolFunc
}

// catalog returns the tool definitions in the order they are advertised.
func catalog() []toolDef {
	return []toolDef{
		{
			tool: mcpgo.NewTool("create_post",
				mcpgo.WithDescription("Create a new WordPress post. The post is always saved as a draft."),
				mcpgo.WithString("title", mcpgo.Required(), mcpgo.Description("Post title")),
				mcpgo.WithString("content", mcpgo.Required(), mcpgo.Description("Post content (HTML or block markup)")),
				mcpgo.WithDestructiveHintAnnotation(false),
			),
			label: "post failed",
			run:   createPost,
		},
		{
			tool: mcpgo.NewTool("edit_post",
				mcpgo.WithDescription("Update an existing WordPress post. Only the fields given are changed."),
				mcpgo.WithString("id", mcpgo.Required(), mcpgo.Description("Post ID")),
				mcpgo.WithString("title", mcpgo.Description("New title")),
				mcpgo.WithString("content", mcpgo.Description("New content")),
				mcpgo.WithString("status", mcpgo.Description("New status, e.g. draft, pending, publish, private")),
				mcpgo.WithArray("categories",
					mcpgo.Description("Category IDs to assign; an empty list removes all categories"),
					mcpgo.Items(map[string]any{"type": "string"}),
				),
				mcpgo.WithDestructiveHintAnnotation(false),
			),
			label: "edit failed",
			run:   editPost,
		},
		{
			tool: mcpgo.NewTool("list_posts",
				mcpgo.WithDescription("List WordPress posts (first page as returned by the site)"),
				mcpgo.WithReadOnlyHintAnnotation(true),
			),
			label: "fetch failed",
			run:   listPosts,
		},
		{
			tool: mcpgo.NewTool("get_post",
				mcpgo.WithDescription("Get the title and content of a WordPress post"),
				mcpgo.WithString("id", mcpgo.Required(), mcpgo.Description("Post ID")),
				mcpgo.WithReadOnlyHintAnnotation(true),
			),
			label: "fetch failed",
			run:   getPost,
		},
		{
			tool: mcpgo.NewTool("list_categories",
				mcpgo.WithDescription("List WordPress categories (first page as returned by the site)"),
				mcpgo.WithReadOnlyHintAnnotation(true),
			),
			label: "fetch failed",
			run:   listCategories,
		},
		{
			tool: mcpgo.NewTool("edit_category",
				mcpgo.WithDescription("Rename a WordPress category"),
				mcpgo.WithString("id", mcpgo.Required(), mcpgo.Description("Category ID")),
				mcpgo.WithString("name", mcpgo.Required(), mcpgo.Description("New category name")),
				mcpgo.WithDestructiveHintAnnotation(false),
			),
			label: "edit failed",
			run:   editCategory,
		},
		{
			tool: mcpgo.NewTool("create_category",
				mcpgo.WithDescription("Create a WordPress category"),
				mcpgo.WithString("name", mcpgo.Required(), mcpgo.Description("Category name")),
				mcpgo.WithString("description", mcpgo.Description("Category description")),
				mcpgo.WithString("parent", mcpgo.Description("Parent category ID")),
				mcpgo.WithDestructiveHintAnnotation(false),
			),
			label: "create failed",
			run:   createCategory,
		},
		{
			tool: mcpgo.NewTool("delete_category",
				mcpgo.WithDescription("Delete a WordPress category. WordPress requires force=true because categories cannot be trashed."),
				mcpgo.WithString("id", mcpgo.Required(), mcpgo.Description("Category ID")),
				mcpgo.WithBoolean("force", mcpgo.Description("Delete permanently")),
				mcpgo.WithDestructiveHintAnnotation(true),
			),
			label: "delete failed",
			run:   deleteCategory,
		},
	}
}

func createPost(ctx context.Context, wp *wordpress.Client, args arguments) (string, error) {
	title, err := args.requiredString("title")
	if err != nil {
		return "", err
	}
	content, err := args.requiredString("content")
	if err != nil {
		return "", err
	}

	post, err := wp.CreatePost(ctx, title, content)
	if err != nil {
		return "", err
	}
	return "post succeeded: " + string(post.Raw), nil
}

func editPost(ctx context.Context, wp *wordpress.Client, args arguments) (string, error) {
	id, err := args.requiredID("id")
	if err != nil {
		return "", err
	}

	var upd wordpress.PostUpdate
	if upd.Title, err = args.optionalString("title"); err != nil {
		return "", err
	}
	if upd.Content, err = args.optionalString("content"); err != nil {
		return "", err
	}
	if upd.Status, err = args.optionalString("status"); err != nil {
		return "", err
	}
	categories, err := args.optionalStringList("categories")
	if err != nil {
		return "", err
	}
	if categories != nil {
		if upd.Categories, err = validation.ParseIDList(categories); err != nil {
			return "", argErrorf("categories: %v", err)
		}
	}

	post, err := wp.UpdatePost(ctx, id, upd)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("edit succeeded: ID: %d, Title: %s", post.ID, post.Title.Rendered), nil
}

func listPosts(ctx context.Context, wp *wordpress.Client, _ arguments) (string, error) {
	posts, err := wp.ListPosts(ctx)
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(posts))
	for _, p := range posts {
		lines = append(lines, fmt.Sprintf("ID: %d, Title: %s", p.ID, p.Title.Rendered))
	}
	return strings.Join(lines, "\n"), nil
}

func getPost(ctx context.Context, wp *wordpress.Client, args arguments) (string, error) {
	id, err := args.requiredID("id")
	if err != nil {
		return "", err
	}

	post, err := wp.GetPost(ctx, id)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Title: %s\nContent: %s", post.Title.Rendered, post.Content.Rendered), nil
}

func listCategories(ctx context.Context, wp *wordpress.Client, _ arguments) (string, error) {
	categories, err := wp.ListCategories(ctx)
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(categories))
	for _, c := range categories {
		lines = append(lines, fmt.Sprintf("ID: %d, Name: %s", c.ID, c.Name))
	}
	return strings.Join(lines, "\n"), nil
}

func editCategory(ctx context.Context, wp *wordpress.Client, args arguments) (string, error) {
	id, err := args.requiredID("id")
	if err != nil {
		return "", err
	}
	name, err := args.requiredString("name")
	if err != nil {
		return "", err
	}

	category, err := wp.UpdateCategory(ctx, id, name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("edit succeeded: ID: %d, New name: %s", category.ID, category.Name), nil
}

func createCategory(ctx context.Context, wp *wordpress.Client, args arguments) (string, error) {
	var in wordpress.CategoryInput
	var err error
	if in.Name, err = args.requiredString("name"); err != nil {
		return "", err
	}
	if in.Description, err = args.optionalString("description"); err != nil {
		return "", err
	}
	parent, err := args.optionalString("parent")
	if err != nil {
		return "", err
	}
	if parent != "" {
		n, err := validation.ParseID(parent)
		if err != nil {
			return "", argErrorf("parent: %v", err)
		}
		in.Parent = &n
	}

	category, err := wp.CreateCategory(ctx, in)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("create succeeded: ID: %d, Name: %s", category.ID, category.Name), nil
}

func deleteCategory(ctx context.Context, wp *wordpress.Client, args arguments) (string, error) {
	id, err := args.requiredID("id")
	if err != nil {
		return "", err
	}
	force, err := args.optionalBool("force")
	if err != nil {
		return "", err
	}

	if err := wp.DeleteCategory(ctx, id, force); err != nil {
		return "", err
	}
	return "delete succeeded: ID: " + id, nil
}
