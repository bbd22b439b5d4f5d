// Package draft reads post drafts written as markdown files with YAML
// frontmatter:
//
//	---
//	title: Release notes
//	---
//	Body text...
//
// The body is sent to WordPress as-is; WordPress stores it as post content.
package draft

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"wpmcp/pkg/fileops"

	"github.com/adrg/frontmatter"
)

// maxDraftSize bounds the files the draft command reads.
const maxDraftSize = 1 << 20

// Frontmatter represents the YAML frontmatter expected in draft files
type Frontmatter struct {
	Title string `yaml:"title"`
}

// Draft is a parsed draft file.
type Draft struct {
	Title   string
	Content string
}

// Parse reads a draft from r. A missing frontmatter title is an error; a
// document without frontmatter is an error as well.
func Parse(r io.Reader) (Draft, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxDraftSize+1))
	if err != nil {
		return Draft{}, fmt.Errorf("failed to read draft: %w", err)
	}
	if len(data) > maxDraftSize {
		return Draft{}, fmt.Errorf("draft exceeds %d bytes", maxDraftSize)
	}

	var matter Frontmatter
	body, err := frontmatter.MustParse(bytes.NewReader(data), &matter)
	if err != nil {
		return Draft{}, fmt.Errorf("no valid frontmatter found: %w", err)
	}

	title := strings.TrimSpace(matter.Title)
	if title == "" {
		return Draft{}, fmt.Errorf("missing required 'title' field in frontmatter")
	}

	return Draft{
		Title:   title,
		Content: strings.TrimSpace(string(body)),
	}, nil
}

// ParseFile reads a draft from a markdown file. A leading "~/" in path is
// expanded to the home directory.
func ParseFile(path string) (Draft, error) {
	path = fileops.ExpandPath(path)
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".md" && ext != ".markdown" {
		return Draft{}, fmt.Errorf("draft must be a markdown file, got %q", filepath.Base(path))
	}

	if err := fileops.ValidateFileAccess(path); err != nil {
		return Draft{}, fmt.Errorf("cannot read draft: %w", err)
	}
	if err := fileops.ValidateFileSizeLimit(path, maxDraftSize); err != nil {
		return Draft{}, fmt.Errorf("draft exceeds %d bytes: %w", maxDraftSize, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return Draft{}, fmt.Errorf("cannot open draft: %w", err)
	}
	defer f.Close()

	return Parse(f)
}
