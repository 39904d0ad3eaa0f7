// Package fs provides file-based output of extracted documents as
// Markdown with YAML front matter.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/readable"
	"gopkg.in/yaml.v3"
)

// URLToPath converts a source URL to a relative file path.
// Example: https://example.com/blog/2024/post → blog/2024/post.md
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", readable.Errorf(readable.EINVALIDURL, "invalid source URL: %v", err)
	}

	path := u.Path
	for _, segment := range strings.Split(path, "/") {
		if segment == ".." {
			return "", readable.Errorf(readable.EINVALIDURL, "path traversal in source URL: %q", rawURL)
		}
	}

	// Handle root or trailing slash → index.md
	if path == "" || path == "/" {
		return "index.md", nil
	}

	path = strings.TrimPrefix(path, "/")

	// Trailing slash becomes index.md in that directory
	if strings.HasSuffix(path, "/") {
		return path + "index.md", nil
	}

	return strings.TrimSuffix(path, ".html") + ".md", nil
}

type frontMatter struct {
	Source    string `yaml:"source"`
	Title     string `yaml:"title"`
	Byline    string `yaml:"byline,omitempty"`
	Site      string `yaml:"site,omitempty"`
	Published string `yaml:"published,omitempty"`
	Extracted string `yaml:"extracted"`
}

// FormatDocument renders markdown with YAML front matter describing doc.
func FormatDocument(doc *readable.Document, markdown string) (string, error) {
	fm := frontMatter{
		Source:    doc.SourceURL,
		Title:     doc.Title,
		Byline:    doc.Byline,
		Site:      doc.SiteName,
		Extracted: doc.ExtractedAt.Format(time.DateOnly),
	}
	if doc.PublishedTime != nil {
		fm.Published = doc.PublishedTime.Format(time.DateOnly)
	}

	header, err := yaml.Marshal(fm)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(markdown)
	return b.String(), nil
}

// Ensure Writer implements readable.DocumentWriter at compile time.
var _ readable.DocumentWriter = (*Writer)(nil)

// Writer writes documents as markdown files to a directory.
type Writer struct {
	baseDir   string
	converter readable.Converter
}

// NewWriter creates a new Writer that writes to the given base directory,
// converting document content with converter.
func NewWriter(baseDir string, converter readable.Converter) *Writer {
	return &Writer{baseDir: baseDir, converter: converter}
}

// CreateDocument writes a document to disk as a markdown file.
func (w *Writer) CreateDocument(ctx context.Context, doc *readable.Document) error {
	return writeDocument(w.baseDir, w.converter, doc)
}

func writeDocument(baseDir string, converter readable.Converter, doc *readable.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(doc.SourceURL)
	if err != nil {
		return err
	}

	markdown, err := converter.Convert(doc.Content)
	if err != nil {
		return err
	}
	content, err := FormatDocument(doc, markdown)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(baseDir, relPath)

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, []byte(content), 0644)
}
