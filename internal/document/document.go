// Package document defines the notes the search engine works on and the
// text utilities shared by the vault, the executor and the commands.
package document

import (
	"context"
	"path"
	"strings"
	"time"
)

// Document is a handle to a note owned by the host. The engine only ever reads it.
type Document struct {
	// Path is the slash-separated path relative to the vault root. It identifies the document.
	Path string
	// Name is the file name including the extension.
	Name string
	// Modified is the last modification time; its UnixNano value is the modification stamp.
	Modified time.Time
	// Created is the creation time, or Modified where the platform does not report one.
	Created time.Time
	// Size is the file size in bytes.
	Size int64
}

// New creates a document for the given vault-relative path.
func New(relPath string, modified, created time.Time, size int64) *Document {
	relPath = path.Clean(strings.ReplaceAll(relPath, "\\", "/"))

	return &Document{
		Path:     relPath,
		Name:     path.Base(relPath),
		Modified: modified,
		Created:  created,
		Size:     size,
	}
}

// Stamp returns the modification stamp. It never decreases across saves of the same file.
func (doc *Document) Stamp() int64 {
	return doc.Modified.UnixNano()
}

// Basename returns the file name without its extension.
func (doc *Document) Basename() string {
	return strings.TrimSuffix(doc.Name, path.Ext(doc.Name))
}

// Dir returns the vault-relative directory of the document, "." for the root.
func (doc *Document) Dir() string {
	return path.Dir(doc.Path)
}

func (doc *Document) String() string {
	return doc.Path
}

// Contents is what the accessor returns for a document.
type Contents struct {
	// Content is the full text, frontmatter included.
	Content string
	// Tags are stored without the leading `#`.
	Tags []string
	// Frontmatter is nil when the document has none.
	Frontmatter map[string]any
}

// Body returns the content without the frontmatter block.
func (contents *Contents) Body() string {
	_, body, _ := SplitFrontmatter(contents.Content)
	return body
}

//go:generate mockgen -source=document.go -destination=mocks/mock_accessor.go -package=mocks

// Accessor reads the contents of documents. Implementations may cache, keyed by path and stamp.
type Accessor interface {
	Read(ctx context.Context, doc *Document) (*Contents, error)
}

// AccessorFunc adapts a function to the Accessor interface.
type AccessorFunc func(ctx context.Context, doc *Document) (*Contents, error)

// Read implements Accessor.
func (fn AccessorFunc) Read(ctx context.Context, doc *Document) (*Contents, error) {
	return fn(ctx, doc)
}
