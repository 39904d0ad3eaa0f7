package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/readable"
)

// Ensure FileStore implements readable.DocumentWriter at compile time.
var _ readable.DocumentWriter = (*FileStore)(nil)

// FileStore writes a batch of documents with atomic update semantics.
// Documents are written to a temporary directory, then moved into place on
// Commit. Existing files in the output directory are never replaced.
type FileStore struct {
	baseDir   string
	name      string
	converter readable.Converter
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string, converter readable.Converter) *FileStore {
	return &FileStore{
		baseDir:   baseDir,
		name:      name,
		converter: converter,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// CreateDocument writes doc into the temporary directory.
func (s *FileStore) CreateDocument(ctx context.Context, doc *readable.Document) error {
	return writeDocument(s.tempDir(), s.converter, doc)
}

// Prepare readies the store for a new batch. It refuses an output
// directory that already holds files and clears a temporary directory left
// behind by an earlier run.
func (s *FileStore) Prepare() error {
	entries, err := os.ReadDir(s.finalDir())
	switch {
	case err == nil && len(entries) > 0:
		return readable.Errorf(readable.EINVALID, "output directory %q is not empty", s.finalDir())
	case err != nil && !os.IsNotExist(err):
		return err
	}
	return os.RemoveAll(s.tempDir())
}

// Commit moves the temporary directory into place. The output directory
// must be missing or empty; a batch that wrote nothing leaves an empty
// output directory.
func (s *FileStore) Commit() error {
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.Remove(s.finalDir()); err != nil && !os.IsNotExist(err) {
		return readable.Errorf(readable.EINVALID, "output directory %q is not empty", s.finalDir())
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards everything written since the store was created.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
