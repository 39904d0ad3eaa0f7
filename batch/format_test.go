package batch_test

import (
	"testing"

	"github.com/fwojciec/readable/batch"
	"github.com/stretchr/testify/assert"
)

func TestTruncatePath(t *testing.T) {
	t.Parallel()

	t.Run("returns path unchanged when shorter than max", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "pages/a.html", batch.TruncatePath("pages/a.html", 50))
	})

	t.Run("truncates with ellipsis when longer than max", func(t *testing.T) {
		t.Parallel()
		result := batch.TruncatePath("archive/2024/very/long/path/to/article.html", 20)
		assert.Len(t, result, 20)
		assert.Equal(t, "...h/to/article.html", result)
	})

	t.Run("returns empty string when maxLen is not positive", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, batch.TruncatePath("pages/a.html", 0))
		assert.Empty(t, batch.TruncatePath("pages/a.html", -1))
	})

	t.Run("returns prefix when maxLen is very small", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "pag", batch.TruncatePath("pages/a.html", 3))
		assert.Equal(t, "a", batch.TruncatePath("a", 2))
	})
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "512 B", batch.FormatBytes(512))
	assert.Equal(t, "1.5 KB", batch.FormatBytes(1536))
	assert.Equal(t, "2.0 MB", batch.FormatBytes(2*1024*1024))
}
