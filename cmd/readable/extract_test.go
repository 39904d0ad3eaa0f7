package main_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/readable"
	main "github.com/fwojciec/readable/cmd/readable"
	"github.com/fwojciec/readable/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints JSON by default", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _, _ := newDeps(testArticle(), nil)
		cmd := &main.ExtractCmd{File: "-"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		var got readable.Article
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Equal(t, "Release Notes", got.Title)
		assert.Equal(t, 44, got.Length)
	})

	t.Run("prints text", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _, _ := newDeps(testArticle(), nil)
		cmd := &main.ExtractCmd{File: "-", Format: "text"}

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "Highlights\nFaster builds.\nDetails\nMore text.\n", stdout.String())
	})

	t.Run("prints pretty HTML", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _, _ := newDeps(testArticle(), nil)
		cmd := &main.ExtractCmd{File: "-", Format: "html", Pretty: true}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "Faster builds.")
		assert.Greater(t, strings.Count(stdout.String(), "\n"), 3, "pretty output spans several lines")
	})

	t.Run("prints markdown with title and byline", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _, _ := newDeps(testArticle(), nil)
		cmd := &main.ExtractCmd{File: "-", Format: "markdown"}

		require.NoError(t, cmd.Run(deps))
		assert.True(t, strings.HasPrefix(stdout.String(), "# Release Notes\n\n*Jane Doe*"))
		assert.Contains(t, stdout.String(), "## Highlights")
	})

	t.Run("prints outline", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _, _ := newDeps(testArticle(), nil)
		cmd := &main.ExtractCmd{File: "-", Outline: true}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "- Release Notes (#release-notes)")
		assert.Contains(t, stdout.String(), "  - Highlights (#highlights)")
		assert.Contains(t, stdout.String(), "    - Details (#details)")
	})

	t.Run("sanitizes content when asked", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _, _ := newDeps(testArticle(), nil)
		deps.Sanitizer = &mock.Sanitizer{
			SanitizeFn: func(html string) string { return "<p>clean</p>" },
		}
		cmd := &main.ExtractCmd{File: "-", Format: "html", Sanitize: true}

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "<p>clean</p>\n", stdout.String())
	})

	t.Run("reads the named file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "page.html", "<html><body><p>file</p></body></html>")
		deps, _, _, _ := newDeps(testArticle(), nil)
		var gotHTML, gotURL string
		deps.NewExtractor = func(readable.Options) readable.Extractor {
			return &mock.Extractor{
				ExtractFn: func(html, pageURL string) (*readable.Article, error) {
					gotHTML, gotURL = html, pageURL
					return testArticle(), nil
				},
			}
		}
		cmd := &main.ExtractCmd{File: path, URL: "https://example.com/a"}

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, "<html><body><p>file</p></body></html>", gotHTML)
		assert.Equal(t, "https://example.com/a", gotURL)
	})

	t.Run("applies option flags over the config file", func(t *testing.T) {
		t.Parallel()

		config := writeFile(t, t.TempDir(), "readable.yaml", "charThreshold: 100\nnbTopCandidates: 3\n")
		deps, _, _, used := newDeps(testArticle(), nil)
		threshold := 250
		cmd := &main.ExtractCmd{File: "-"}
		cmd.Config = config
		cmd.CharThreshold = &threshold
		cmd.DisableJSONLD = true

		require.NoError(t, cmd.Run(deps))
		assert.Equal(t, 250, used.CharThreshold)
		assert.Equal(t, 3, used.NbTopCandidates)
		assert.True(t, used.DisableJSONLD)
	})

	t.Run("rejects invalid options", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr, _ := newDeps(testArticle(), nil)
		zero := 0
		cmd := &main.ExtractCmd{File: "-"}
		cmd.NbTopCandidates = &zero

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, readable.EINVALID, readable.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("reports no article", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr, _ := newDeps(nil, readable.Errorf(readable.ENOCONTENT, "no article content found"))
		cmd := &main.ExtractCmd{File: "-"}

		err := cmd.Run(deps)

		assert.Equal(t, 2, main.ExitCode(err))
		assert.Equal(t, "no article found\n", stderr.String())
		assert.Empty(t, stdout.String())
	})

	t.Run("writes markdown file with --out", func(t *testing.T) {
		t.Parallel()

		out := t.TempDir()
		deps, _, _, _ := newDeps(testArticle(), nil)
		cmd := &main.ExtractCmd{File: "-", URL: "https://example.com/blog/release", Out: out}

		require.NoError(t, cmd.Run(deps))
		content, err := os.ReadFile(filepath.Join(out, "blog", "release.md"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "title: Release Notes")
		assert.Contains(t, string(content), "Faster builds.")
	})

	t.Run("requires --url for --out from stdin", func(t *testing.T) {
		t.Parallel()

		deps, _, _, _ := newDeps(testArticle(), nil)
		cmd := &main.ExtractCmd{File: "-", Out: t.TempDir()}

		err := cmd.Run(deps)

		assert.Equal(t, readable.EINVALID, readable.ErrorCode(err))
	})
}
