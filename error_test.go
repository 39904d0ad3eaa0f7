package readable_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/readable"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := readable.Errorf(readable.ENOTFOUND, "document %q not found", "test")

	assert.Equal(t, readable.ENOTFOUND, readable.ErrorCode(err))
	assert.Equal(t, "document \"test\" not found", readable.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, readable.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, readable.ErrorMessage(nil))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	t.Run("unwraps application errors", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("extract page: %w", readable.Errorf(readable.EINVALIDURL, "bad base"))

		assert.Equal(t, readable.EINVALIDURL, readable.ErrorCode(err))
		assert.Equal(t, "bad base", readable.ErrorMessage(err))
	})

	t.Run("reports plain errors as internal", func(t *testing.T) {
		t.Parallel()

		err := errors.New("disk on fire")

		assert.Equal(t, readable.EINTERNAL, readable.ErrorCode(err))
		assert.Equal(t, "Internal error.", readable.ErrorMessage(err))
	})
}

func TestIsNoContent(t *testing.T) {
	t.Parallel()

	assert.True(t, readable.IsNoContent(readable.Errorf(readable.ENOCONTENT, "no article")))
	assert.False(t, readable.IsNoContent(readable.Errorf(readable.EINVALID, "empty document")))
	assert.False(t, readable.IsNoContent(nil))
}
