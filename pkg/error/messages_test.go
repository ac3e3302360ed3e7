package error

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestIsBusinessErr(t *testing.T) {
	assert.True(t, IsBusinessErr(ErrNotAvailable))
	assert.True(t, IsBusinessErr(errors.Wrap(ErrAlreadyDisposed, "AT-0001")))
	assert.True(t, IsBusinessErr(ErrInvalidGroupColumn))

	// missing rows are the not-found class, never a 400
	assert.False(t, IsBusinessErr(ErrAssetNotFound))
	assert.False(t, IsBusinessErr(errors.Wrap(ErrAssetDeleted, "a-9")))

	assert.False(t, IsBusinessErr(errors.New("boom")))
	assert.False(t, IsBusinessErr(nil))
}
