package download

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressReader(t *testing.T) {
	var calls []int64

	reader := newProgressReader(bytes.NewReader(make([]byte, 20000)), 20000, func(downloaded, total int64) {
		assert.EqualValues(t, 20000, total)
		calls = append(calls, downloaded)
	})

	n, err := io.Copy(io.Discard, reader)
	assert.NoError(t, err)
	assert.EqualValues(t, 20000, n)

	// One callback per 8 KiB chunk, counter never decreases.
	assert.Equal(t, []int64{8192, 16384, 20000}, calls)
}

func TestProgressReader_NilCallback(t *testing.T) {
	reader := newProgressReader(bytes.NewReader(make([]byte, 100)), 100, nil)

	n, err := io.Copy(io.Discard, reader)
	assert.NoError(t, err)
	assert.EqualValues(t, 100, n)
}
