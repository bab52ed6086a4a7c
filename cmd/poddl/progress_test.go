package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar_Update(t *testing.T) {
	out := &bytes.Buffer{}
	bar := newProgressBar(out)

	bar.Update(4096, 8192)

	line := out.String()
	assert.True(t, strings.HasPrefix(line, "\r["))
	assert.Contains(t, line, ">")
	assert.Contains(t, line, "4096/8192 bytes")
	assert.NotContains(t, line, "\n")
}

func TestProgressBar_Empty(t *testing.T) {
	out := &bytes.Buffer{}
	bar := newProgressBar(out)

	bar.Update(0, 8192)

	assert.Contains(t, out.String(), strings.Repeat("-", progressWidth))
	assert.Contains(t, out.String(), "0/8192 bytes")
}

func TestProgressBar_Complete(t *testing.T) {
	out := &bytes.Buffer{}
	bar := newProgressBar(out)

	bar.Update(8192, 8192)

	assert.Contains(t, out.String(), strings.Repeat("=", progressWidth))
	assert.Contains(t, out.String(), "8192/8192 bytes")
	assert.True(t, strings.HasSuffix(out.String(), "\n"))
}

func TestProgressBar_UnknownTotal(t *testing.T) {
	out := &bytes.Buffer{}
	bar := newProgressBar(out)

	bar.Update(100, 0)

	assert.Empty(t, out.String())
}
