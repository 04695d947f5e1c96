package qr

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestRender(t *testing.T) {
	png, err := Render("https://gate.example.com/checkin?token=abc", DefaultSize)
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.True(t, bytes.HasPrefix(png, pngSignature), "expected PNG output")
}

func TestRender_EmptyContent(t *testing.T) {
	_, err := Render("", DefaultSize)
	assert.Error(t, err)
}
