package imaging

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareJPEGFromPNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	out, err := PrepareJPEG(buf.Bytes(), 1<<20)
	require.NoError(t, err)

	decoded, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 40, decoded.Bounds().Dx())
	assert.LessOrEqual(t, len(out), 1<<20)
}

func TestPrepareJPEGFromJPEG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}))

	out, err := PrepareJPEG(buf.Bytes(), 1<<20)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(out), 1<<20)
}

func TestPrepareJPEGRejectsGarbage(t *testing.T) {
	_, err := PrepareJPEG([]byte("definitely not an image"), 1<<20)
	assert.Error(t, err)
}
