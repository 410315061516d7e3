package rembg

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// vial draws a red square on a white background, optionally with a white
// "label" inside the square.
func vial(t *testing.T, size, from, to int, label bool) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := color.RGBA{R: 255, G: 255, B: 255, A: 255}
			if x >= from && x < to && y >= from && y < to {
				c = color.RGBA{R: 200, G: 20, B: 30, A: 255}
				mid := (from + to) / 2
				if label && x == mid && y == mid {
					c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
				}
			}
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeNRGBA(t *testing.T, data []byte) *image.NRGBA {
	t.Helper()
	img, format, err := image.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	return toNRGBA(img)
}

func TestColorKeyRemover_Remove(t *testing.T) {
	t.Parallel()

	out, err := NewColorKeyRemover().Remove(context.Background(), vial(t, 40, 15, 25, true))
	require.NoError(t, err)

	img := decodeNRGBA(t, out)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, uint8(0), img.NRGBAAt(0, 0).A, "corner should be transparent")
	assert.Equal(t, uint8(0), img.NRGBAAt(39, 20).A, "edge should be transparent")
	assert.Equal(t, uint8(255), img.NRGBAAt(16, 16).A, "subject should stay opaque")
	assert.Equal(t, uint8(255), img.NRGBAAt(20, 20).A, "enclosed background-coloured pixel should stay opaque")
}

func TestColorKeyRemover_Crop(t *testing.T) {
	t.Parallel()

	r := NewColorKeyRemover()
	r.Crop = true
	out, err := r.Remove(context.Background(), vial(t, 40, 10, 30, false))
	require.NoError(t, err)

	img := decodeNRGBA(t, out)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
}

func TestColorKeyRemover_NoForeground(t *testing.T) {
	t.Parallel()

	_, err := NewColorKeyRemover().Remove(context.Background(), vial(t, 16, 0, 0, false))
	assert.ErrorIs(t, err, ErrNoForeground)
}

func TestColorKeyRemover_KeepsExistingAlpha(t *testing.T) {
	t.Parallel()

	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	img.SetNRGBA(3, 3, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 128})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	out, err := NewColorKeyRemover().Remove(context.Background(), buf.Bytes())
	require.NoError(t, err)

	got := decodeNRGBA(t, out)
	assert.Equal(t, uint8(128), got.NRGBAAt(0, 0).A)
	assert.Equal(t, uint8(255), got.NRGBAAt(3, 3).A)
}

func TestColorKeyRemover_Downscale(t *testing.T) {
	t.Parallel()

	r := NewColorKeyRemover()
	r.MaxSize = 20
	out, err := r.Remove(context.Background(), vial(t, 40, 10, 30, false))
	require.NoError(t, err)

	img := decodeNRGBA(t, out)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
}

func TestColorKeyRemover_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := NewColorKeyRemover().Remove(context.Background(), []byte("not an image"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode image")
}

func TestColorKeyRemover_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewColorKeyRemover().Remove(ctx, vial(t, 8, 2, 6, false))
	assert.ErrorIs(t, err, context.Canceled)
}
