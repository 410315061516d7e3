package rembg

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"math"

	"go.uber.org/zap"
)

const (
	defaultTolerance = 0.12
	defaultMaxSize   = 2048
	// alpha above which a pixel counts as subject when computing the bounding box
	subjectThreshold = 0.5
)

// ColorKeyRemover clears the flat background connected to the image border.
//
//	no model, no network
//	inputs that already carry transparency are passed through
//	output is always PNG
type ColorKeyRemover struct {
	// Tolerance is the max normalized RGB distance (0..1) from the background colour.
	Tolerance float64
	// MaxSize bounds the longest edge; larger inputs are downscaled first.
	MaxSize int
	// Crop trims the result to the subject's bounding box.
	Crop bool
}

func NewColorKeyRemover() *ColorKeyRemover {
	return &ColorKeyRemover{
		Tolerance: defaultTolerance,
		MaxSize:   defaultMaxSize,
	}
}

func (c *ColorKeyRemover) Remove(ctx context.Context, data []byte) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src := toNRGBA(img)
	if !hasUsefulAlpha(src) {
		src = resizeWithinMax(src, c.maxSize())
		bg := borderColor(src)
		floodClear(src, bg, c.tolerance())
	}

	bbox, err := alphaBBox(src, subjectThreshold)
	if err != nil {
		return nil, err
	}
	if c.Crop {
		src = crop(src, bbox)
	}

	var out bytes.Buffer
	if err := png.Encode(&out, src); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}

	zap.L().Debug("background removed",
		zap.String("backend", BackendColorKey),
		zap.String("format", format),
		zap.Int("width", src.Bounds().Dx()),
		zap.Int("height", src.Bounds().Dy()),
	)
	return out.Bytes(), nil
}

func (c *ColorKeyRemover) tolerance() float64 {
	if c.Tolerance <= 0 {
		return defaultTolerance
	}
	return c.Tolerance
}

func (c *ColorKeyRemover) maxSize() int {
	if c.MaxSize <= 0 {
		return defaultMaxSize
	}
	return c.MaxSize
}

// borderColor averages the outermost ring of pixels.
func borderColor(img *image.NRGBA) [3]float64 {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	var sum [3]float64
	n := 0
	add := func(x, y int) {
		i := y*img.Stride + x*4
		sum[0] += float64(img.Pix[i])
		sum[1] += float64(img.Pix[i+1])
		sum[2] += float64(img.Pix[i+2])
		n++
	}
	for x := 0; x < w; x++ {
		add(x, 0)
		if h > 1 {
			add(x, h-1)
		}
	}
	for y := 1; y < h-1; y++ {
		add(0, y)
		if w > 1 {
			add(w-1, y)
		}
	}
	if n == 0 {
		return sum
	}
	return [3]float64{sum[0] / float64(n), sum[1] / float64(n), sum[2] / float64(n)}
}

// floodClear zeroes alpha for every pixel close to bg that is reachable from
// the border through other such pixels. Enclosed regions of the same colour
// (e.g. a white label on the product) are kept.
func floodClear(img *image.NRGBA, bg [3]float64, tolerance float64) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w == 0 || h == 0 {
		return
	}
	maxDist := tolerance * 255 * math.Sqrt(3)

	matches := func(p int) bool {
		i := (p/w)*img.Stride + (p%w)*4
		dr := float64(img.Pix[i]) - bg[0]
		dg := float64(img.Pix[i+1]) - bg[1]
		db := float64(img.Pix[i+2]) - bg[2]
		return math.Sqrt(dr*dr+dg*dg+db*db) <= maxDist
	}

	visited := make([]bool, w*h)
	queue := make([]int, 0, 2*(w+h))
	push := func(x, y int) {
		p := y*w + x
		if visited[p] {
			return
		}
		visited[p] = true
		if matches(p) {
			queue = append(queue, p)
		}
	}

	for x := 0; x < w; x++ {
		push(x, 0)
		push(x, h-1)
	}
	for y := 0; y < h; y++ {
		push(0, y)
		push(w-1, y)
	}

	for len(queue) > 0 {
		p := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		x, y := p%w, p/w
		img.Pix[y*img.Stride+x*4+3] = 0

		if x > 0 {
			push(x-1, y)
		}
		if x < w-1 {
			push(x+1, y)
		}
		if y > 0 {
			push(x, y-1)
		}
		if y < h-1 {
			push(x, y+1)
		}
	}
}

// alphaBBox 从 alpha 通道计算主体 bounding box
func alphaBBox(img *image.NRGBA, threshold float64) (image.Rectangle, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	th := uint8(threshold * 255)

	minX, minY := w, h
	maxX, maxY := 0, 0
	found := false

	for y := 0; y < h; y++ {
		row := y * img.Stride
		for x := 0; x < w; x++ {
			if img.Pix[row+x*4+3] <= th {
				continue
			}
			found = true
			minX = min(minX, x)
			minY = min(minY, y)
			maxX = max(maxX, x)
			maxY = max(maxY, y)
		}
	}

	if !found {
		return image.Rectangle{}, ErrNoForeground
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), nil
}
