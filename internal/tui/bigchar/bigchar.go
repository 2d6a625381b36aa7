// Package bigchar renders short strings such as counters as large block art
// using half-block characters.
package bigchar

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	faceOnce sync.Once
	face     font.Face
)

func loadFace() font.Face {
	faceOnce.Do(func() {
		fnt, err := opentype.Parse(gobold.TTF)
		if err != nil {
			return
		}
		f, err := opentype.NewFace(fnt, &opentype.FaceOptions{
			Size:    64,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return
		}
		face = f
	})
	return face
}

// Render draws text rows terminal cells tall. The width follows the aspect
// ratio of the rendered glyphs.
func Render(text string, rows int) string {
	f := loadFace()
	if text == "" || rows <= 0 || f == nil {
		return ""
	}

	bounds, _ := font.BoundString(f, text)
	glyphWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	glyphHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if glyphWidth <= 0 || glyphHeight <= 0 {
		return ""
	}

	padding := 2
	srcWidth := glyphWidth + padding*2
	srcHeight := glyphHeight + padding*2

	srcImg := image.NewGray(image.Rect(0, 0, srcWidth, srcHeight))
	draw.Draw(srcImg, srcImg.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  srcImg,
		Src:  image.White,
		Face: f,
		Dot:  fixed.P(padding-bounds.Min.X.Floor(), padding-bounds.Min.Y.Floor()),
	}
	d.DrawString(text)

	// Half-block cells are one pixel wide and two pixels tall, which is
	// close to square on most terminals.
	targetHeight := rows * 2
	cols := (srcWidth*targetHeight + srcHeight/2) / srcHeight
	if cols < 1 {
		cols = 1
	}

	scaledImg := scaleDown(srcImg, cols, targetHeight)
	return imageToHalfBlocks(scaledImg, cols, rows)
}

// scaleDown scales a grayscale image using area averaging
func scaleDown(src *image.Gray, dstWidth, dstHeight int) *image.Gray {
	srcBounds := src.Bounds()
	srcWidth := srcBounds.Max.X
	srcHeight := srcBounds.Max.Y

	dst := image.NewGray(image.Rect(0, 0, dstWidth, dstHeight))

	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for dy := 0; dy < dstHeight; dy++ {
		for dx := 0; dx < dstWidth; dx++ {
			sx1 := int(float64(dx) * xRatio)
			sy1 := int(float64(dy) * yRatio)
			sx2 := max(int(float64(dx+1)*xRatio), sx1+1)
			sy2 := max(int(float64(dy+1)*yRatio), sy1+1)

			sx2 = min(sx2, srcWidth)
			sy2 = min(sy2, srcHeight)

			var sum int
			count := 0
			for sy := sy1; sy < sy2; sy++ {
				for sx := sx1; sx < sx2; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					count++
				}
			}

			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}

	return dst
}

// imageToHalfBlocks converts a grayscale image to half-block art
func imageToHalfBlocks(img *image.Gray, cols, rows int) string {
	const threshold = uint8(60)
	var result strings.Builder

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			// Each character cell represents 2 vertical pixels
			topOn := pixel(img, col, row*2) > threshold
			bottomOn := pixel(img, col, row*2+1) > threshold

			switch {
			case topOn && bottomOn:
				result.WriteRune('█')
			case topOn:
				result.WriteRune('▀')
			case bottomOn:
				result.WriteRune('▄')
			default:
				result.WriteRune(' ')
			}
		}
		if row < rows-1 {
			result.WriteRune('\n')
		}
	}

	return result.String()
}

func pixel(img *image.Gray, x, y int) uint8 {
	if x < 0 || y < 0 || x >= img.Bounds().Max.X || y >= img.Bounds().Max.Y {
		return 0
	}
	return img.GrayAt(x, y).Y
}

// IsAvailable reports whether the block font could be loaded.
func IsAvailable() bool {
	return loadFace() != nil
}

var (
	cacheMu sync.Mutex
	cache   = make(map[string]string)
)

// Cached returns the cached rendering of text, rendering it on first use.
func Cached(text string, rows int) string {
	key := fmt.Sprintf("%s/%d", text, rows)

	cacheMu.Lock()
	defer cacheMu.Unlock()
	if out, ok := cache[key]; ok {
		return out
	}

	out := Render(text, rows)
	cache[key] = out
	return out
}
