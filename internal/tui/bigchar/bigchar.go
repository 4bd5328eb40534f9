// Package bigchar renders letters as large block art using half-block characters.
package bigchar

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/math/fixed"
)

var loadedFace font.Face

func init() {
	fnt, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return
	}
	loadedFace = truetype.NewFace(fnt, &truetype.Options{
		Size:    64,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

// RenderBlock renders a letter using half-block characters (▀▄█).
// cols and rows define the output size in terminal cells.
func RenderBlock(char rune, cols, rows int) string {
	if char == 0 || loadedFace == nil || cols <= 0 || rows <= 0 {
		return ""
	}

	bounds, _, ok := loadedFace.GlyphBounds(char)
	if !ok {
		return ""
	}
	glyphWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	glyphHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()

	padding := 4
	srcWidth := glyphWidth + padding*2
	srcHeight := glyphHeight + padding*2

	// Keep narrow letters like I from being stretched to the full tile
	if srcWidth < srcHeight*2/3 {
		srcWidth = srcHeight * 2 / 3
	}

	srcImg := image.NewGray(image.Rect(0, 0, srcWidth, srcHeight))
	draw.Draw(srcImg, srcImg.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	// Center the glyph box; bounds are relative to the dot
	x := (srcWidth-glyphWidth)/2 - bounds.Min.X.Floor()
	y := (srcHeight-glyphHeight)/2 - bounds.Min.Y.Floor()

	d := &font.Drawer{
		Dst:  srcImg,
		Src:  image.White,
		Face: loadedFace,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(string(char))

	scaledImg := scaleDown(srcImg, cols, rows*2)

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
			sx2 := min(int(float64(dx+1)*xRatio), srcWidth)
			sy2 := min(int(float64(dy+1)*yRatio), srcHeight)

			var sum, count int
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
			topOn := pixelBrightness(img, col, row*2) > threshold
			bottomOn := pixelBrightness(img, col, row*2+1) > threshold

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

func pixelBrightness(img *image.Gray, x, y int) uint8 {
	if x < 0 || y < 0 || x >= img.Bounds().Max.X || y >= img.Bounds().Max.Y {
		return 0
	}
	return img.GrayAt(x, y).Y
}

// IsAvailable returns true if the font was loaded.
func IsAvailable() bool {
	return loadedFace != nil
}

type cacheKey struct {
	char       rune
	cols, rows int
}

var cache = make(map[cacheKey]string)

// GetCached returns a cached rendering or renders a new one.
func GetCached(char rune, cols, rows int) string {
	if !IsAvailable() {
		return ""
	}

	key := cacheKey{char, cols, rows}
	if cached, ok := cache[key]; ok {
		return cached
	}

	rendered := RenderBlock(char, cols, rows)
	cache[key] = rendered
	return rendered
}
