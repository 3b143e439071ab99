package preview

import (
	"image"

	"golang.org/x/image/draw"
)

// downsample reduces the supersampled frame with premultiplied-alpha
// CatmullRom filtering. Filtering straight alpha directly would bleed
// dark halos into the transparent background.
func downsample(img *image.NRGBA, targetSize int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= targetSize && b.Dy() <= targetSize {
		return img
	}

	// Premultiply alpha
	premul := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := img.PixOffset(x, y)
			di := premul.PixOffset(x, y)
			a := float64(img.Pix[si+3]) / 255.0
			premul.Pix[di] = uint8(float64(img.Pix[si])*a + 0.5)
			premul.Pix[di+1] = uint8(float64(img.Pix[si+1])*a + 0.5)
			premul.Pix[di+2] = uint8(float64(img.Pix[si+2])*a + 0.5)
			premul.Pix[di+3] = img.Pix[si+3]
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premul, premul.Bounds(), draw.Src, nil)

	// Unpremultiply alpha
	result := image.NewNRGBA(dst.Bounds())
	for y := 0; y < targetSize; y++ {
		for x := 0; x < targetSize; x++ {
			si := dst.PixOffset(x, y)
			di := result.PixOffset(x, y)
			a := dst.Pix[si+3]
			if a == 0 {
				continue
			}
			af := float64(a) / 255.0
			result.Pix[di] = clampU8(float64(dst.Pix[si]) / af)
			result.Pix[di+1] = clampU8(float64(dst.Pix[si+1]) / af)
			result.Pix[di+2] = clampU8(float64(dst.Pix[si+2]) / af)
			result.Pix[di+3] = a
		}
	}
	return result
}

func clampU8(v float64) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v + 0.5)
}
