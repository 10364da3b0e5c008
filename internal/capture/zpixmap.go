package capture

import (
	"fmt"
	"image"

	"github.com/jezek/xgb/xproto"
)

// decodeZPixmap converts the data of a ZPixmap GetImage reply into RGBA. The
// server sends little endian BGRX rows padded to the scanline unit of the
// matching pixmap format; the pad is derived from the data length.
func decodeZPixmap(formats []xproto.Format, depth byte, data []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("empty geometry %dx%d", width, height)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image data")
	}

	bpp := 0
	for _, f := range formats {
		if f.Depth == depth {
			bpp = int(f.BitsPerPixel) / 8
			break
		}
	}
	if bpp == 0 {
		return nil, fmt.Errorf("unsupported depth %d", depth)
	}
	if bpp < 3 {
		return nil, fmt.Errorf("unsupported pixel format %d bpp", bpp*8)
	}

	stride := len(data) / height
	if stride*height != len(data) || stride < width*bpp {
		return nil, fmt.Errorf("unexpected stride for %d bytes", len(data))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := data[y*stride : y*stride+width*bpp]
		out := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < width; x++ {
			px := row[x*bpp : x*bpp+bpp]
			o := out[x*4 : x*4+4]
			o[0], o[1], o[2] = px[2], px[1], px[0]
			// Depth 24 leaves the fourth byte undefined.
			o[3] = 0xFF
			if depth == 32 && bpp >= 4 {
				o[3] = px[3]
			}
		}
	}
	return img, nil
}
