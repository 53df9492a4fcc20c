package hal

import "image"

// rgbaBytes unpacks 0xRRGGBBAA cells into R,G,B,A byte order.
func rgbaBytes(dst []byte, src []uint32) {
	for i := 0; i < len(src) && i*4+3 < len(dst); i++ {
		p := src[i]
		j := i * 4
		dst[j+0] = uint8(p >> 24)
		dst[j+1] = uint8(p >> 16)
		dst[j+2] = uint8(p >> 8)
		dst[j+3] = uint8(p)
	}
}

func frameImage(pix []uint32, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	rgbaBytes(img.Pix, pix)
	return img
}

func validFrame(pix []uint32, width, height, wantW, wantH int) bool {
	return width == wantW && height == wantH && len(pix) == width*height
}
