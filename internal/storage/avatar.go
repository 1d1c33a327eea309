package storage

import (
	"bytes"
	"image"
	"io"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"

	"github.com/haldenworks/contact-manager/internal/httperr"
)

const maxAvatarDim = 512

// ProcessAvatar decodes an uploaded image, scales it down to at most
// 512px on the longest side and re-encodes it as webp.
func ProcessAvatar(r io.Reader) ([]byte, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_image")
	}

	img = shrink(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 85}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func shrink(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxAvatarDim && h <= maxAvatarDim {
		return img
	}

	if w >= h {
		h = h * maxAvatarDim / w
		w = maxAvatarDim
	} else {
		w = w * maxAvatarDim / h
		h = maxAvatarDim
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}
