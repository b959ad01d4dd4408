package ioutils

import (
	"bytes"
	"image"
	_ "image/gif" // GIF decoder registration
	"image/jpeg"
	_ "image/png" // PNG decoder registration

	"golang.org/x/image/draw"
)

// ImageService prepares cover artwork for ID3 embedding.
//
// The catalog serves covers in whatever format the site authors
// uploaded; the APIC frame the tagger writes always declares
// image/jpeg. ImageService can close that gap by re-encoding the
// bytes, and can shrink oversized covers so the tag stays small.
//
// Example usage:
//
//	svc := ioutils.NewImageService()
//	artwork, err := svc.PrepareCoverArt(raw, true, 1000, true)
//	if err != nil {
//	    artwork = raw // fall back to the original bytes
//	}
type ImageService struct {
	quality int
}

// NewImageService creates a new ImageService encoding JPEG at quality 90.
func NewImageService() *ImageService {
	return &ImageService{quality: 90}
}

// PrepareCoverArt optionally resizes and JPEG-encodes cover bytes.
//
// With resize enabled, the image is scaled down to fit within
// maxSize×maxSize, preserving aspect ratio; images already within
// bounds keep their dimensions. With convert enabled (or as a side
// effect of resizing) the result is JPEG-encoded.
//
// When both resize and convert are false the input bytes are returned
// untouched, so the default pipeline embeds exactly what it downloaded.
func (s *ImageService) PrepareCoverArt(data []byte, resize bool, maxSize int, convert bool) ([]byte, error) {
	if !resize && !convert {
		return data, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	if resize {
		img = s.scaleToFit(img, maxSize, maxSize)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: s.quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// scaleToFit scales img down to fit within maxWidth×maxHeight,
// preserving aspect ratio. Images already within bounds are returned
// unchanged. Catmull-Rom is used for quality over speed; covers are
// small and processed once per item.
func (s *ImageService) scaleToFit(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= maxWidth && height <= maxHeight {
		return img
	}

	ratio := float64(width) / float64(height)
	if float64(maxWidth)/float64(maxHeight) > ratio {
		width = int(float64(maxHeight) * ratio)
		height = maxHeight
	} else {
		height = int(float64(maxWidth) / ratio)
		width = maxWidth
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
