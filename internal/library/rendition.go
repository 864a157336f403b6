package library

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"golang.org/x/image/draw"
)

type renditionKey struct {
	assetID string
	width   int
	height  int
	mode    ContentMode
}

// RequestRendition renders an asset at the requested size asynchronously.
// The completion always fires exactly once; on failure the result carries no
// image and the failure is only logged. Completions run off the UI context.
func (s *Service) RequestRendition(req RenditionRequest, completion func(RenditionResult)) {
	go func() {
		result := RenditionResult{AssetID: req.Asset.ID, Token: req.Token}
		defer func() { completion(result) }()

		if req.Asset.IsZero() || req.Width <= 0 || req.Height <= 0 {
			return
		}

		key := renditionKey{assetID: req.Asset.ID, width: req.Width, height: req.Height, mode: req.Mode}
		if cached, ok := s.renditions.Get(key); ok {
			result.Image = cached
			return
		}

		src, err := decodeImageFile(req.Asset.Path)
		if err != nil {
			s.log.Debug("rendition decode failed", "asset", req.Asset.ID, "err", err)
			return
		}

		rendered := scaleRendition(src, req.Width, req.Height, req.Mode)
		s.renditions.Add(key, rendered)
		result.Image = rendered
	}()
}

func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

// scaleRendition resizes src to the target. Aspect-fill covers the full
// target and crops overflow symmetrically; aspect-fit returns the largest
// image that fits inside the target without cropping.
func scaleRendition(src image.Image, width, height int, mode ContentMode) image.Image {
	bounds := src.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 {
		return image.NewRGBA(image.Rect(0, 0, width, height))
	}

	scaleX := float64(width) / float64(srcW)
	scaleY := float64(height) / float64(srcH)

	var scale float64
	if mode == ContentModeAspectFill {
		scale = math.Max(scaleX, scaleY)
	} else {
		scale = math.Min(scaleX, scaleY)
	}

	scaledW := int(math.Round(float64(srcW) * scale))
	scaledH := int(math.Round(float64(srcH) * scale))
	if scaledW < 1 {
		scaledW = 1
	}
	if scaledH < 1 {
		scaledH = 1
	}

	if mode == ContentModeAspectFit {
		dst := image.NewRGBA(image.Rect(0, 0, scaledW, scaledH))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)
		return dst
	}

	// Fill: scale to cover, then center the overflow so the crop is even.
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	offsetX := (width - scaledW) / 2
	offsetY := (height - scaledH) / 2
	target := image.Rect(offsetX, offsetY, offsetX+scaledW, offsetY+scaledH)
	draw.ApproxBiLinear.Scale(dst, target, src, bounds, draw.Src, nil)
	return dst
}
