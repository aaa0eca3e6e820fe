package render

import (
	"bytes"
	"context"
	"image"

	"github.com/disintegration/imaging"

	"github.com/panelkit/panelkit/pkg/errors"
	"github.com/panelkit/panelkit/pkg/observability"
)

// Downscale resamples a supersampled canvas image to the logical panel
// resolution using Lanczos filtering. Images already at the target size pass
// through unchanged.
func (r *Renderer) Downscale(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() == r.size && b.Dy() == r.size {
		return img
	}
	return imaging.Resize(img, r.size, r.size, imaging.Lanczos)
}

// ToJPEG downscales and encodes a frame under a byte budget.
//
// The image is encoded at the requested quality first. While the result
// exceeds maxBytes, quality drops by the configured step until the encoded
// size fits or the quality floor is reached. The floor result is returned
// even when still over budget: the cap is a target, not a guarantee, and a
// refresh pipeline needs a frame more than it needs a small one.
//
// maxBytes <= 0 disables the budget loop.
func (r *Renderer) ToJPEG(img image.Image, quality, maxBytes int) ([]byte, error) {
	return r.toJPEG(context.Background(), "", img, quality, maxBytes)
}

// FrameJPEG is ToJPEG with encode hooks attributed to a frame ID.
func (r *Renderer) FrameJPEG(ctx context.Context, frameID string, img image.Image, quality, maxBytes int) ([]byte, error) {
	return r.toJPEG(ctx, frameID, img, quality, maxBytes)
}

func (r *Renderer) toJPEG(ctx context.Context, frameID string, img image.Image, quality, maxBytes int) ([]byte, error) {
	if quality < 1 || quality > 100 {
		quality = r.enc.Quality
	}
	step := r.enc.Step
	if step < 1 {
		step = 1
	}
	floor := r.enc.Floor
	if floor < 1 {
		floor = 1
	}

	out := r.Downscale(img)

	var buf bytes.Buffer
	q := quality
	for {
		buf.Reset()
		if err := imaging.Encode(&buf, out, imaging.JPEG, imaging.JPEGQuality(q)); err != nil {
			return nil, errors.Wrap(errors.ErrCodeEncodeFailed, err, "jpeg encode at quality %d", q)
		}
		observability.Frame().OnEncodeAttempt(ctx, frameID, q, buf.Len())

		if maxBytes <= 0 || buf.Len() <= maxBytes || q <= floor {
			break
		}
		next := q - step
		if next < floor {
			next = floor
		}
		r.logger.Debug("frame over byte budget, reducing quality",
			"bytes", buf.Len(), "budget", maxBytes, "quality", q, "next", next)
		q = next
	}

	over := maxBytes > 0 && buf.Len() > maxBytes
	observability.Frame().OnEncodeComplete(ctx, frameID, q, buf.Len(), over)
	if over {
		r.logger.Warn("returning best-effort frame", "err", errors.New(errors.ErrCodeEncodeBudget,
			"frame is %d bytes against a %d byte budget at the quality floor %d", buf.Len(), maxBytes, q))
	}

	return append([]byte(nil), buf.Bytes()...), nil
}

// ToPNG downscales and losslessly encodes the same frame for the preview
// channel. PNG output is not subject to the byte budget.
func (r *Renderer) ToPNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, r.Downscale(img), imaging.PNG); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncodeFailed, err, "png encode")
	}
	return append([]byte(nil), buf.Bytes()...), nil
}
