package widget

import (
	"bytes"
	"hash/crc32"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/panelkit/panelkit/pkg/render"
	"github.com/panelkit/panelkit/pkg/state"
)

type decodedImage struct {
	sum uint32
	img image.Image
}

// Image paints a bitmap from the snapshot, aspect-fit and centered in the
// slot. Decoded bitmaps are cached across frames and invalidated by payload
// checksum, so an unchanged camera still only decodes once. Undecodable or
// absent payloads degrade to the placeholder.
type Image struct {
	Key string

	// cache holds the last decode per key; frames are serialized per
	// target, so no locking beyond the cache's own.
	cache *state.Cache[decodedImage]
}

func (w *Image) Name() string { return "image" }

func (w *Image) Build(ctx *render.Context, snap *state.Snapshot) (Output, error) {
	payload := snap.Image(w.Key)
	if img := w.decode(payload); img != nil {
		ctx.DrawImage(img, 0, 0, ctx.Width(), ctx.Height())
		return Drawn(), nil
	}
	return Tree(centered(missingText(ctx, w.Key, render.FontTitle))), nil
}

func (w *Image) decode(payload []byte) image.Image {
	if len(payload) == 0 {
		return nil
	}
	if w.cache == nil {
		w.cache = state.NewCache[decodedImage]()
	}

	sum := crc32.ChecksumIEEE(payload)
	if hit, ok := w.cache.Get(w.Key); ok && hit.sum == sum {
		return hit.img
	}

	img, _, err := image.Decode(bytes.NewReader(payload))
	if err != nil {
		w.cache.Delete(w.Key)
		return nil
	}
	w.cache.Put(w.Key, decodedImage{sum: sum, img: img})
	return img
}
