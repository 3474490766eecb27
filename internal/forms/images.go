package forms

import (
	"fmt"
	"os"
	"path/filepath"
)

// MaxImages bounds a product's image count: existing plus pending.
const MaxImages = 5

// ErrTooManyImages is returned by AddFiles when accepting the files would
// exceed MaxImages. The set is left unmodified.
var ErrTooManyImages = fmt.Errorf("maximum %d images allowed", MaxImages)

// PendingImage is a locally selected file that has not been uploaded yet.
type PendingImage struct {
	Name string
	Data []byte
}

// LoadImage reads a local file into a PendingImage.
func LoadImage(path string) (PendingImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PendingImage{}, fmt.Errorf("read image: %w", err)
	}
	return PendingImage{Name: filepath.Base(path), Data: data}, nil
}

// ImageSet partitions a product draft's images into already-persisted names,
// locally pending uploads, and persisted names marked for deletion.
//
// Invariants, held after every operation:
//   - len(existing) + len(pending) <= MaxImages
//   - a name moved out of existing appears in deleted exactly once and never
//     remains in existing
//
// On submit, pending images become new binary parts and deleted names are sent
// under a dedicated field; untouched existing images are not re-sent at all.
type ImageSet struct {
	existing []string
	pending  []PendingImage
	deleted  []string
}

// NewImageSet seeds the set with the record's persisted image names
// (none for a create flow).
func NewImageSet(existing ...string) *ImageSet {
	return &ImageSet{existing: append([]string(nil), existing...)}
}

// AddFiles appends files to the pending partition. If the result would exceed
// MaxImages it returns ErrTooManyImages and performs no mutation at all.
func (s *ImageSet) AddFiles(files ...PendingImage) error {
	if len(s.existing)+len(s.pending)+len(files) > MaxImages {
		return ErrTooManyImages
	}
	s.pending = append(s.pending, files...)
	return nil
}

// RemoveExisting moves name from existing into deleted. It reports whether
// the name was present; removing an unknown or already-removed name is a no-op,
// so a name can never be recorded for deletion twice.
func (s *ImageSet) RemoveExisting(name string) bool {
	for i, img := range s.existing {
		if img == name {
			s.existing = append(s.existing[:i], s.existing[i+1:]...)
			s.deleted = append(s.deleted, name)
			return true
		}
	}
	return false
}

// RemovePending drops the pending image at index i. Pending images were never
// persisted, so nothing is recorded for deletion.
func (s *ImageSet) RemovePending(i int) bool {
	if i < 0 || i >= len(s.pending) {
		return false
	}
	s.pending = append(s.pending[:i], s.pending[i+1:]...)
	return true
}

// Total counts the images the record would have after submit.
func (s *ImageSet) Total() int {
	return len(s.existing) + len(s.pending)
}

func (s *ImageSet) Existing() []string {
	return append([]string(nil), s.existing...)
}

func (s *ImageSet) Pending() []PendingImage {
	return append([]PendingImage(nil), s.pending...)
}

func (s *ImageSet) Deleted() []string {
	return append([]string(nil), s.deleted...)
}
