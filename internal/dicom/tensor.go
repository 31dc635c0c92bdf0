package dicom

import (
	"gonum.org/v1/gonum/stat"
)

// Tensor is the canonical pipeline input: a single-channel float image with
// intensities in [0,1], row-major, plus whatever physical metadata the
// source carried. Spacing is millimetres per pixel and zero when unknown.
type Tensor struct {
	Width    int
	Height   int
	Pix      []float32
	SpacingX float64
	SpacingY float64
	Modality string
	Source   Format
}

// NewTensor allocates a zero tensor of the given dimensions.
func NewTensor(w, h int) *Tensor {
	return &Tensor{Width: w, Height: h, Pix: make([]float32, w*h)}
}

// At returns the intensity at (x, y).
func (t *Tensor) At(x, y int) float32 {
	return t.Pix[y*t.Width+x]
}

// Set stores the intensity at (x, y).
func (t *Tensor) Set(x, y int, v float32) {
	t.Pix[y*t.Width+x] = v
}

// Clone returns a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	out := *t
	out.Pix = make([]float32, len(t.Pix))
	copy(out.Pix, t.Pix)
	return &out
}

// HasSpacing reports whether physical pixel spacing is known on both axes.
func (t *Tensor) HasSpacing() bool {
	return t.SpacingX > 0 && t.SpacingY > 0
}

// Stats returns the mean and population standard deviation of the
// intensities.
func (t *Tensor) Stats() (mean, std float64) {
	vals := make([]float64, len(t.Pix))
	for i, v := range t.Pix {
		vals[i] = float64(v)
	}
	mean = stat.Mean(vals, nil)
	std = stat.PopStdDev(vals, nil)
	return mean, std
}
