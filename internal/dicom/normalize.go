package dicom

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"sort"
	"strconv"

	sdicom "github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/tag"
	"golang.org/x/image/draw"
	"gonum.org/v1/gonum/stat"

	"github.com/irmsia-data/anomaly.report/internal/config"
	"github.com/irmsia-data/anomaly.report/internal/monitoring"
)

// Default CT soft-tissue window applied when a CT series carries no window
// metadata.
const (
	defaultCTWindowCenter = 40.0
	defaultCTWindowWidth  = 400.0
)

// Percentile bounds for the contrast stretch. Absolute min/max would let a
// single hot pixel crush the dynamic range.
const (
	stretchLowPercentile  = 0.02
	stretchHighPercentile = 0.98
)

// Normalizer converts raw image bytes into the canonical Tensor. It is
// stateless apart from its configuration and safe for concurrent use.
type Normalizer struct {
	cfg *config.DiagnosticConfig
}

// NewNormalizer returns a Normalizer using the given configuration, or
// defaults when cfg is nil.
func NewNormalizer(cfg *config.DiagnosticConfig) *Normalizer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Normalizer{cfg: cfg}
}

// Normalize decodes raw into a tensor at the configured target resolution
// with intensities scaled to [0,1]. hint selects the decoder; FormatAuto
// sniffs the payload magic. The output is deterministic for identical
// input bytes.
func (n *Normalizer) Normalize(raw []byte, hint Format) (*Tensor, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty payload: %w", ErrDecode)
	}

	format := hint
	if format == FormatAuto {
		format = DetectFormat(raw)
		if format == FormatAuto {
			return nil, fmt.Errorf("unrecognised payload magic: %w", ErrUnsupportedFormat)
		}
	}

	var (
		t   *Tensor
		err error
	)
	switch format {
	case FormatDICOM:
		t, err = n.decodeDICOM(raw)
	case FormatPNG, FormatJPEG:
		t, err = n.decodeRaster(raw, format)
	default:
		return nil, fmt.Errorf("format %v: %w", format, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, err
	}

	return n.resize(t), nil
}

// decodeRaster handles PNG and JPEG payloads. Colour images are reduced to
// luminance; raster sources carry no physical spacing.
func (n *Normalizer) decodeRaster(raw []byte, format Format) (*Tensor, error) {
	var (
		img image.Image
		err error
	)
	switch format {
	case FormatPNG:
		img, err = png.Decode(bytes.NewReader(raw))
	case FormatJPEG:
		img, err = jpeg.Decode(bytes.NewReader(raw))
	}
	if err != nil {
		return nil, fmt.Errorf("decode %v: %v: %w", format, err, ErrDecode)
	}

	b := img.Bounds()
	t := NewTensor(b.Dx(), b.Dy())
	t.Source = format
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			c := color.Gray16Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray16)
			t.Set(x, y, float32(c.Y)/65535)
		}
	}

	stretchPercentiles(t)
	return t, nil
}

// decodeDICOM parses a part-10 DICOM payload and maps its first frame to
// intensities in [0,1] using the modality rescale, the window metadata when
// present, and the photometric interpretation.
func (n *Normalizer) decodeDICOM(raw []byte) (*Tensor, error) {
	ds, err := sdicom.Parse(bytes.NewReader(raw), int64(len(raw)), nil)
	if err != nil {
		return nil, fmt.Errorf("parse dicom: %v: %w", err, ErrDecode)
	}

	pixelEl, err := ds.FindElementByTag(tag.PixelData)
	if err != nil {
		return nil, fmt.Errorf("dicom has no pixel data: %w", ErrDecode)
	}
	info := sdicom.MustGetPixelDataInfo(pixelEl.Value)
	if len(info.Frames) == 0 {
		return nil, fmt.Errorf("dicom has no frames: %w", ErrDecode)
	}
	if len(info.Frames) > 1 {
		monitoring.Logf("[Normalizer] multi-frame dicom, using frame 0 of %d", len(info.Frames))
	}
	frame, err := info.Frames[0].GetNativeFrame()
	if err != nil {
		return nil, fmt.Errorf("dicom frame not native: %v: %w", err, ErrDecode)
	}
	if frame.Rows == 0 || frame.Cols == 0 {
		return nil, fmt.Errorf("dicom frame is empty: %w", ErrDecode)
	}

	modality := firstString(&ds, tag.Modality)
	slope := firstFloat(&ds, tag.RescaleSlope, 1)
	intercept := firstFloat(&ds, tag.RescaleIntercept, 0)

	// Modality rescale maps stored values into physical units (HU for CT).
	vals := make([]float64, frame.Rows*frame.Cols)
	for i, px := range frame.Data {
		vals[i] = float64(px[0])*slope + intercept
	}

	t := NewTensor(frame.Cols, frame.Rows)
	t.Source = FormatDICOM
	t.Modality = modality
	t.SpacingY, t.SpacingX = pixelSpacing(&ds)

	center, width, haveWindow := windowMetadata(&ds)
	if !haveWindow && modality == "CT" {
		center, width = defaultCTWindowCenter, defaultCTWindowWidth
		haveWindow = true
	}

	if haveWindow && width > 0 {
		lo := center - width/2
		for i, v := range vals {
			t.Pix[i] = float32(clamp01((v - lo) / width))
		}
	} else {
		for i, v := range vals {
			t.Pix[i] = float32(v)
		}
		stretchPercentiles(t)
	}

	if firstString(&ds, tag.PhotometricInterpretation) == "MONOCHROME1" {
		for i := range t.Pix {
			t.Pix[i] = 1 - t.Pix[i]
		}
	}

	return t, nil
}

// resize scales the tensor to the configured square resolution with
// Catmull-Rom interpolation, adjusting spacing by the same factors.
func (n *Normalizer) resize(t *Tensor) *Tensor {
	size := n.cfg.GetTargetSize()
	if t.Width == size && t.Height == size {
		return t
	}

	src := image.NewGray16(image.Rect(0, 0, t.Width, t.Height))
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			src.SetGray16(x, y, color.Gray16{Y: uint16(clamp01(float64(t.At(x, y))) * 65535)})
		}
	}

	dst := image.NewGray16(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	out := NewTensor(size, size)
	out.Modality = t.Modality
	out.Source = t.Source
	if t.HasSpacing() {
		out.SpacingX = t.SpacingX * float64(t.Width) / float64(size)
		out.SpacingY = t.SpacingY * float64(t.Height) / float64(size)
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			out.Set(x, y, float32(dst.Gray16At(x, y).Y)/65535)
		}
	}
	return out
}

// stretchPercentiles rescales intensities so [p2, p98] maps to [0,1],
// clipping outside the band. A flat image maps to all zeros.
func stretchPercentiles(t *Tensor) {
	sorted := make([]float64, len(t.Pix))
	for i, v := range t.Pix {
		sorted[i] = float64(v)
	}
	sort.Float64s(sorted)
	lo := stat.Quantile(stretchLowPercentile, stat.Empirical, sorted, nil)
	hi := stat.Quantile(stretchHighPercentile, stat.Empirical, sorted, nil)
	if hi <= lo {
		for i := range t.Pix {
			t.Pix[i] = 0
		}
		return
	}
	scale := 1 / (hi - lo)
	for i, v := range t.Pix {
		t.Pix[i] = float32(clamp01((float64(v) - lo) * scale))
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func firstString(ds *sdicom.Dataset, t tag.Tag) string {
	el, err := ds.FindElementByTag(t)
	if err != nil {
		return ""
	}
	if vals, ok := el.Value.GetValue().([]string); ok && len(vals) > 0 {
		return vals[0]
	}
	return ""
}

func firstFloat(ds *sdicom.Dataset, t tag.Tag, def float64) float64 {
	s := firstString(ds, t)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

// windowMetadata reads WindowCenter/WindowWidth. Multi-valued windows use
// the first pair.
func windowMetadata(ds *sdicom.Dataset) (center, width float64, ok bool) {
	c := firstString(ds, tag.WindowCenter)
	w := firstString(ds, tag.WindowWidth)
	if c == "" || w == "" {
		return 0, 0, false
	}
	center, errC := strconv.ParseFloat(c, 64)
	width, errW := strconv.ParseFloat(w, 64)
	if errC != nil || errW != nil {
		return 0, 0, false
	}
	return center, width, true
}

// pixelSpacing reads PixelSpacing, which DICOM stores row-spacing first.
func pixelSpacing(ds *sdicom.Dataset) (rowMM, colMM float64) {
	el, err := ds.FindElementByTag(tag.PixelSpacing)
	if err != nil {
		return 0, 0
	}
	vals, ok := el.Value.GetValue().([]string)
	if !ok || len(vals) < 2 {
		return 0, 0
	}
	r, errR := strconv.ParseFloat(vals[0], 64)
	c, errC := strconv.ParseFloat(vals[1], 64)
	if errR != nil || errC != nil || r <= 0 || c <= 0 {
		return 0, 0
	}
	return r, c
}
