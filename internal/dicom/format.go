// Package dicom normalises medical image bytes (DICOM or raster) into a
// canonical float tensor suitable for the analysis pipeline.
package dicom

import (
	"bytes"
	"errors"
)

// Sentinel errors for the decode stage. ErrDecode and ErrUnsupportedFormat
// are terminal: retrying the same bytes cannot succeed.
var (
	ErrDecode            = errors.New("dicom: undecodable image data")
	ErrUnsupportedFormat = errors.New("dicom: unsupported image format")
)

// Format identifies the on-disk encoding of an image payload.
type Format int

const (
	// FormatAuto asks the normaliser to sniff the payload magic.
	FormatAuto Format = iota
	FormatDICOM
	FormatPNG
	FormatJPEG
)

// String returns the wire-friendly name of the format.
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatDICOM:
		return "dicom"
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	default:
		return "unknown"
	}
}

// ParseFormat maps a wire format name to a Format. Unrecognised names
// return FormatAuto and false.
func ParseFormat(s string) (Format, bool) {
	switch s {
	case "", "auto":
		return FormatAuto, true
	case "dicom", "dcm":
		return FormatDICOM, true
	case "png":
		return FormatPNG, true
	case "jpeg", "jpg":
		return FormatJPEG, true
	default:
		return FormatAuto, false
	}
}

var (
	pngMagic  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	jpegMagic = []byte{0xff, 0xd8, 0xff}
	dicmMagic = []byte{'D', 'I', 'C', 'M'}
)

// DetectFormat sniffs the payload magic. DICOM part-10 files carry "DICM"
// after a 128-byte preamble. Returns FormatAuto when nothing matches.
func DetectFormat(data []byte) Format {
	if len(data) >= 132 && bytes.Equal(data[128:132], dicmMagic) {
		return FormatDICOM
	}
	if bytes.HasPrefix(data, pngMagic) {
		return FormatPNG
	}
	if bytes.HasPrefix(data, jpegMagic) {
		return FormatJPEG
	}
	return FormatAuto
}
