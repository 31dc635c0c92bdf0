package diagnose

import (
	"math"

	"github.com/irmsia-data/anomaly.report/internal/dicom"
)

// Constants for the pixel-grid operators
const (
	// SobelBinaryThreshold is the normalised gradient magnitude above which
	// a pixel counts as an edge
	SobelBinaryThreshold = 0.2
	// AdaptiveWindow is the local-mean window side for adaptive thresholding
	AdaptiveWindow = 11
	// AdaptiveOffset is subtracted from the local mean before comparison,
	// expressed in the [0,1] intensity scale (2/255 in 8-bit terms)
	AdaptiveOffset = 2.0 / 255.0
	// AdaptiveFloor is the absolute intensity below which a pixel can never
	// be foreground; without it flat dark background passes the local-mean
	// test trivially
	AdaptiveFloor = 0.1
)

// sobelMagnitude computes the gradient magnitude of the tensor, normalised
// so the strongest edge is 1. Border pixels are left at zero.
func sobelMagnitude(t *dicom.Tensor) []float32 {
	w, h := t.Width, t.Height
	mag := make([]float32, w*h)
	if w < 3 || h < 3 {
		return mag
	}

	var maxMag float64
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			gx := float64(t.At(x+1, y-1)) + 2*float64(t.At(x+1, y)) + float64(t.At(x+1, y+1)) -
				float64(t.At(x-1, y-1)) - 2*float64(t.At(x-1, y)) - float64(t.At(x-1, y+1))
			gy := float64(t.At(x-1, y+1)) + 2*float64(t.At(x, y+1)) + float64(t.At(x+1, y+1)) -
				float64(t.At(x-1, y-1)) - 2*float64(t.At(x, y-1)) - float64(t.At(x+1, y-1))
			m := math.Hypot(gx, gy)
			mag[y*w+x] = float32(m)
			if m > maxMag {
				maxMag = m
			}
		}
	}
	if maxMag > 0 {
		inv := float32(1 / maxMag)
		for i := range mag {
			mag[i] *= inv
		}
	}
	return mag
}

// edgeMask binarises the Sobel magnitude at SobelBinaryThreshold.
func edgeMask(t *dicom.Tensor) []uint8 {
	mag := sobelMagnitude(t)
	mask := make([]uint8, len(mag))
	for i, m := range mag {
		if m > SobelBinaryThreshold {
			mask[i] = 1
		}
	}
	return mask
}

// edgeDensity returns the fraction of pixels classified as edges.
func edgeDensity(t *dicom.Tensor) float64 {
	mask := edgeMask(t)
	if len(mask) == 0 {
		return 0
	}
	count := 0
	for _, v := range mask {
		count += int(v)
	}
	return float64(count) / float64(len(mask))
}

// connectedComponents labels the 8-connected components of a binary mask.
// labels[i] is 0 for background, otherwise the 1-based component id in
// discovery order (row-major scan). Returns the component count.
func connectedComponents(mask []uint8, w, h int) (labels []int, count int) {
	labels = make([]int, len(mask))
	queue := make([]int, 0, 64)

	for start := range mask {
		if mask[start] == 0 || labels[start] != 0 {
			continue
		}
		count++
		labels[start] = count
		queue = append(queue[:0], start)

		for len(queue) > 0 {
			idx := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			x, y := idx%w, idx/w

			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if nx < 0 || ny < 0 || nx >= w || ny >= h {
						continue
					}
					n := ny*w + nx
					if mask[n] != 0 && labels[n] == 0 {
						labels[n] = count
						queue = append(queue, n)
					}
				}
			}
		}
	}
	return labels, count
}

// erode3x3 removes foreground pixels lacking a full 3x3 foreground
// neighbourhood. Pixels outside the grid count as background.
func erode3x3(mask []uint8, w, h int) []uint8 {
	out := make([]uint8, len(mask))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			keep := true
			for dy := -1; dy <= 1 && keep; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || ny < 0 || nx >= w || ny >= h || mask[ny*w+nx] == 0 {
						keep = false
						break
					}
				}
			}
			if keep {
				out[y*w+x] = 1
			}
		}
	}
	return out
}

// dilate3x3 grows the foreground by one pixel in every direction.
func dilate3x3(mask []uint8, w, h int) []uint8 {
	out := make([]uint8, len(mask))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := x+dx, y+dy
					if nx >= 0 && ny >= 0 && nx < w && ny < h && mask[ny*w+nx] != 0 {
						out[y*w+x] = 1
					}
				}
			}
		}
	}
	return out
}

// morphOpen removes speckle: erosion followed by dilation.
func morphOpen(mask []uint8, w, h int) []uint8 {
	return dilate3x3(erode3x3(mask, w, h), w, h)
}

// morphClose fills pinholes: dilation followed by erosion.
func morphClose(mask []uint8, w, h int) []uint8 {
	return erode3x3(dilate3x3(mask, w, h), w, h)
}

// adaptiveThreshold binarises the tensor against the local mean over an
// AdaptiveWindow square, offset by AdaptiveOffset. A summed-area table
// keeps it linear in pixel count.
func adaptiveThreshold(t *dicom.Tensor) []uint8 {
	w, h := t.Width, t.Height
	half := AdaptiveWindow / 2

	// Integral image with a zero top row and left column.
	integral := make([]float64, (w+1)*(h+1))
	for y := 0; y < h; y++ {
		rowSum := 0.0
		for x := 0; x < w; x++ {
			rowSum += float64(t.At(x, y))
			integral[(y+1)*(w+1)+x+1] = integral[y*(w+1)+x+1] + rowSum
		}
	}

	mask := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			x0, y0 := max(0, x-half), max(0, y-half)
			x1, y1 := min(w-1, x+half), min(h-1, y+half)
			n := float64((x1 - x0 + 1) * (y1 - y0 + 1))
			sum := integral[(y1+1)*(w+1)+x1+1] - integral[y0*(w+1)+x1+1] -
				integral[(y1+1)*(w+1)+x0] + integral[y0*(w+1)+x0]
			v := float64(t.At(x, y))
			if v > sum/n-AdaptiveOffset && v > AdaptiveFloor {
				mask[y*w+x] = 1
			}
		}
	}
	return mask
}

// componentPerimeter counts the exposed 4-neighbour edges of a component,
// which approximates its boundary length in pixels.
func componentPerimeter(labels []int, w, h, id int) float64 {
	perim := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if labels[y*w+x] != id {
				continue
			}
			for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || ny < 0 || nx >= w || ny >= h || labels[ny*w+nx] != id {
					perim++
				}
			}
		}
	}
	return float64(perim)
}
