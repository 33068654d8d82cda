package resize

import "math"

// CellAspect is the height of a terminal cell relative to its width.
const CellAspect = 2.0

// Fit fills in a zero cols or rows from the source aspect ratio. Given
// both, it returns them unchanged; given neither, it returns a zero
// Resolution which Resize rejects.
func Fit(srcW, srcH, cols, rows int) Resolution {
	if srcW <= 0 || srcH <= 0 || (cols <= 0 && rows <= 0) {
		return Resolution{Width: max(cols, 0), Height: max(rows, 0)}
	}
	switch {
	case rows <= 0:
		rows = int(math.Round(float64(cols) * float64(srcH) / float64(srcW) / CellAspect))
	case cols <= 0:
		cols = int(math.Round(float64(rows) * float64(srcW) / float64(srcH) * CellAspect))
	}
	return Resolution{Width: max(cols, 1), Height: max(rows, 1)}
}
