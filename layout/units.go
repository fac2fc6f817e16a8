package layout

// This file defines unit conversion helpers between device pixels,
// millimeters and typographic points. The layout core itself is
// unit-agnostic (configuration, measurement and draw coordinates all share
// the pixel unit); the canvas renderer speaks mm/pt internally and converts
// at its boundary.

// Conversion constants between pt and mm.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// DefaultDPI is the pixel density assumed when converting configured pixel
// lengths to physical canvas units.
const DefaultDPI = 96.0

const mmPerInch = 25.4

// PxToMm converts a pixel length to millimeters at the given DPI.
// A non-positive dpi falls back to DefaultDPI.
func PxToMm(px, dpi float64) float64 {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return px * mmPerInch / dpi
}

// MmToPx converts a millimeter length to pixels at the given DPI.
func MmToPx(mm, dpi float64) float64 {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return mm * dpi / mmPerInch
}

// PxToPt converts a pixel length to points at the given DPI.
func PxToPt(px, dpi float64) float64 { return PxToMm(px, dpi) * MmToPt }
