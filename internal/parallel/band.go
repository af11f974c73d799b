package parallel

// Band is the half-open row range [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Height returns the number of rows in the band.
func (b Band) Height() int {
	return b.Y1 - b.Y0
}

// SplitRows divides rows [0, height) into at most n contiguous, disjoint
// bands. Every boundary except the last is a multiple of align, so a band
// never cuts through an align×align block. Bands differ in height by at most
// one align unit.
func SplitRows(height, align, n int) []Band {
	if height <= 0 {
		return nil
	}
	align = max(align, 1)
	n = max(n, 1)

	units := (height + align - 1) / align
	n = min(n, units)

	bands := make([]Band, 0, n)
	y := 0
	for i := range n {
		share := units / n
		if i < units%n {
			share++
		}
		y1 := min(y+share*align, height)
		bands = append(bands, Band{Y0: y, Y1: y1})
		y = y1
	}
	return bands
}
