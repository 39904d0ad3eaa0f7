package readable

// ContentDiffers reports whether other is a materially different extraction
// than base: either one is missing, base is empty while other is not, or
// the text lengths differ by more than 50% of the shorter one.
func ContentDiffers(base, other *Article) bool {
	if base == nil || other == nil {
		return base != other
	}
	a, b := base.Length, other.Length
	if a == 0 && b == 0 {
		return false
	}
	if a > b {
		a, b = b, a
	}
	if a == 0 {
		return true
	}
	return float64(b) > float64(a)*1.5
}
