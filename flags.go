package readable

import "strings"

// Flags is the set of strictness toggles used by a scoring attempt. The
// retry loop starts from FlagsAll and relaxes one flag per attempt.
type Flags uint8

// Strictness flags.
const (
	FlagStripUnlikelys Flags = 1 << iota
	FlagWeightClasses
	FlagCleanConditionally

	FlagsAll  = FlagStripUnlikelys | FlagWeightClasses | FlagCleanConditionally
	FlagsNone Flags = 0
)

// relaxOrder is the order in which the retry loop disables flags.
var relaxOrder = []Flags{FlagCleanConditionally, FlagWeightClasses, FlagStripUnlikelys}

// Has reports whether flag is enabled.
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

// Relax returns the next, less strict state. It disables the first enabled
// flag in relaxation order and reports false once nothing is left to
// disable. Flags are never re-enabled.
func (f Flags) Relax() (Flags, bool) {
	for _, flag := range relaxOrder {
		if f.Has(flag) {
			return f &^ flag, true
		}
	}
	return f, false
}

// String returns a readable list of enabled flags.
func (f Flags) String() string {
	if f == FlagsNone {
		return "none"
	}
	var names []string
	if f.Has(FlagStripUnlikelys) {
		names = append(names, "strip-unlikelys")
	}
	if f.Has(FlagWeightClasses) {
		names = append(names, "weight-classes")
	}
	if f.Has(FlagCleanConditionally) {
		names = append(names, "clean-conditionally")
	}
	return strings.Join(names, ",")
}
