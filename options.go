package readable

// Default option values.
const (
	DefaultCharThreshold   = 500
	DefaultNbTopCandidates = 5
)

// DefaultClassesToPreserve lists the classes kept on content elements when
// class stripping is enabled.
var DefaultClassesToPreserve = []string{"page"}

// Options configures an extraction.
type Options struct {
	// Debug enables verbose logging of the retry loop and cleaner. It has no
	// effect on the extracted article.
	Debug bool `yaml:"debug"`

	// CharThreshold is the minimum text length an attempt must reach to be
	// accepted.
	CharThreshold int `yaml:"charThreshold"`

	// NbTopCandidates is the size of the candidate pool.
	NbTopCandidates int `yaml:"nbTopCandidates"`

	// KeepClasses disables class attribute stripping entirely.
	KeepClasses bool `yaml:"keepClasses"`

	// ClassesToPreserve lists classes kept when stripping.
	ClassesToPreserve []string `yaml:"classesToPreserve"`

	// DisableJSONLD skips JSON-LD in the metadata chain.
	DisableJSONLD bool `yaml:"disableJsonLd"`

	// LinkDensityModifier is added to link density thresholds and to the
	// candidate link density penalty factor.
	LinkDensityModifier float64 `yaml:"linkDensityModifier"`

	// Heuristics holds the scoring and cleaning thresholds.
	Heuristics Heuristics `yaml:"heuristics"`
}

// Heuristics are the tuned thresholds of the scoring pipeline.
type Heuristics struct {
	// MinSeedLength is the minimum text length of a scoring seed.
	MinSeedLength int `yaml:"minSeedLength"`

	// LengthBonusStep is the number of characters per length bonus point.
	LengthBonusStep int `yaml:"lengthBonusStep"`

	// LengthBonusCap caps the length bonus of a single seed.
	LengthBonusCap int `yaml:"lengthBonusCap"`

	// GrandparentDivisor divides a seed score before it is added to the
	// seed's grandparent.
	GrandparentDivisor float64 `yaml:"grandparentDivisor"`

	// ClassWeight is added or subtracted for positive and negative class/id
	// matches.
	ClassWeight float64 `yaml:"classWeight"`

	// SiblingScoreRatio is the fraction of the top score a sibling needs to
	// be merged.
	SiblingScoreRatio float64 `yaml:"siblingScoreRatio"`

	// SiblingScoreFloor is the minimum sibling merge threshold.
	SiblingScoreFloor float64 `yaml:"siblingScoreFloor"`

	// ParagraphLength separates long paragraphs from short ones in the
	// sibling paragraph rule.
	ParagraphLength int `yaml:"paragraphLength"`

	// ParagraphLinkDensity is the maximum link density of a long sibling
	// paragraph.
	ParagraphLinkDensity float64 `yaml:"paragraphLinkDensity"`

	// ExcerptMinLength is the minimum length of an excerpt paragraph.
	ExcerptMinLength int `yaml:"excerptMinLength"`
}

// DefaultHeuristics returns the tuned default thresholds.
func DefaultHeuristics() Heuristics {
	return Heuristics{
		MinSeedLength:        25,
		LengthBonusStep:      100,
		LengthBonusCap:       3,
		GrandparentDivisor:   2,
		ClassWeight:          25,
		SiblingScoreRatio:    0.2,
		SiblingScoreFloor:    10,
		ParagraphLength:      80,
		ParagraphLinkDensity: 0.25,
		ExcerptMinLength:     25,
	}
}

// DefaultOptions returns options with every default applied.
func DefaultOptions() Options {
	return Options{
		CharThreshold:     DefaultCharThreshold,
		NbTopCandidates:   DefaultNbTopCandidates,
		ClassesToPreserve: append([]string(nil), DefaultClassesToPreserve...),
		Heuristics:        DefaultHeuristics(),
	}
}

// Validate returns an error if the options contain invalid values.
func (o *Options) Validate() error {
	if o.CharThreshold < 0 {
		return Errorf(EINVALID, "char threshold must not be negative")
	}
	if o.NbTopCandidates < 1 {
		return Errorf(EINVALID, "candidate pool size must be at least 1")
	}
	h := o.Heuristics
	if h.MinSeedLength < 0 || h.ParagraphLength < 0 || h.ExcerptMinLength < 0 {
		return Errorf(EINVALID, "length thresholds must not be negative")
	}
	if h.LengthBonusStep < 1 {
		return Errorf(EINVALID, "length bonus step must be at least 1")
	}
	if h.GrandparentDivisor <= 0 {
		return Errorf(EINVALID, "grandparent divisor must be positive")
	}
	if h.SiblingScoreRatio < 0 || h.SiblingScoreRatio > 1 {
		return Errorf(EINVALID, "sibling score ratio must be between 0 and 1")
	}
	return nil
}

// PreservesClass reports whether class survives class stripping.
func (o *Options) PreservesClass(class string) bool {
	for _, c := range o.ClassesToPreserve {
		if c == class {
			return true
		}
	}
	return false
}
