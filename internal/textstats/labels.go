package textstats

// DensityTarget is the no-space character count at which density reads 100%.
const DensityTarget = 500

// MixLabel describes how Chinese and Latin text are balanced.
type MixLabel int

const (
	MixNeither MixLabel = iota
	MixChineseOnly
	MixLatinOnly
	MixChineseDominant
	MixLatinDominant
	MixBalanced
)

// String returns the machine name of the label.
func (l MixLabel) String() string {
	switch l {
	case MixChineseOnly:
		return "chinese-only"
	case MixLatinOnly:
		return "latin-only"
	case MixChineseDominant:
		return "chinese-dominant"
	case MixLatinDominant:
		return "latin-dominant"
	case MixBalanced:
		return "mixed"
	default:
		return "neither"
	}
}

// SizeLabel buckets text by its no-space character count.
type SizeLabel int

const (
	SizeTiny SizeLabel = iota
	SizeSmall
	SizeLarge
	SizeHuge
)

// String returns the machine name of the label.
func (l SizeLabel) String() string {
	switch l {
	case SizeSmall:
		return "small"
	case SizeLarge:
		return "large"
	case SizeHuge:
		return "huge"
	default:
		return "tiny"
	}
}

// Density returns CharsNoSpaces / DensityTarget capped at 1.
func Density(s Stats) float64 {
	d := float64(s.CharsNoSpaces) / DensityTarget
	if d > 1 {
		return 1
	}
	return d
}

// DensityPercent is Density as a truncated percentage.
func DensityPercent(s Stats) int {
	return int(Density(s) * 100)
}

// Mix compares Chinese characters against Latin words.
func Mix(s Stats) MixLabel {
	chinese, latin := s.ChineseChars, s.LatinWords
	switch {
	case chinese > 0 && latin > 0:
		if chinese > latin*3 {
			return MixChineseDominant
		}
		if latin > chinese {
			return MixLatinDominant
		}
		return MixBalanced
	case chinese > 0:
		return MixChineseOnly
	case latin > 0:
		return MixLatinOnly
	default:
		return MixNeither
	}
}

// Size buckets s by CharsNoSpaces: <50, <200, <500, and the rest.
func Size(s Stats) SizeLabel {
	switch n := s.CharsNoSpaces; {
	case n < 50:
		return SizeTiny
	case n < 200:
		return SizeSmall
	case n < 500:
		return SizeLarge
	default:
		return SizeHuge
	}
}
