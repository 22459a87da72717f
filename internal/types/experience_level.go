package types

// ExperienceLevel represents the seniority band of a role or candidate
type ExperienceLevel string

// Experience level bands, ordered entry < mid < senior. LevelUnspecified means
// no signal was found and is treated as non-penalizing by the scorer.
const (
	LevelEntry       ExperienceLevel = "entry"
	LevelMid         ExperienceLevel = "mid"
	LevelSenior      ExperienceLevel = "senior"
	LevelUnspecified ExperienceLevel = "unspecified"
)

// Band returns the ordinal position of a level (entry=0, mid=1, senior=2).
// Unspecified and unknown values return -1.
func (l ExperienceLevel) Band() int {
	switch l {
	case LevelEntry:
		return 0
	case LevelMid:
		return 1
	case LevelSenior:
		return 2
	default:
		return -1
	}
}

// Valid reports whether the level is one of the four defined values.
func (l ExperienceLevel) Valid() bool {
	switch l {
	case LevelEntry, LevelMid, LevelSenior, LevelUnspecified:
		return true
	}
	return false
}

// MaxLevel returns the higher of two levels by band. Unspecified loses to any
// specified level.
func MaxLevel(a, b ExperienceLevel) ExperienceLevel {
	if a.Band() >= b.Band() {
		return a
	}
	return b
}
