package suitability

// Weights holds the sub-score weights of the confidence formula.
// The defaults are the tuned production values; they are heuristic and
// intentionally configurable for product-level recalibration.
type Weights struct {
	Academic  float64
	Lexical   float64
	Length    float64
	Structure float64
}

// Thresholds holds the scoring cutoffs and denominators.
type Thresholds struct {
	// Worthy is the minimum confidence for a positive verdict.
	Worthy float64

	// LengthTarget is the word count at which the length sub-score saturates.
	LengthTarget int

	// AcademicTarget is the academic hit count at which that score saturates.
	AcademicTarget int

	// StructureTarget is the structure hit count at which that score saturates.
	StructureTarget int
}

// DefaultWeights returns the current production weights.
func DefaultWeights() Weights {
	return Weights{
		Academic:  0.35,
		Lexical:   0.25,
		Length:    0.20,
		Structure: 0.20,
	}
}

// DefaultThresholds returns the current production thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Worthy:          0.4,
		LengthTarget:    250,
		AcademicTarget:  5,
		StructureTarget: 3,
	}
}
