// Package suitability scores raw document text for quiz-worthiness using
// lexical and structural signals. The verdict is advisory: callers decide
// whether to gate generation on it.
package suitability

import (
	"fmt"
	"math"
	"strings"
)

// Verdict is the outcome of evaluating one document.
type Verdict struct {
	Worthy     bool     `json:"worthy"`
	Confidence float64  `json:"confidence"` // 0 to 1, rounded to 2 decimals
	Reasons    []string `json:"reasons"`
}

// Signals exposes the raw sub-signals behind a verdict, for diagnostics.
type Signals struct {
	WordCount      int     `json:"word_count"`
	AcademicHits   int     `json:"academic_hits"`
	StructureHits  int     `json:"structure_hits"`
	LexicalDensity float64 `json:"lexical_density"`
}

// Evaluator computes suitability verdicts. The zero value is not usable;
// construct with NewEvaluator.
type Evaluator struct {
	weights    Weights
	thresholds Thresholds
}

// NewEvaluator returns an evaluator with the given tuning. Most callers want
// Default().
func NewEvaluator(w Weights, t Thresholds) *Evaluator {
	return &Evaluator{weights: w, thresholds: t}
}

// Default returns an evaluator with production tuning.
func Default() *Evaluator {
	return NewEvaluator(DefaultWeights(), DefaultThresholds())
}

// Evaluate scores text and returns a verdict. It never fails: empty or
// boilerplate input produces a zero-confidence negative verdict with a
// reason, everything else is scored.
func (e *Evaluator) Evaluate(text string) Verdict {
	v, _ := e.EvaluateSignals(text)
	return v
}

// EvaluateSignals is Evaluate plus the raw sub-signals.
func (e *Evaluator) EvaluateSignals(text string) (Verdict, Signals) {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		return Verdict{Confidence: 0, Reasons: []string{"empty input"}}, Signals{}
	}

	lower := strings.ToLower(cleaned)

	// The denylist takes priority over all scoring: administrative text must
	// never be scored as almost worthy.
	for _, phrase := range blockedPhrases {
		if strings.Contains(lower, phrase) {
			return Verdict{
				Confidence: 0,
				Reasons:    []string{fmt.Sprintf("contains boilerplate content: %q", phrase)},
			}, Signals{}
		}
	}

	words := strings.Fields(cleaned)
	wordCount := len(words)

	academicHits := countMatches(lower, academicTerms)
	structureHits := countMatches(lower, structureMarkers)

	contentWords := 0
	for _, w := range words {
		if !functionWords[strings.ToLower(w)] {
			contentWords++
		}
	}
	lexicalDensity := round2(float64(contentWords) / float64(wordCount))

	lengthScore := clamp01(float64(wordCount) / float64(e.thresholds.LengthTarget))
	academicScore := clamp01(float64(academicHits) / float64(e.thresholds.AcademicTarget))
	structureScore := clamp01(float64(structureHits) / float64(e.thresholds.StructureTarget))
	lexicalScore := clamp01(lexicalDensity)

	confidence := round2(
		e.weights.Academic*academicScore +
			e.weights.Lexical*lexicalScore +
			e.weights.Length*lengthScore +
			e.weights.Structure*structureScore)

	verdict := Verdict{
		Worthy:     confidence >= e.thresholds.Worthy,
		Confidence: confidence,
	}

	if !verdict.Worthy {
		if wordCount < 150 {
			verdict.Reasons = append(verdict.Reasons, "word count under 150")
		}
		if academicHits < 2 {
			verdict.Reasons = append(verdict.Reasons, "fewer than 2 academic-term hits")
		}
		if structureHits == 0 {
			verdict.Reasons = append(verdict.Reasons, "no structural markers")
		}
		if lexicalDensity < 0.4 {
			verdict.Reasons = append(verdict.Reasons, "lexical density under 0.4")
		}
	}

	return verdict, Signals{
		WordCount:      wordCount,
		AcademicHits:   academicHits,
		StructureHits:  structureHits,
		LexicalDensity: lexicalDensity,
	}
}

// countMatches counts how many terms occur in the lowercased text at least
// once. Repeats of the same term count once.
func countMatches(lower string, terms []string) int {
	hits := 0
	for _, term := range terms {
		if strings.Contains(lower, term) {
			hits++
		}
	}
	return hits
}

func clamp01(f float64) float64 {
	if f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
