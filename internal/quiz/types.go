// Package quiz turns extracted document text into a validated question set
// via the completion provider. Replies are free-form text; this package owns
// locating the JSON array inside them, parsing it, and validating every
// candidate question with a repair-before-reject policy.
package quiz

import "studyforge/internal/answers"

// Kind is the question format.
type Kind string

const (
	KindMultipleChoice Kind = "multiple_choice"
	KindTrueFalse      Kind = "true_false"
	KindFillBlank      Kind = "fill_blank"
	KindShortAnswer    Kind = "short_answer"
)

// knownKinds is the closed set of valid kinds.
var knownKinds = map[Kind]bool{
	KindMultipleChoice: true,
	KindTrueFalse:      true,
	KindFillBlank:      true,
	KindShortAnswer:    true,
}

// Tier is the difficulty level of a question or a generation request.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

var knownTiers = map[Tier]bool{
	TierEasy:   true,
	TierMedium: true,
	TierHard:   true,
}

// CognitiveLevel is the Bloom's-taxonomy level a question targets.
type CognitiveLevel string

const (
	LevelRemember   CognitiveLevel = "remember"
	LevelUnderstand CognitiveLevel = "understand"
	LevelApply      CognitiveLevel = "apply"
	LevelAnalyze    CognitiveLevel = "analyze"
	LevelEvaluate   CognitiveLevel = "evaluate"
	LevelCreate     CognitiveLevel = "create"
)

var knownLevels = map[CognitiveLevel]bool{
	LevelRemember:   true,
	LevelUnderstand: true,
	LevelApply:      true,
	LevelAnalyze:    true,
	LevelEvaluate:   true,
	LevelCreate:     true,
}

// ChoiceCount is the required number of options on a multiple choice question.
const ChoiceCount = 4

// Question is one validated quiz question. Immutable once generated: every
// Question returned by a Generator has passed schema validation, so callers
// never see a partially valid one.
type Question struct {
	Kind Kind `json:"kind"`

	// Prompt is the question text shown to the learner. Never empty.
	Prompt string `json:"question"`

	// Answer is the canonical correct answer: boolean for true_false,
	// text otherwise. For multiple_choice it equals one of Choices
	// verbatim.
	Answer answers.Value `json:"answer"`

	// Choices holds exactly 4 unique options for multiple_choice, nil for
	// every other kind.
	Choices []string `json:"options,omitempty"`

	Tier      Tier           `json:"difficulty"`
	Cognitive CognitiveLevel `json:"cognitive_level"`

	// Explanation is optional supporting text shown after answering.
	Explanation string `json:"explanation,omitempty"`
}

// KindsForTier maps a requested difficulty to the question kinds the
// generation prompt may use. Easier tiers stay with recognition formats;
// harder tiers bring in recall formats.
func KindsForTier(tier Tier) []Kind {
	switch tier {
	case TierEasy:
		return []Kind{KindMultipleChoice, KindTrueFalse}
	case TierHard:
		return []Kind{KindMultipleChoice, KindFillBlank, KindShortAnswer}
	default:
		return []Kind{KindMultipleChoice, KindTrueFalse, KindFillBlank}
	}
}
