package quiz

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a quiz author for a study tool. You write clear,
unambiguous questions grounded strictly in the material you are given. You
reply with a single JSON array and nothing else: no prose, no markdown fences.`

// buildPrompt renders the generation request for one document at one
// difficulty tier. The reply contract mirrors the candidate schema that
// validation decodes.
func buildPrompt(content string, tier Tier) string {
	kinds := KindsForTier(tier)
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create between %d and %d quiz questions from the study material below.\n\n", MinQuestions, MaxQuestions)
	fmt.Fprintf(&b, "Difficulty: %s. Use only these question kinds: %s.\n\n", tier, strings.Join(names, ", "))
	b.WriteString(`Each question is a JSON object with these fields:
- "kind": one of the allowed question kinds
- "question": the question text
- "answer": the correct answer. A JSON boolean for true_false, a JSON string otherwise. For multiple_choice it must repeat one option verbatim.
- "options": exactly 4 distinct strings, multiple_choice only. Omit for other kinds.
- "difficulty": "easy", "medium" or "hard"
- "cognitive_level": one of "remember", "understand", "apply", "analyze", "evaluate", "create"
- "explanation": one or two sentences on why the answer is correct

Reply with the JSON array of question objects only.

Study material:
`)
	b.WriteString(content)
	return b.String()
}
