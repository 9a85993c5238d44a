package notes

import "studyforge/internal/llm"

// NotesSchema defines the JSON schema for study-note generation.
var NotesSchema = &llm.Schema{
	Name:        "study-notes",
	Description: "Structured study notes distilled from a document",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "3-5 sentence overview of the material",
			},
			"key_concepts": map[string]any{
				"type":        "array",
				"description": "The concepts a learner must retain, one short phrase each",
				"items":       map[string]any{"type": "string"},
			},
			"visual_suggestions": map[string]any{
				"type":        "array",
				"description": "Diagrams or charts that would aid understanding",
				"items":       map[string]any{"type": "string"},
			},
			"notable_insights": map[string]any{
				"type":        "array",
				"description": "Non-obvious takeaways or connections in the material",
				"items":       map[string]any{"type": "string"},
			},
		},
		"required":             []any{"summary", "key_concepts", "visual_suggestions", "notable_insights"},
		"additionalProperties": false,
	},
}
