package suitability

// blockedPhrases is administrative/boilerplate language that disqualifies a
// document outright. Matching any of these short-circuits scoring: submission
// instructions must never come out "almost worthy".
var blockedPhrases = []string{
	"assignment brief",
	"assessment criteria",
	"marking rubric",
	"due date",
	"turnitin",
	"canvas",
	"moodle",
	"student id",
	"submission portal",
	"how to submit",
	"plagiarism",
	"file naming convention",
	"this assignment",
	"feedback will be provided",
	"instructions",
	"lorem ipsum",
	"contact your instructor",
	"page is intentionally left blank",
}

// academicTerms is cross-disciplinary research vocabulary. Hits count toward
// the academic sub-score.
var academicTerms = []string{
	"hypothesis",
	"methodology",
	"literature review",
	"framework",
	"empirical",
	"quantitative",
	"qualitative",
	"findings",
	"dataset",
	"case study",
	"argument",
	"premise",
	"theoretical",
	"variable",
	"analysis",
	"evidence",
	"discussion",
	"results",
	"correlation",
	"conclusion",
	"citation",
	"construct",
	"conceptual",
	"data",
	"inference",
	"observation",
}

// structureMarkers is section-header vocabulary typical of structured
// academic writing.
var structureMarkers = []string{
	"abstract",
	"introduction",
	"methodology",
	"results",
	"discussion",
	"references",
	"conclusion",
}

// functionWords is the closed-class word set excluded from the lexical
// density numerator.
var functionWords = map[string]bool{
	"the": true, "and": true, "or": true, "but": true,
	"if": true, "then": true, "a": true, "an": true,
	"in": true, "on": true, "to": true, "of": true,
	"with": true, "is": true, "was": true, "be": true,
}
