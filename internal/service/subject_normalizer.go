package service

import "strings"

// SubstringRule is one ordered fallback applied when the exact-match
// table misses: the first rule whose fragment occurs in the label wins.
type SubstringRule struct {
	Contains string
	Code     string
}

// SubjectTable holds the mapping data for a SubjectNormalizer. Injected at
// construction so tests can swap in alternate vocabularies.
type SubjectTable struct {
	Exact     map[string]string
	Fallbacks []SubstringRule
}

// DefaultSubjectTable returns the fixed production vocabulary of subject
// codes.
func DefaultSubjectTable() SubjectTable {
	return SubjectTable{
		Exact: map[string]string{
			"Fundamental Programming":     "fp",
			"Data Structure":              "ds",
			"Data Structures":             "ds",
			"Database System":             "db",
			"DataBase":                    "db",
			"Computer Network":            "cn",
			"Software Engineering":        "se",
			"Operating System":            "os",
			"Object Oriented Programming": "oop",
			"OOP":                         "oop",
			"Discrete Structure":          "disc",
			"Information Security":        "infosec",
			"Infosec":                     "infosec",
		},
		Fallbacks: []SubstringRule{
			{Contains: "Network", Code: "cn"},
			{Contains: "Database", Code: "db"},
			{Contains: "Data Structure", Code: "ds"},
			{Contains: "Security", Code: "infosec"},
			{Contains: "Discrete", Code: "disc"},
		},
	}
}

// SubjectNormalizer maps free-text subject labels to short subject codes.
type SubjectNormalizer interface {
	// Normalize returns the subject code for a raw label, or ok=false when
	// the label cannot be mapped. Unmapped labels are the caller's problem;
	// ingestion drops such rows.
	Normalize(raw string) (code string, ok bool)
}

type subjectNormalizer struct {
	table SubjectTable
}

func NewSubjectNormalizer(table SubjectTable) SubjectNormalizer {
	return &subjectNormalizer{table: table}
}

func (n *subjectNormalizer) Normalize(raw string) (string, bool) {
	label := strings.TrimSpace(raw)
	if code, ok := n.table.Exact[label]; ok {
		return code, true
	}
	for _, rule := range n.table.Fallbacks {
		if strings.Contains(label, rule.Contains) {
			return rule.Code, true
		}
	}
	return "", false
}
