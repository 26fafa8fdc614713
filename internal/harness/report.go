package harness

import (
	"encoding/json"
	"fmt"
	"os"
)

// TestInfo holds the run metadata recorded at the top of a report.
type TestInfo struct {
	ResumeFile     string `json:"resume_file"`
	Model          string `json:"model"`
	TotalQuestions int    `json:"total_questions"`
}

// AnswerRecord pairs a question with the answer (or sentinel) recorded for it.
type AnswerRecord struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Report is the optional JSON artifact summarizing one run.
type Report struct {
	TestInfo TestInfo       `json:"test_info"`
	Results  []AnswerRecord `json:"results"`
}

// Save writes the report as pretty-printed JSON. HTML escaping is off so
// non-ASCII answer text is preserved verbatim.
func (r *Report) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file %s: %w", path, err)
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(r); err != nil {
		f.Close()
		return fmt.Errorf("encoding report: %w", err)
	}

	return f.Close()
}
