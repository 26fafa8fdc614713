// Package harness drives one resume question-answering run: parse the
// resume, gate on service availability, ask the fixed questions in order
// and optionally persist a report.
package harness

import (
	"context"
	"fmt"

	"github.com/spigell/resume-qa/internal/ai"
	"github.com/spigell/resume-qa/internal/resume"

	"go.uber.org/zap"
)

// Harness owns the question list and the provider for one run.
type Harness struct {
	answerer  ai.Answerer
	questions []string
	logger    *zap.Logger
}

// New creates a harness. An empty question list falls back to
// DefaultQuestions.
func New(answerer ai.Answerer, questions []string, logger *zap.Logger) *Harness {
	if len(questions) == 0 {
		questions = DefaultQuestions
	}

	return &Harness{
		answerer:  answerer,
		questions: questions,
		logger:    logger,
	}
}

// Run executes one full pass. A parse failure is returned as an error. An
// unavailable service short-circuits the run cleanly: guidance is logged,
// no report is written even when requested, and nil is returned. Per-question
// failures never stop the loop; they are recorded as sentinel answer text.
func (h *Harness) Run(ctx context.Context, resumePath, outputPath string) error {
	h.logger.Info("starting resume q&a run",
		zap.String("resume", resumePath),
		zap.String("model", h.answerer.Model()),
	)

	resumeText, err := resume.Parse(resumePath)
	if err != nil {
		return fmt.Errorf("parsing resume: %w", err)
	}

	h.logger.Info("parsed resume", zap.Int("characters", len(resumeText)))

	if !h.answerer.Available(ctx) {
		h.logger.Warn("inference service is not available",
			zap.String("hint", "make sure the service is running: 'ollama serve'"),
			zap.String("model_hint", fmt.Sprintf("make sure the model is installed: 'ollama pull %s'", h.answerer.Model())),
		)
		return nil
	}

	h.logger.Info("inference service is available")

	records := make([]AnswerRecord, 0, len(h.questions))
	for i, question := range h.questions {
		result := h.answerer.Answer(ctx, resumeText, question)
		answer := FormatAnswer(result)

		h.logger.Info("question answered",
			zap.Int("index", i+1),
			zap.Int("total", len(h.questions)),
			zap.String("question", question),
			zap.String("answer", answer),
		)

		records = append(records, AnswerRecord{Question: question, Answer: answer})
	}

	if outputPath != "" {
		report := &Report{
			TestInfo: TestInfo{
				ResumeFile:     resumePath,
				Model:          h.answerer.Model(),
				TotalQuestions: len(records),
			},
			Results: records,
		}

		if err := report.Save(outputPath); err != nil {
			return fmt.Errorf("saving report: %w", err)
		}

		h.logger.Info("report saved", zap.String("filename", outputPath))
	}

	h.logger.Info("run completed successfully", zap.Int("questions", len(records)))

	return nil
}

// FormatAnswer renders a provider result as display text. Failed results
// become human-readable sentinel strings recorded in place of answers, so
// a single bad question never aborts the remaining ones.
func FormatAnswer(result *ai.Result) string {
	if result.OK() {
		return result.Answer
	}

	if result == nil || result.Failure == nil {
		return "ERROR: no result"
	}

	failure := result.Failure
	switch failure.Kind {
	case ai.FailureUnreachable:
		return "ERROR: inference service is not available. Please ensure the service is running."
	case ai.FailureHTTP:
		return fmt.Sprintf("ERROR: HTTP %d - %s", failure.Status, failure.Body)
	case ai.FailureTransport:
		return fmt.Sprintf("ERROR: Request failed - %v", failure.Cause)
	case ai.FailureEmpty:
		return "No response received"
	default:
		return fmt.Sprintf("ERROR: unclassified failure (kind %d)", failure.Kind)
	}
}
