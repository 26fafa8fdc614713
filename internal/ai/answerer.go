// Package ai defines the interface between the harness and inference
// providers, together with a classified result type. Providers never return
// an error from Answer: every failure is encoded in the Result so a single
// bad question cannot abort the remaining ones.
package ai

import (
	"context"
	"fmt"
)

// FailureKind classifies why an answer could not be produced.
type FailureKind int

const (
	// FailureUnreachable means the availability probe failed before the
	// question was submitted.
	FailureUnreachable FailureKind = iota
	// FailureHTTP means the service answered with a non-200 status.
	FailureHTTP
	// FailureTransport means the request never completed.
	FailureTransport
	// FailureEmpty means the service answered 200 but carried no response text.
	FailureEmpty
)

// Failure carries the classified reason an answer is missing.
type Failure struct {
	Kind   FailureKind
	Status int
	Body   string
	Cause  error
}

// Result holds either a generated answer or a classified failure.
type Result struct {
	Answer  string
	Failure *Failure
}

// OK reports whether the result carries a usable answer.
func (r *Result) OK() bool {
	return r != nil && r.Failure == nil
}

// Answerer is implemented by inference providers.
type Answerer interface {
	// Available probes the provider and reports whether it can serve requests.
	Available(ctx context.Context) bool
	// Answer submits the resume text and question. All failure paths are
	// reported through the Result, never raised.
	Answer(ctx context.Context, resumeText, question string) *Result
	// Model returns the model identifier in use.
	Model() string
}

// Prompt builds the fixed template submitted to every provider.
func Prompt(resumeText, question string) string {
	return fmt.Sprintf(`Based on the following resume information, please answer the question accurately and concisely:

RESUME:
%s

QUESTION: %s

ANSWER:`, resumeText, question)
}
