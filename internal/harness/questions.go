package harness

// DefaultQuestions is the fixed ordered list of application-style questions
// asked about every resume. The order is meaningful: it drives the
// numbering in the output and in the report.
var DefaultQuestions = []string{
	"What is your current job title and company?",
	"How many years of experience do you have in your field?",
	"What are your top 3 technical skills?",
	"What programming languages are you proficient in?",
	"Describe your most recent work experience and key responsibilities.",
	"What is your highest level of education and field of study?",
	"Are you authorized to work in Germany without sponsorship?",
	"What is your preferred salary range?",
	"What cloud platforms have you worked with?",
	"Do you have experience with DevOps tools and practices?",
}
