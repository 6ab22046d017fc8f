package gemini

// SummaryPromptPrefix introduces note content in a summarization request.
const SummaryPromptPrefix = "Please provide a concise, bulleted summary of these lecture notes:\n\n"

// BuildSummaryPrompt builds the prompt for summarizing note content.
func BuildSummaryPrompt(content string) string {
	return SummaryPromptPrefix + content
}

// BuildAdvicePrompt builds the productivity advice prompt around a serialized workload snapshot.
func BuildAdvicePrompt(workloadJSON string) string {
	return "Based on this student workload data: " + workloadJSON +
		". Provide 3 personalized, actionable productivity tips. Keep it short and motivating."
}
