package mcq

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an educator creating multiple-choice questions from study material.

Rules:
- Generate questions strictly based on the provided text. Do not invent facts.
- Each question has exactly the requested number of answer options, of which exactly one is correct.
- Distractors should be plausible, not random.
- Number the questions and label the options A, B, C, ...
- After each question's options, state the correct answer on its own line as "Answer: <letter>".
- Match the requested difficulty.`

// buildUserMessage constructs the user message embedding the generation
// parameters and the full source text verbatim. The text is passed whole,
// with no chunking or truncation.
func buildUserMessage(text string, p Params) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Number of questions: %d\n", p.QuestionCount)
	fmt.Fprintf(&b, "Difficulty: %s\n", p.Difficulty)
	fmt.Fprintf(&b, "Options per question: %d\n", p.OptionCount)

	b.WriteString("\nText:\n")
	b.WriteString(text)

	return b.String()
}
