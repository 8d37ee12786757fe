package openai

import "github.com/tmc/langchaingo/prompts"

const answerPromptTemplate = `You are an assistant answering questions about a single reference document.
Use only the context passages below to answer the question. If the context does
not contain the answer, say so instead of guessing.

Context:
{{.context}}

Question: {{.question}}

Answer:`

// answerPrompt renders the fixed answer-chain template. The passages are
// joined with blank lines before substitution; the model output is returned
// to the caller unmodified.
var answerPrompt = prompts.NewPromptTemplate(answerPromptTemplate, []string{"context", "question"})
