package service

import (
	"fmt"
	"unicode/utf8"
)

// Per-task character budgets for the source text. Truncation is a designed
// lossy-compression policy, not a failure: the prompt silently carries the
// first maxLength characters plus the marker.
const (
	chatContextLimit       = 10000
	summaryContextLimit    = 15000
	structuredContextLimit = 8000

	truncationMarker = "..."
)

// truncateText returns at most maxLength characters of text, appending the
// truncation marker when anything was cut. The budget counts runes, never
// splitting a multi-byte sequence. Deterministic given identical inputs.
func truncateText(text string, maxLength int) string {
	if text == "" {
		return ""
	}
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}
	runes := 0
	for i := range text {
		if runes == maxLength {
			return text[:i] + truncationMarker
		}
		runes++
	}
	return text
}

func buildChatPrompt(sourceText, question string) string {
	truncated := truncateText(sourceText, chatContextLimit)

	return fmt.Sprintf(`You are a helpful learning assistant. Based on the following document, answer the user's question accurately and concisely.

Document:
%s

Question: %s

Answer:`, truncated, question)
}

func buildSummaryPrompt(sourceText string) string {
	truncated := truncateText(sourceText, summaryContextLimit)

	return fmt.Sprintf(`Provide a clear and concise summary of the following document in 200-300 words. Focus on the main ideas and key points.

Document:
%s

Summary:`, truncated)
}

func buildExplanationPrompt(sourceText, concept string) string {
	truncated := truncateText(sourceText, chatContextLimit)

	return fmt.Sprintf(`Based on the following document, provide a detailed and easy-to-understand explanation of the concept: %q

Document:
%s

Explain the concept of %q in detail:`, concept, truncated, concept)
}

// buildFlashcardPrompt mandates a JSON-array-only response. That is a
// contract with the model, not a guarantee it obeys it; the extractor
// tolerates surrounding prose.
func buildFlashcardPrompt(sourceText string, count int) string {
	truncated := truncateText(sourceText, structuredContextLimit)

	return fmt.Sprintf(`Generate exactly %d educational flashcards from the following document. Each flashcard should have a question and a detailed answer.

Return ONLY a valid JSON array with no additional text, explanations, or markdown formatting. Format:
[
  {"question": "Question text here", "answer": "Answer text here"},
  {"question": "Question text here", "answer": "Answer text here"}
]

Document:
%s

JSON array of flashcards:`, count, truncated)
}

func buildQuizPrompt(sourceText string, questionCount int) string {
	truncated := truncateText(sourceText, structuredContextLimit)

	return fmt.Sprintf(`Generate exactly %d multiple-choice quiz questions from the following document.

Return ONLY a valid JSON array with no additional text, explanations, or markdown formatting. Format:
[
  {
    "question": "Question text",
    "options": ["Option A", "Option B", "Option C", "Option D"],
    "correctAnswer": 0,
    "explanation": "Explanation of why this is correct"
  }
]

Requirements:
- Each question must have exactly 4 options
- correctAnswer must be a number (0-3) indicating the index of the correct option
- Include a brief explanation for each answer

Document:
%s

JSON array of quiz questions:`, questionCount, truncated)
}
