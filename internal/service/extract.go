package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"study-byte/internal/domain"
)

// The model is not contractually bound to emit pure JSON: responses routinely
// arrive wrapped in prose or markdown fences. extractArraySpan scrapes the
// widest bracketed span (first '[' to last ']') and leaves parsing to the
// caller.
func extractArraySpan(raw string) (string, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end == -1 || end < start {
		return "", domain.NewExtractionError("no JSON array found in model output", -1, nil)
	}
	return raw[start : end+1], nil
}

// extractElements parses the span into raw array elements, distinguishing
// malformed JSON from a well-formed non-array value.
func extractElements(raw string) ([]json.RawMessage, error) {
	span, err := extractArraySpan(raw)
	if err != nil {
		return nil, err
	}

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(span), &elements); err != nil {
		var probe interface{}
		if json.Unmarshal([]byte(span), &probe) == nil {
			return nil, domain.NewExtractionError("model output is not a JSON array", -1, err)
		}
		return nil, domain.NewExtractionError("malformed JSON in model output", -1, err)
	}
	return elements, nil
}

// extractFlashcards parses raw model text into at most count flashcards.
// Validation is lenient: missing or mistyped fields coerce to empty strings
// rather than failing the extraction, and fewer than count cards is not an
// error. Downstream persistence may still reject empties.
func extractFlashcards(raw string, count int) ([]domain.FlashcardContent, error) {
	elements, err := extractElements(raw)
	if err != nil {
		return nil, err
	}

	if len(elements) > count {
		elements = elements[:count]
	}

	cards := make([]domain.FlashcardContent, 0, len(elements))
	for _, element := range elements {
		var card domain.FlashcardContent
		// A non-object element degrades to an empty card, same as a missing
		// field.
		_ = json.Unmarshal(element, &card)
		card.Question = strings.TrimSpace(card.Question)
		card.Answer = strings.TrimSpace(card.Answer)
		cards = append(cards, card)
	}
	return cards, nil
}

// extractQuizQuestions parses raw model text into at most questionCount quiz
// questions. Validation is strict and all-or-nothing: any element with a
// malformed shape, an option count other than 4, or a non-numeric /
// out-of-range correctAnswer fails the whole extraction, naming the offending
// index.
func extractQuizQuestions(raw string, questionCount int) ([]domain.QuizQuestion, error) {
	elements, err := extractElements(raw)
	if err != nil {
		return nil, err
	}

	if len(elements) > questionCount {
		elements = elements[:questionCount]
	}

	questions := make([]domain.QuizQuestion, 0, len(elements))
	for i, element := range elements {
		var parsed struct {
			Question      string   `json:"question"`
			Options       []string `json:"options"`
			CorrectAnswer *int     `json:"correctAnswer"`
			Explanation   string   `json:"explanation"`
		}
		if err := json.Unmarshal(element, &parsed); err != nil {
			return nil, domain.NewExtractionError(
				fmt.Sprintf("invalid question format at index %d", i), i, err)
		}
		if parsed.Question == "" || len(parsed.Options) != domain.QuizOptionCount {
			return nil, domain.NewExtractionError(
				fmt.Sprintf("invalid question format at index %d", i), i, nil)
		}
		if parsed.CorrectAnswer == nil || *parsed.CorrectAnswer < 0 || *parsed.CorrectAnswer >= domain.QuizOptionCount {
			return nil, domain.NewExtractionError(
				fmt.Sprintf("invalid correct answer at index %d", i), i, nil)
		}

		explanation := parsed.Explanation
		if explanation == "" {
			explanation = domain.DefaultExplanation
		}

		questions = append(questions, domain.QuizQuestion{
			Question:      parsed.Question,
			Options:       parsed.Options,
			CorrectAnswer: *parsed.CorrectAnswer,
			Explanation:   explanation,
		})
	}
	return questions, nil
}
