package dto

// ChatRequest is the body of POST /api/ai/chat/:documentId
type ChatRequest struct {
	Question string `json:"question"`
}

// ChatResponse carries the generated answer back with the question asked.
type ChatResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Cached   bool   `json:"cached"`
}

// SummaryResponse carries a document summary; Cached reports whether it was
// served from the stored copy instead of being generated.
type SummaryResponse struct {
	Summary string `json:"summary"`
	Cached  bool   `json:"cached"`
}

// ExplainRequest is the body of POST /api/ai/explain/:documentId
type ExplainRequest struct {
	Concept string `json:"concept"`
}

// ExplainResponse carries the generated explanation.
type ExplainResponse struct {
	Concept     string `json:"concept"`
	Explanation string `json:"explanation"`
	Cached      bool   `json:"cached"`
}

// GenerateFlashcardsRequest is the body of POST /api/ai/flashcards/:documentId
type GenerateFlashcardsRequest struct {
	Count int `json:"count"`
}

// FlashcardContent is one generated card before persistence.
type FlashcardContent struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GenerateFlashcardsResponse returns the generated cards.
type GenerateFlashcardsResponse struct {
	Flashcards []FlashcardContent `json:"flashcards"`
	Count      int                `json:"count"`
}

// GenerateQuizRequest is the body of POST /api/ai/quiz/:documentId
type GenerateQuizRequest struct {
	QuestionCount int `json:"questionCount"`
}

// QuizQuestionContent is one generated question before persistence.
type QuizQuestionContent struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// GenerateQuizResponse returns the generated questions.
type GenerateQuizResponse struct {
	Questions []QuizQuestionContent `json:"questions"`
	Count     int                   `json:"count"`
}

// HealthResponse reports the inference endpoint's availability.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Model   string `json:"model,omitempty"`
}

// ModelInfo describes one model in the endpoint catalog.
type ModelInfo struct {
	Name string `json:"name"`
	Size int64  `json:"size,omitempty"`
}

// ModelsResponse lists the endpoint's available models.
type ModelsResponse struct {
	Models []ModelInfo `json:"models"`
}
