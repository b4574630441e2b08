package service

import (
	"context"
	"strings"

	"study-byte/internal/domain"
	"study-byte/internal/logger"

	"go.uber.org/zap"
)

// Count limits for structured generation requests.
const (
	MaxFlashcardCount    = 20
	MaxQuizQuestionCount = 15
)

// Per-task sampling parameters. Temperature rises with the creative latitude
// of the task; structured tasks get a larger completion budget.
var (
	chatOptions        = domain.GenerationOptions{Temperature: 0.7, TopP: 0.9, MaxTokens: 2000}
	summaryOptions     = domain.GenerationOptions{Temperature: 0.5, TopP: 0.9, MaxTokens: 500}
	explanationOptions = domain.GenerationOptions{Temperature: 0.6, TopP: 0.9, MaxTokens: 2000}
	flashcardOptions   = domain.GenerationOptions{Temperature: 0.7, TopP: 0.9, MaxTokens: 3000}
	quizOptions        = domain.GenerationOptions{Temperature: 0.8, TopP: 0.9, MaxTokens: 4000}
)

// GenerationService turns source text into chat answers, summaries,
// explanations and structured study material. Each operation is one prompt →
// one inference call → (for structured tasks) one extraction; failures are
// never retried here.
type GenerationService interface {
	Chat(ctx context.Context, sourceText, question string) (string, error)
	GenerateSummary(ctx context.Context, sourceText string) (string, error)
	ExplainConcept(ctx context.Context, sourceText, concept string) (string, error)
	GenerateFlashcards(ctx context.Context, sourceText string, count int) ([]domain.FlashcardContent, error)
	GenerateQuiz(ctx context.Context, sourceText string, questionCount int) ([]domain.QuizQuestion, error)
	CheckHealth(ctx context.Context) *domain.HealthStatus
	ListModels(ctx context.Context) ([]domain.ModelInfo, error)
}

type generationService struct {
	generator domain.TextGenerator
	catalog   domain.ModelCatalog
	modelName string
}

// NewGenerationService creates a GenerationService over the given ports.
// modelName is the configured model identifier the health check reports.
func NewGenerationService(generator domain.TextGenerator, catalog domain.ModelCatalog, modelName string) GenerationService {
	return &generationService{
		generator: generator,
		catalog:   catalog,
		modelName: modelName,
	}
}

func (s *generationService) Chat(ctx context.Context, sourceText, question string) (string, error) {
	if strings.TrimSpace(sourceText) == "" {
		return "", domain.NewInvalidInputError("document text is required")
	}
	if strings.TrimSpace(question) == "" {
		return "", domain.NewInvalidInputError("question is required")
	}

	prompt := buildChatPrompt(sourceText, question)
	return s.generator.Generate(ctx, prompt, chatOptions)
}

func (s *generationService) GenerateSummary(ctx context.Context, sourceText string) (string, error) {
	if strings.TrimSpace(sourceText) == "" {
		return "", domain.NewInvalidInputError("document text is required")
	}

	prompt := buildSummaryPrompt(sourceText)
	return s.generator.Generate(ctx, prompt, summaryOptions)
}

func (s *generationService) ExplainConcept(ctx context.Context, sourceText, concept string) (string, error) {
	if strings.TrimSpace(sourceText) == "" {
		return "", domain.NewInvalidInputError("document text is required")
	}
	if strings.TrimSpace(concept) == "" {
		return "", domain.NewInvalidInputError("concept is required")
	}

	prompt := buildExplanationPrompt(sourceText, concept)
	return s.generator.Generate(ctx, prompt, explanationOptions)
}

func (s *generationService) GenerateFlashcards(ctx context.Context, sourceText string, count int) ([]domain.FlashcardContent, error) {
	if strings.TrimSpace(sourceText) == "" {
		return nil, domain.NewInvalidInputError("document text is required")
	}
	if count < 1 || count > MaxFlashcardCount {
		return nil, domain.NewInvalidInputError("flashcard count must be between 1 and 20")
	}

	prompt := buildFlashcardPrompt(sourceText, count)
	raw, err := s.generator.Generate(ctx, prompt, flashcardOptions)
	if err != nil {
		return nil, err
	}

	cards, err := extractFlashcards(raw, count)
	if err != nil {
		// Full detail stays in the log; the caller gets the generic
		// retry-suggesting message without raw model output.
		logger.Get().Error("Flashcard extraction failed",
			zap.Error(err),
			zap.String("raw_prefix", rawPrefix(raw)),
		)
		return nil, domain.NewGenerationFailedError("flashcards", err)
	}
	return cards, nil
}

func (s *generationService) GenerateQuiz(ctx context.Context, sourceText string, questionCount int) ([]domain.QuizQuestion, error) {
	if strings.TrimSpace(sourceText) == "" {
		return nil, domain.NewInvalidInputError("document text is required")
	}
	if questionCount < 1 || questionCount > MaxQuizQuestionCount {
		return nil, domain.NewInvalidInputError("question count must be between 1 and 15")
	}

	prompt := buildQuizPrompt(sourceText, questionCount)
	raw, err := s.generator.Generate(ctx, prompt, quizOptions)
	if err != nil {
		return nil, err
	}

	questions, err := extractQuizQuestions(raw, questionCount)
	if err != nil {
		logger.Get().Error("Quiz extraction failed",
			zap.Error(err),
			zap.String("raw_prefix", rawPrefix(raw)),
		)
		return nil, domain.NewGenerationFailedError("quiz", err)
	}
	return questions, nil
}

// CheckHealth probes the endpoint's model catalog. It reports error when the
// endpoint is unreachable, warning when the configured model's base name is
// not among the listed models, and ok otherwise. It never triggers text
// generation.
func (s *generationService) CheckHealth(ctx context.Context) *domain.HealthStatus {
	models, err := s.catalog.ListModels(ctx)
	if err != nil {
		logger.Get().Warn("AI health check failed", zap.Error(err))
		return &domain.HealthStatus{
			Status:  domain.HealthError,
			Message: "Ollama is not running. Start it with: ollama serve",
		}
	}

	baseName := strings.SplitN(s.modelName, ":", 2)[0]
	for _, m := range models {
		if strings.Contains(m.Name, baseName) {
			return &domain.HealthStatus{
				Status:  domain.HealthOK,
				Message: "Ollama is running",
				Model:   s.modelName,
			}
		}
	}

	return &domain.HealthStatus{
		Status:  domain.HealthWarning,
		Message: "Model \"" + s.modelName + "\" not found. Pull it with: ollama pull " + s.modelName,
		Model:   s.modelName,
	}
}

func (s *generationService) ListModels(ctx context.Context) ([]domain.ModelInfo, error) {
	return s.catalog.ListModels(ctx)
}

func rawPrefix(raw string) string {
	if len(raw) > 200 {
		return raw[:200]
	}
	return raw
}
