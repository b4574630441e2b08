package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"

	"study-byte/internal/domain"
	"study-byte/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

const (
	// One generation call may legitimately take minutes on CPU-only hosts.
	generateTimeout = 120 * time.Second
	// The catalog probe must stay cheap.
	catalogTimeout = 5 * time.Second
)

// OllamaClient implements domain.TextGenerator and domain.ModelCatalog
// against a local Ollama endpoint. Generation goes through the LangchainGo
// ollama client; the model catalog uses /api/tags directly because
// LangchainGo exposes no listing operation.
type OllamaClient struct {
	serverURL  string
	model      string
	llm        *ollama.LLM
	httpClient *http.Client
}

// NewOllamaClient creates a client for the given endpoint and model.
func NewOllamaClient(serverURL, model string) (*OllamaClient, error) {
	if serverURL == "" {
		return nil, fmt.Errorf("ollama server URL cannot be empty")
	}
	if model == "" {
		return nil, fmt.Errorf("ollama model name cannot be empty")
	}

	httpClient := &http.Client{
		Timeout: generateTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	llmClient, err := ollama.New(
		ollama.WithServerURL(serverURL),
		ollama.WithModel(model),
		ollama.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama client: %w", err)
	}

	return &OllamaClient{
		serverURL:  strings.TrimRight(serverURL, "/"),
		model:      model,
		llm:        llmClient,
		httpClient: httpClient,
	}, nil
}

// Model returns the configured model name.
func (c *OllamaClient) Model() string {
	return c.model
}

// Generate sends one prompt and returns the raw generated text. The call is
// one-shot: no retries, hard 120s timeout, failures classified into the
// domain error taxonomy.
func (c *OllamaClient) Generate(ctx context.Context, prompt string, opts domain.GenerationOptions) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	callOpts := []llms.CallOption{}
	if opts.Temperature > 0 {
		callOpts = append(callOpts, llms.WithTemperature(opts.Temperature))
	}
	if opts.TopP > 0 {
		callOpts = append(callOpts, llms.WithTopP(opts.TopP))
	}
	if opts.MaxTokens > 0 {
		callOpts = append(callOpts, llms.WithMaxTokens(opts.MaxTokens))
	}

	logger.Get().Debug("Calling Ollama",
		zap.String("server_url", c.serverURL),
		zap.String("model", c.model),
		zap.Float64("temperature", opts.Temperature),
		zap.Int("max_tokens", opts.MaxTokens),
	)

	response, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt, callOpts...)
	if err != nil {
		classified := c.classifyGenerateError(err)
		logger.Get().Error("Ollama generation failed",
			zap.String("model", c.model),
			zap.Error(err),
		)
		return "", classified
	}
	return response, nil
}

// classifyGenerateError maps transport failures onto the error taxonomy:
// connection refused means the endpoint process is not running, a "not found"
// response means the model is not pulled, everything else is a generic
// unavailability.
func (c *OllamaClient) classifyGenerateError(err error) *domain.DomainError {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return domain.NewEndpointUnavailableError(err)
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return domain.NewEndpointUnavailableError(err)
	}

	// Ollama answers a generate request for an absent model with a 404 whose
	// body ends up in the error message.
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "not found") || strings.Contains(msg, "404") {
		return domain.NewModelNotFoundError(c.model, err)
	}

	return domain.NewEndpointUnavailableError(err)
}

// tagsResponse mirrors the /api/tags payload.
type tagsResponse struct {
	Models []struct {
		Name       string    `json:"name"`
		Size       int64     `json:"size"`
		ModifiedAt time.Time `json:"modified_at"`
	} `json:"models"`
}

// ListModels queries the endpoint's model catalog. It never triggers text
// generation and enforces its own short timeout.
func (c *OllamaClient) ListModels(ctx context.Context) ([]domain.ModelInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, catalogTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.serverURL+"/api/tags", nil)
	if err != nil {
		return nil, domain.NewInternalError("failed to build model list request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewEndpointUnavailableError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewEndpointUnavailableError(
			fmt.Errorf("model list returned status %d", resp.StatusCode))
	}

	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return nil, domain.NewEndpointUnavailableError(err)
	}

	models := make([]domain.ModelInfo, 0, len(tags.Models))
	for _, m := range tags.Models {
		models = append(models, domain.ModelInfo{
			Name:       m.Name,
			Size:       m.Size,
			ModifiedAt: m.ModifiedAt,
		})
	}
	return models, nil
}

// Static assertions
var (
	_ domain.TextGenerator = (*OllamaClient)(nil)
	_ domain.ModelCatalog  = (*OllamaClient)(nil)
)
