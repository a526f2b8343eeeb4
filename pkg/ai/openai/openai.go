package openai

import (
	"sync"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"golang.org/x/sync/semaphore"

	"github.com/geomap-asset/backend/pkg/ai"
)

// GraphicOpenAIClient is an OpenAI-backed client for catalog enrichment.
// It manages separate clients for embeddings, chat/extraction, and vision
// tasks so each can point at a different endpoint.
//
// A GraphicOpenAIClient should be created using NewGraphicOpenAIClient.
type GraphicOpenAIClient struct {
	embeddingModel  string
	extractionModel string
	imageModel      string

	embeddingURL string
	embeddingKey string
	chatURL      string
	chatKey      string
	imageURL     string
	imageKey     string

	timeoutMin int64

	chatLock      *semaphore.Weighted
	embeddingLock *semaphore.Weighted
	imageLock     *semaphore.Weighted

	metricsLock sync.Mutex
	metrics     ai.ModelMetrics

	ChatClient      *openai.Client
	EmbeddingClient *openai.Client
	ImageClient     *openai.Client
}

// NewGraphicOpenAIClientParams defines the configuration parameters for
// creating a new GraphicOpenAIClient.
//
// EmbeddingModel specifies the model used for embeddings.
// ExtractionModel specifies the model used for structured extraction.
// ImageModel specifies the vision model used for figure notes.
// The URL/Key pairs configure the respective API endpoints; an empty URL
// means the default OpenAI endpoint.
type NewGraphicOpenAIClientParams struct {
	EmbeddingModel  string
	ExtractionModel string
	ImageModel      string

	EmbeddingURL string
	EmbeddingKey string
	ChatURL      string
	ChatKey      string
	ImageURL     string
	ImageKey     string

	RequestTimeoutMin     int64
	MaxConcurrentRequests int64
}

// NewGraphicOpenAIClient creates and returns a new GraphicOpenAIClient
// configured with the provided parameters.
func NewGraphicOpenAIClient(
	params NewGraphicOpenAIClientParams,
) *GraphicOpenAIClient {
	chatClient := newOpenaiClient(params.ChatURL, params.ChatKey)
	embedClient := newOpenaiClient(params.EmbeddingURL, params.EmbeddingKey)
	imageClient := newOpenaiClient(params.ImageURL, params.ImageKey)

	maxConcurrent := params.MaxConcurrentRequests
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	timeoutMin := params.RequestTimeoutMin
	if timeoutMin <= 0 {
		timeoutMin = 5
	}

	return &GraphicOpenAIClient{
		embeddingModel:  params.EmbeddingModel,
		extractionModel: params.ExtractionModel,
		imageModel:      params.ImageModel,

		chatURL:      params.ChatURL,
		chatKey:      params.ChatKey,
		embeddingURL: params.EmbeddingURL,
		embeddingKey: params.EmbeddingKey,
		imageURL:     params.ImageURL,
		imageKey:     params.ImageKey,

		timeoutMin: timeoutMin,

		chatLock:      semaphore.NewWeighted(maxConcurrent),
		embeddingLock: semaphore.NewWeighted(maxConcurrent),
		imageLock:     semaphore.NewWeighted(maxConcurrent),

		metricsLock: sync.Mutex{},
		metrics: ai.ModelMetrics{
			InputTokens:  0,
			OutputTokens: 0,
			TotalTokens:  0,
			DurationMs:   0,
		},

		ChatClient:      chatClient,
		EmbeddingClient: embedClient,
		ImageClient:     imageClient,
	}
}

func newOpenaiClient(
	baseURL string,
	apiKey string,
) *openai.Client {
	if apiKey == "" {
		return nil
	}
	options := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}

	if baseURL != "" {
		options = append(options, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(options...)

	return &client
}
