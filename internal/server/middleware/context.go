package middleware

import (
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/rabbitmq/amqp091-go"

	"github.com/geomap-asset/backend/internal/util"
	"github.com/geomap-asset/backend/pkg/ai"
	oai "github.com/geomap-asset/backend/pkg/ai/ollama"
	gai "github.com/geomap-asset/backend/pkg/ai/openai"
	"github.com/geomap-asset/backend/pkg/catalog"
	"github.com/geomap-asset/backend/pkg/logger"
)

type App struct {
	DBConn   *pgxpool.Pool
	Store    catalog.Store
	Queue    *amqp091.Channel
	S3       *s3.Client
	AiClient ai.GraphicAIClient
}

type AppContext struct {
	echo.Context
	App *App
}

// NewAIClient builds the configured AI adapter from the environment.
// AI_ADAPTER selects "ollama" or the OpenAI-compatible default.
func NewAIClient() ai.GraphicAIClient {
	adapter := util.GetEnv("AI_ADAPTER")

	switch adapter {
	case "ollama":
		client, err := oai.NewGraphicOllamaClient(oai.NewGraphicOllamaClientParams{
			EmbeddingModel:  util.GetEnv("AI_EMBED_MODEL"),
			ExtractionModel: util.GetEnv("AI_CHAT_EXTRACT_MODEL"),
			ImageModel:      util.GetEnv("AI_IMAGE_MODEL"),

			BaseURL: util.GetEnv("AI_CHAT_URL"),
			ApiKey:  util.GetEnv("AI_CHAT_KEY"),

			RequestTimeoutMin:     int64(util.GetEnvNumeric("AI_TIMEOUT_MIN", 10)),
			MaxConcurrentRequests: int64(util.GetEnvNumeric("AI_PARALLEL_REQ", 15)),
		})
		if err != nil {
			logger.Fatal("Failed to create Ollama client", "err", err)
		}
		return client
	default:
		return gai.NewGraphicOpenAIClient(gai.NewGraphicOpenAIClientParams{
			EmbeddingModel:  util.GetEnv("AI_EMBED_MODEL"),
			ExtractionModel: util.GetEnv("AI_CHAT_EXTRACT_MODEL"),
			ImageModel:      util.GetEnv("AI_IMAGE_MODEL"),

			EmbeddingURL: util.GetEnv("AI_EMBED_URL"),
			EmbeddingKey: util.GetEnv("AI_EMBED_KEY"),
			ChatURL:      util.GetEnv("AI_CHAT_URL"),
			ChatKey:      util.GetEnv("AI_CHAT_KEY"),
			ImageURL:     util.GetEnv("AI_IMAGE_URL"),
			ImageKey:     util.GetEnv("AI_IMAGE_KEY"),

			RequestTimeoutMin:     int64(util.GetEnvNumeric("AI_TIMEOUT_MIN", 5)),
			MaxConcurrentRequests: int64(util.GetEnvNumeric("AI_PARALLEL_REQ", 15)),
		})
	}
}

func AppContextMiddleware(
	db *pgxpool.Pool,
	store catalog.Store,
	queue *amqp091.Channel,
	s3 *s3.Client,
	aiClient ai.GraphicAIClient,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			app := &App{
				DBConn:   db,
				Store:    store,
				Queue:    queue,
				S3:       s3,
				AiClient: aiClient,
			}
			cc := &AppContext{c, app}
			return next(cc)
		}
	}
}
