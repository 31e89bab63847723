package routers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	redis_fiber "github.com/gofiber/storage/redis"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/nuwan-labs/project-buddy/internal/config"
	analysis_handlers "github.com/nuwan-labs/project-buddy/internal/handlers/analysis"
	"github.com/nuwan-labs/project-buddy/internal/i18n"
	"github.com/nuwan-labs/project-buddy/internal/notify"
	"github.com/nuwan-labs/project-buddy/internal/ollama"
)

func AnalysisRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, cfg *config.AppConfig, hub *notify.Hub, i18n *i18n.I18nService) {
	r := api.Group("/analysis")
	client := ollama.NewClient(cfg)
	analysisHandler := analysis_handlers.NewAnalysisHandler(db, cfg, client, hub, i18n)

	// redis-backed storage for the fiber rate limiter
	redisAddr := strings.Split(redis.Options().Addr, ":")
	redisPort := 6379
	if len(redisAddr) == 2 {
		if p, err := strconv.Atoi(redisAddr[1]); err == nil {
			redisPort = p
		}
	}
	redisStore := redis_fiber.New(redis_fiber.Config{
		Host:     redisAddr[0],
		Password: redis.Options().Password,
		Port:     redisPort,
		Database: 1,
	})

	// an analysis run holds an LLM call open for up to a minute, so manual
	// triggers are rate limited per client
	r.Post("/run", limiter.New(limiter.Config{
		Max:        3,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return "analysis:run:" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"status": "error",
				"error":  "too_many_request",
			})
		},
		Storage: redisStore,
	}), analysisHandler.RunAnalysis)
	r.Get("/summaries", analysisHandler.ListSummaries)
	r.Get("/summaries/:date", analysisHandler.GetSummary)
	r.Get("/ollama/status", analysisHandler.OllamaStatus)
}
