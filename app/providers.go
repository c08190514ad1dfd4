package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Anirudh646/dfghjkddfghj/config"
	"github.com/Anirudh646/dfghjkddfghj/database"
	"github.com/Anirudh646/dfghjkddfghj/services/counselor"
	"github.com/Anirudh646/dfghjkddfghj/services/digitalocean"
	"github.com/Anirudh646/dfghjkddfghj/services/gemini"
	"github.com/Anirudh646/dfghjkddfghj/services/lead"
	"github.com/Anirudh646/dfghjkddfghj/services/llm"
	"github.com/Anirudh646/dfghjkddfghj/utils/cache"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// newGenerator picks the model provider. A missing key never stops the
// server: the counselor answers menus locally and reports the generic error
// for anything that needs the model.
func newGenerator(ctx context.Context, env *config.EnviornmentVariable) llm.Generator {
	switch env.LLM_PROVIDER {
	case "gemini":
		client, err := gemini.NewClient(ctx, gemini.Config{APIKey: env.GEMINI_API_KEY, Model: env.GEMINI_MODEL})
		if err != nil {
			zap.S().Warnw("gemini unavailable", "error", err)
			return llm.Unavailable{Reason: err.Error()}
		}
		return client
	case "digitalocean":
		if env.MODEL_ACCESS_KEY == "" {
			zap.S().Warn("MODEL_ACCESS_KEY not set; model calls will fail")
			return llm.Unavailable{Reason: "MODEL_ACCESS_KEY not set"}
		}
		return digitalocean.NewInferenceClient(digitalocean.InferenceConfig{
			APIKey:  env.MODEL_ACCESS_KEY,
			Model:   env.INFERENCE_MODEL,
			Timeout: env.LLMTimeout() + 5*time.Second,
		})
	default:
		return llm.Unavailable{Reason: fmt.Sprintf("unknown LLM_PROVIDER %q", env.LLM_PROVIDER)}
	}
}

// newLeadStore returns the configured store plus a close func for it
func newLeadStore(ctx context.Context, env *config.EnviornmentVariable, db *gorm.DB) (lead.Store, func(), error) {
	if env.LEAD_STORE != "mongo" {
		return lead.NewGormStore(db), func() {}, nil
	}

	client, mdb, err := database.ConnectMongo(ctx, env.MONGO_URI, env.MONGO_DB)
	if err != nil {
		return nil, nil, err
	}
	return lead.NewMongoStore(mdb), func() { disconnect(client) }, nil
}

func disconnect(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		zap.S().Warnw("mongo disconnect failed", "error", err)
	}
}

// newSessionStore keeps chat sessions in Redis when it is reachable so that
// every instance can serve every session
func newSessionStore(redisCache *cache.RedisCache, ttl time.Duration) counselor.SessionStore {
	if redisCache != nil {
		return counselor.NewRedisStore(redisCache, ttl)
	}
	zap.S().Warn("Redis unavailable; chat sessions are kept in memory")
	return counselor.NewMemoryStore(ttl)
}

func newSpaces(env *config.EnviornmentVariable) *digitalocean.SpacesClient {
	cfg := digitalocean.SpacesConfig{
		AccessKey: env.DO_SPACES_ACCESS_KEY,
		SecretKey: env.DO_SPACES_SECRET_KEY,
		Bucket:    env.DO_SPACES_BUCKET,
		Region:    env.DO_SPACES_REGION,
		Endpoint:  env.DO_SPACES_ENDPOINT,
		CDNURL:    env.DO_SPACES_CDN_ENDPOINT,
	}
	if !cfg.Configured() {
		return nil
	}
	client, err := digitalocean.NewSpacesClient(cfg)
	if err != nil {
		zap.S().Warnw("Spaces disabled", "error", err)
		return nil
	}
	return client
}
