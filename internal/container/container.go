package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/rakafirdaus/go-blog-api/config"
	"github.com/rakafirdaus/go-blog-api/internal/infrastructure/media"
	"github.com/rakafirdaus/go-blog-api/pkg/helpers"
)

// app-level container to share constructed components across packages.
// Router can auto-wire modules from these singletons. Everything here is set
// once during bootstrap in cmd/main.go and read-only afterwards.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	mediaStore  media.Store

	jwtManager *helpers.JWTManager
)

func SetConfig(c *config.Config)   { cfg = c }
func GetConfig() *config.Config    { return cfg }
func SetLogger(l *logrus.Logger)   { logger = l }
func GetLogger() *logrus.Logger    { return logger }
func SetPGPool(p *pgxpool.Pool)    { pgPool = p }
func GetPGPool() *pgxpool.Pool     { return pgPool }
func SetRedis(r *redis.Client)     { redisClient = r }
func GetRedis() *redis.Client      { return redisClient }
func SetMedia(s media.Store)       { mediaStore = s }
func GetMedia() media.Store        { return mediaStore }
func SetJWT(m *helpers.JWTManager) { jwtManager = m }
func GetJWT() *helpers.JWTManager {
	if jwtManager != nil {
		return jwtManager
	}
	return helpers.DefaultJWT()
}
