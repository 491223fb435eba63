package app

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"strings"

	"go-hrportal/internal/audit"
	"go-hrportal/internal/config"
	"go-hrportal/internal/geocode"
	"go-hrportal/internal/notification"
	"go-hrportal/internal/shared/connection"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infra holds the shared connections of a process.
type Infra struct {
	GormDB *gorm.DB
	SQLDB  *sql.DB
	Redis  *redis.Client
	Audit  audit.Logger

	mongo *mongo.Client
}

// ConnectInfra opens PostgreSQL and the audit sink. Redis is only dialled
// when withRedis is set.
func ConnectInfra(cfg config.Config, withRedis bool) (*Infra, error) {
	logger := zap.L().Named("app.infra")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DSN(), cfg.DBRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	infra := &Infra{GormDB: gormDB, SQLDB: sqlDB}

	if withRedis {
		rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.DBRetries)
		if err != nil {
			infra.Close()
			return nil, err
		}
		infra.Redis = rdb
	}

	stdout := audit.NewStdoutLogger()
	infra.Audit = stdout
	if cfg.MongoURI != "" {
		client, err := audit.ConnectMongo(context.Background(), cfg.MongoURI)
		if err != nil {
			// audit tetap jalan ke stdout
			logger.Warn("mongo audit sink unavailable, using stdout", zap.Error(err))
		} else {
			infra.mongo = client
			coll := client.Database(cfg.MongoDatabase).Collection(audit.CollectionName)
			infra.Audit = audit.NewMongoLogger(coll, stdout)
		}
	}

	return infra, nil
}

func (i *Infra) Close() {
	if i.mongo != nil {
		_ = i.mongo.Disconnect(context.Background())
	}
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	if i.SQLDB != nil {
		_ = i.SQLDB.Close()
	}
}

func newSender(cfg config.Config) notification.Sender {
	if !cfg.SMTPEnabled() {
		return notification.NewLogSender()
	}
	return notification.NewSMTPSender(notification.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
	})
}

func newGeocoder(cfg config.Config) geocode.Reverser {
	if cfg.GeocoderURL == "" {
		return geocode.Nop()
	}
	return geocode.NewNominatimClient(cfg.GeocoderURL, cfg.GeocoderTimeout)
}

// rbacModelPath falls back to the embedded model when the file is missing,
// e.g. when the binary runs outside the repository.
func rbacModelPath(path string) string {
	if path == "" {
		return ""
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return ""
	}
	return path
}

func splitRecipients(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
