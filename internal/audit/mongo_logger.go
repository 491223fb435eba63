package audit

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const CollectionName = "audit_logs"

type insertOner interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

// MongoLogger stores audit entries in MongoDB. Writes are best effort: a
// failed insert is reported to the fallback logger and never to the caller.
type MongoLogger struct {
	coll     insertOner
	fallback Logger
	logger   *zap.Logger
	timeout  time.Duration
}

func NewMongoLogger(coll insertOner, fallback Logger, logger ...*zap.Logger) *MongoLogger {
	l := zap.L().Named("audit.mongo")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	if fallback == nil {
		fallback = Nop()
	}
	return &MongoLogger{
		coll:     coll,
		fallback: fallback,
		logger:   l,
		timeout:  3 * time.Second,
	}
}

func (l *MongoLogger) Log(ctx context.Context, entry Entry) {
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = time.Now().UTC()
	}

	// detach from the request so a cancelled client does not drop the entry
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.timeout)
	defer cancel()

	if _, err := l.coll.InsertOne(writeCtx, toDocument(entry)); err != nil {
		l.logger.Warn("insert audit log failed", zap.String("action", entry.Action), zap.Error(err))
		l.fallback.Log(ctx, entry)
	}
}

func toDocument(entry Entry) bson.M {
	doc := bson.M{
		"action":      entry.Action,
		"message":     entry.Message,
		"occurred_at": entry.OccurredAt,
	}
	if entry.CompanyID != "" {
		doc["company_id"] = entry.CompanyID
	}
	if entry.ActorID != "" {
		doc["actor_id"] = entry.ActorID
	}
	if entry.ResourceType != "" {
		doc["resource"] = bson.M{"type": entry.ResourceType, "id": entry.ResourceID}
	}
	if len(entry.Meta) > 0 {
		doc["meta"] = entry.Meta
	}
	return doc
}

func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}
