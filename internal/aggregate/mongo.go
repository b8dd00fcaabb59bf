package aggregate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jovalie/political-forecast/internal/types"
)

// MongoStore persists state records to a MongoDB collection, one document
// per region keyed by region code.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
	logger     *slog.Logger
}

// NewMongoStore creates a MongoDB storage backend.
func NewMongoStore(uri, database, collection string, logger *slog.Logger) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, &types.StoreError{Backend: "mongo", Err: fmt.Errorf("connect: %w", err)}
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, &types.StoreError{Backend: "mongo", Err: fmt.Errorf("ping: %w", err)}
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(database).Collection(collection),
		logger:     logger.With("component", "mongo_store"),
	}, nil
}

func (s *MongoStore) Name() string { return "mongo" }

// Load reads every region document into a single aggregate. The aggregate
// timestamp is the newest record timestamp seen.
func (s *MongoStore) Load(ctx context.Context) (types.AggregateFile, error) {
	cur, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return types.AggregateFile{}, &types.StoreError{Backend: "mongo", Err: fmt.Errorf("find: %w", err)}
	}
	defer cur.Close(ctx)

	var agg types.AggregateFile
	for cur.Next(ctx) {
		var rec types.StateRecord
		if err := cur.Decode(&rec); err != nil {
			s.logger.Warn("skipping undecodable region document", "error", err)
			continue
		}
		agg.States = append(agg.States, rec)
		if rec.Timestamp.After(agg.Timestamp) {
			agg.Timestamp = rec.Timestamp
		}
	}
	if err := cur.Err(); err != nil {
		return types.AggregateFile{}, &types.StoreError{Backend: "mongo", Err: fmt.Errorf("cursor: %w", err)}
	}

	s.logger.Debug("aggregate loaded", "states", len(agg.States))
	return agg, nil
}

// Save upserts each state record by region code.
func (s *MongoStore) Save(ctx context.Context, agg types.AggregateFile) error {
	opts := options.Replace().SetUpsert(true)
	for _, rec := range agg.States {
		filter := bson.D{{Key: "code", Value: rec.Code}}
		if _, err := s.collection.ReplaceOne(ctx, filter, rec, opts); err != nil {
			return &types.StoreError{Backend: "mongo", Err: fmt.Errorf("upsert %s: %w", rec.Code, err)}
		}
	}

	s.logger.Info("aggregate written", "states", len(agg.States))
	return nil
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
