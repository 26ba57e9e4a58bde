package typing

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/demoapps/go-services/internal/database"
	"github.com/demoapps/go-services/pkg/metrics"
)

type TextRepository interface {
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, texts []Text) error
	ListByDifficulty(ctx context.Context, d Difficulty) ([]Text, error)
}

type ResultRepository interface {
	Insert(ctx context.Context, r Result) error
	// ListByUser returns the user's results newest first; limit <= 0 means all.
	ListByUser(ctx context.Context, user string, limit int) ([]Result, error)
	// SummaryByUser groups the user's results by difficulty.
	SummaryByUser(ctx context.Context, user string) ([]Summary, error)
}

const (
	textsCollection   = "texts"
	resultsCollection = "results"
)

type MongoTextRepository struct {
	col *mongo.Collection
}

func NewMongoTextRepository(db *mongo.Database) *MongoTextRepository {
	return &MongoTextRepository{col: db.Collection(textsCollection)}
}

func (r *MongoTextRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.col.EstimatedDocumentCount(ctx)
	metrics.ObserveStore(textsCollection, "count", err)
	return n, database.StoreError(err, "")
}

func (r *MongoTextRepository) InsertMany(ctx context.Context, texts []Text) error {
	if len(texts) == 0 {
		return nil
	}
	docs := make([]interface{}, len(texts))
	for i, t := range texts {
		docs[i] = t
	}
	_, err := r.col.InsertMany(ctx, docs)
	metrics.ObserveStore(textsCollection, "insert_many", err)
	return database.StoreError(err, "")
}

func (r *MongoTextRepository) ListByDifficulty(ctx context.Context, d Difficulty) ([]Text, error) {
	cur, err := r.col.Find(ctx, bson.M{"difficulty": d}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		metrics.ObserveStore(textsCollection, "find", err)
		return nil, database.StoreError(err, "")
	}
	out, err := database.DecodeAll[Text](ctx, cur)
	metrics.ObserveStore(textsCollection, "find", err)
	if err != nil {
		return nil, database.StoreError(err, "")
	}
	return out, nil
}

type MongoResultRepository struct {
	col *mongo.Collection
}

func NewMongoResultRepository(db *mongo.Database) *MongoResultRepository {
	return &MongoResultRepository{col: db.Collection(resultsCollection)}
}

// EnsureIndexes creates the (user, createdAt) index used by the listings.
func (r *MongoResultRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}

func (r *MongoResultRepository) Insert(ctx context.Context, res Result) error {
	_, err := r.col.InsertOne(ctx, res)
	metrics.ObserveStore(resultsCollection, "insert", err)
	return database.StoreError(err, "")
}

func (r *MongoResultRepository) ListByUser(ctx context.Context, user string, limit int) ([]Result, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cur, err := r.col.Find(ctx, bson.M{"user": user}, opts)
	if err != nil {
		metrics.ObserveStore(resultsCollection, "find", err)
		return nil, database.StoreError(err, "")
	}
	out, err := database.DecodeAll[Result](ctx, cur)
	metrics.ObserveStore(resultsCollection, "find", err)
	if err != nil {
		return nil, database.StoreError(err, "")
	}
	return out, nil
}

func (r *MongoResultRepository) SummaryByUser(ctx context.Context, user string) ([]Summary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "user", Value: user}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$difficulty"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "averageWpm", Value: bson.D{{Key: "$avg", Value: "$wpm"}}},
			{Key: "averageAccuracy", Value: bson.D{{Key: "$avg", Value: "$accuracy"}}},
		}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	metrics.ObserveStore(resultsCollection, "aggregate", err)
	if err != nil {
		return nil, database.StoreError(err, "")
	}
	out, err := database.DecodeAll[Summary](ctx, cur)
	if err != nil {
		return nil, database.StoreError(err, "")
	}
	return out, nil
}
