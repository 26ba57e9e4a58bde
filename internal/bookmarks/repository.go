package bookmarks

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/demoapps/go-services/internal/database"
	"github.com/demoapps/go-services/pkg/metrics"
)

// Repository persists bookmarks. An empty tags filter matches every bookmark.
type Repository interface {
	List(ctx context.Context, tags string) ([]Bookmark, error)
	Insert(ctx context.Context, b Bookmark) error
	CountByTag(ctx context.Context) ([]TagCount, error)
}

const collection = "bookmarks"

type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{col: db.Collection(collection)}
}

func (r *MongoRepository) List(ctx context.Context, tags string) ([]Bookmark, error) {
	filter := bson.M{}
	if tags != "" {
		filter["tags"] = tags
	}
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		metrics.ObserveStore(collection, "find", err)
		return nil, database.StoreError(err, "")
	}
	out, err := database.DecodeAll[Bookmark](ctx, cur)
	metrics.ObserveStore(collection, "find", err)
	if err != nil {
		return nil, database.StoreError(err, "")
	}
	return out, nil
}

func (r *MongoRepository) Insert(ctx context.Context, b Bookmark) error {
	_, err := r.col.InsertOne(ctx, b)
	metrics.ObserveStore(collection, "insert", err)
	return database.StoreError(err, "")
}

func (r *MongoRepository) CountByTag(ctx context.Context) ([]TagCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$tags"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	metrics.ObserveStore(collection, "aggregate", err)
	if err != nil {
		return nil, database.StoreError(err, "")
	}
	out, err := database.DecodeAll[TagCount](ctx, cur)
	if err != nil {
		return nil, database.StoreError(err, "")
	}
	return out, nil
}
