package mousetracker

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/demoapps/go-services/internal/database"
	"github.com/demoapps/go-services/pkg/metrics"
)

type Repository interface {
	InsertMany(ctx context.Context, events []MouseEvent) error
	List(ctx context.Context) ([]MouseEvent, error)
	// Heatmap sums counts over a grid of square cells of the given size.
	Heatmap(ctx context.Context, cell int) ([]Cell, error)
}

const collection = "mouseevents"

type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{col: db.Collection(collection)}
}

func (r *MongoRepository) InsertMany(ctx context.Context, events []MouseEvent) error {
	if len(events) == 0 {
		return nil
	}
	docs := make([]interface{}, len(events))
	for i, e := range events {
		docs[i] = e
	}
	_, err := r.col.InsertMany(ctx, docs)
	metrics.ObserveStore(collection, "insert_many", err)
	return database.StoreError(err, "")
}

func (r *MongoRepository) List(ctx context.Context) ([]MouseEvent, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}}))
	if err != nil {
		metrics.ObserveStore(collection, "find", err)
		return nil, database.StoreError(err, "")
	}
	out, err := database.DecodeAll[MouseEvent](ctx, cur)
	metrics.ObserveStore(collection, "find", err)
	if err != nil {
		return nil, database.StoreError(err, "")
	}
	return out, nil
}

func bucket(field string, cell int) bson.D {
	return bson.D{{Key: "$multiply", Value: bson.A{
		bson.D{{Key: "$floor", Value: bson.D{{Key: "$divide", Value: bson.A{"$" + field, cell}}}}},
		cell,
	}}}
}

func (r *MongoRepository) Heatmap(ctx context.Context, cell int) ([]Cell, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "x", Value: bucket("x", cell)}, {Key: "y", Value: bucket("y", cell)}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: "$count"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "x", Value: "$_id.x"},
			{Key: "y", Value: "$_id.y"},
			{Key: "count", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "x", Value: 1}, {Key: "y", Value: 1}}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	metrics.ObserveStore(collection, "aggregate", err)
	if err != nil {
		return nil, database.StoreError(err, "")
	}
	out, err := database.DecodeAll[Cell](ctx, cur)
	if err != nil {
		return nil, database.StoreError(err, "")
	}
	return out, nil
}
