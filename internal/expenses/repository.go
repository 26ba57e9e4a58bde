package expenses

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/demoapps/go-services/internal/database"
	"github.com/demoapps/go-services/pkg/metrics"
)

type Repository interface {
	Insert(ctx context.Context, e Expense) error
	// List returns expenses newest date first; an empty category matches all.
	List(ctx context.Context, category string) ([]Expense, error)
	// TotalsByCategory sums amounts per category, largest total first.
	TotalsByCategory(ctx context.Context) ([]CategoryTotal, error)
	// TotalSince sums amounts of expenses dated at or after since.
	TotalSince(ctx context.Context, since time.Time) (float64, error)
}

const collection = "expenses"

type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{col: db.Collection(collection)}
}

func (r *MongoRepository) Insert(ctx context.Context, e Expense) error {
	_, err := r.col.InsertOne(ctx, e)
	metrics.ObserveStore(collection, "insert", err)
	return database.StoreError(err, "")
}

func (r *MongoRepository) List(ctx context.Context, category string) ([]Expense, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		metrics.ObserveStore(collection, "find", err)
		return nil, database.StoreError(err, "")
	}
	out, err := database.DecodeAll[Expense](ctx, cur)
	metrics.ObserveStore(collection, "find", err)
	if err != nil {
		return nil, database.StoreError(err, "")
	}
	return out, nil
}

func (r *MongoRepository) TotalsByCategory(ctx context.Context) ([]CategoryTotal, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$category"},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "total", Value: -1}, {Key: "_id", Value: 1}}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	metrics.ObserveStore(collection, "aggregate", err)
	if err != nil {
		return nil, database.StoreError(err, "")
	}
	out, err := database.DecodeAll[CategoryTotal](ctx, cur)
	if err != nil {
		return nil, database.StoreError(err, "")
	}
	return out, nil
}

func (r *MongoRepository) TotalSince(ctx context.Context, since time.Time) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "date", Value: bson.D{{Key: "$gte", Value: since}}}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}},
		}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	metrics.ObserveStore(collection, "aggregate", err)
	if err != nil {
		return 0, database.StoreError(err, "")
	}
	rows, err := database.DecodeAll[struct {
		Total float64 `bson:"total"`
	}](ctx, cur)
	if err != nil {
		return 0, database.StoreError(err, "")
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}
