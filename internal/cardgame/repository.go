package cardgame

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/demoapps/go-services/internal/database"
	"github.com/demoapps/go-services/pkg/metrics"
)

type Repository interface {
	Insert(ctx context.Context, g Game) error
	// ListNewestFirst returns every game ordered by date descending.
	ListNewestFirst(ctx context.Context) ([]Game, error)
	CountResult(ctx context.Context, r Result) (int64, error)
}

const collection = "games"

type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{col: db.Collection(collection)}
}

func (r *MongoRepository) Insert(ctx context.Context, g Game) error {
	_, err := r.col.InsertOne(ctx, g)
	metrics.ObserveStore(collection, "insert", err)
	return database.StoreError(err, "")
}

func (r *MongoRepository) ListNewestFirst(ctx context.Context) ([]Game, error) {
	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		metrics.ObserveStore(collection, "find", err)
		return nil, database.StoreError(err, "")
	}
	out, err := database.DecodeAll[Game](ctx, cur)
	metrics.ObserveStore(collection, "find", err)
	if err != nil {
		return nil, database.StoreError(err, "")
	}
	return out, nil
}

func (r *MongoRepository) CountResult(ctx context.Context, res Result) (int64, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"result": res})
	metrics.ObserveStore(collection, "count", err)
	if err != nil {
		return 0, database.StoreError(err, "")
	}
	return n, nil
}
