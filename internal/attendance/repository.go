package attendance

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/demoapps/go-services/internal/database"
	"github.com/demoapps/go-services/pkg/metrics"
)

// Repository persists students. SetAttendance returns (nil, nil) for an unknown id.
type Repository interface {
	List(ctx context.Context, status Status) ([]Student, error)
	Insert(ctx context.Context, s Student) error
	SetAttendance(ctx context.Context, id string, status Status, at time.Time) (*Student, error)
	CountByAttendance(ctx context.Context) (map[Status]int, error)
}

const collection = "students"

type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{col: db.Collection(collection)}
}

func (r *MongoRepository) List(ctx context.Context, status Status) ([]Student, error) {
	filter := bson.M{}
	if status != "" {
		filter["attendance"] = status
	}
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		metrics.ObserveStore(collection, "find", err)
		return nil, database.StoreError(err, "")
	}
	out, err := database.DecodeAll[Student](ctx, cur)
	metrics.ObserveStore(collection, "find", err)
	if err != nil {
		return nil, database.StoreError(err, "")
	}
	return out, nil
}

func (r *MongoRepository) Insert(ctx context.Context, s Student) error {
	_, err := r.col.InsertOne(ctx, s)
	metrics.ObserveStore(collection, "insert", err)
	return database.StoreError(err, "Student already exists")
}

func (r *MongoRepository) SetAttendance(ctx context.Context, id string, status Status, at time.Time) (*Student, error) {
	var s Student
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"attendance": status, "updatedAt": at}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		metrics.ObserveStore(collection, "update", nil)
		return nil, nil
	}
	metrics.ObserveStore(collection, "update", err)
	if err != nil {
		return nil, database.StoreError(err, "")
	}
	return &s, nil
}

func (r *MongoRepository) CountByAttendance(ctx context.Context) (map[Status]int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$attendance"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	metrics.ObserveStore(collection, "aggregate", err)
	if err != nil {
		return nil, database.StoreError(err, "")
	}
	rows, err := database.DecodeAll[struct {
		Status Status `bson:"_id"`
		Count  int    `bson:"count"`
	}](ctx, cur)
	if err != nil {
		return nil, database.StoreError(err, "")
	}
	out := make(map[Status]int, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}
