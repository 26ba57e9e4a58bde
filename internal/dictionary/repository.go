package dictionary

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/demoapps/go-services/internal/apperr"
	"github.com/demoapps/go-services/internal/database"
	"github.com/demoapps/go-services/pkg/metrics"
)

var ErrWordExists = apperr.With(apperr.ErrConflict, "Word already exists")

// Repository persists words. Word values are unique.
type Repository interface {
	Insert(ctx context.Context, w Word) error
	// InsertMany stores words, skipping duplicates, and reports how many were stored.
	InsertMany(ctx context.Context, words []Word) (int, error)
	FindByWord(ctx context.Context, word string) (*Word, error)
	// Suggest returns up to limit words starting with prefix or, when suffix
	// is non-empty, ending with suffix.
	Suggest(ctx context.Context, prefix, suffix string, limit int) ([]Word, error)
	LengthHistogram(ctx context.Context) ([]LengthCount, error)
	LetterHistogram(ctx context.Context) ([]LetterCount, error)
}

// Collection is the name the init command creates.
const Collection = "dictionaries"

type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{col: db.Collection(Collection)}
}

func (r *MongoRepository) Insert(ctx context.Context, w Word) error {
	_, err := r.col.InsertOne(ctx, w)
	metrics.ObserveStore(Collection, "insert", err)
	if mongo.IsDuplicateKeyError(err) {
		return apperr.Wrap(err, ErrWordExists, "")
	}
	return database.StoreError(err, "")
}

func (r *MongoRepository) InsertMany(ctx context.Context, words []Word) (int, error) {
	if len(words) == 0 {
		return 0, nil
	}
	docs := make([]interface{}, len(words))
	for i, w := range words {
		docs[i] = w
	}
	res, err := r.col.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	metrics.ObserveStore(Collection, "insert_many", err)
	if err == nil {
		return len(res.InsertedIDs), nil
	}
	var bwe mongo.BulkWriteException
	if !errors.As(err, &bwe) || bwe.WriteConcernError != nil {
		return 0, database.StoreError(err, "")
	}
	for _, we := range bwe.WriteErrors {
		if we.Code != 11000 {
			return 0, database.StoreError(err, "")
		}
	}
	return len(words) - len(bwe.WriteErrors), nil
}

func (r *MongoRepository) FindByWord(ctx context.Context, word string) (*Word, error) {
	var w Word
	err := r.col.FindOne(ctx, bson.M{"word": word}).Decode(&w)
	if errors.Is(err, mongo.ErrNoDocuments) {
		metrics.ObserveStore(Collection, "find", nil)
		return nil, nil
	}
	metrics.ObserveStore(Collection, "find", err)
	if err != nil {
		return nil, database.StoreError(err, "")
	}
	return &w, nil
}

func (r *MongoRepository) Suggest(ctx context.Context, prefix, suffix string, limit int) ([]Word, error) {
	or := bson.A{bson.M{"word": bson.M{"$regex": "^" + regexp.QuoteMeta(prefix)}}}
	if suffix != "" {
		or = append(or, bson.M{"word": bson.M{"$regex": regexp.QuoteMeta(suffix) + "$"}})
	}
	cur, err := r.col.Find(ctx, bson.M{"$or": or}, options.Find().SetLimit(int64(limit)))
	if err != nil {
		metrics.ObserveStore(Collection, "find", err)
		return nil, database.StoreError(err, "")
	}
	out, err := database.DecodeAll[Word](ctx, cur)
	metrics.ObserveStore(Collection, "find", err)
	if err != nil {
		return nil, database.StoreError(err, "")
	}
	return out, nil
}

func groupCount(field string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}

func (r *MongoRepository) LengthHistogram(ctx context.Context) ([]LengthCount, error) {
	cur, err := r.col.Aggregate(ctx, groupCount("length"))
	metrics.ObserveStore(Collection, "aggregate", err)
	if err != nil {
		return nil, database.StoreError(err, "")
	}
	out, err := database.DecodeAll[LengthCount](ctx, cur)
	return out, database.StoreError(err, "")
}

func (r *MongoRepository) LetterHistogram(ctx context.Context) ([]LetterCount, error) {
	cur, err := r.col.Aggregate(ctx, groupCount("firstLetter"))
	metrics.ObserveStore(Collection, "aggregate", err)
	if err != nil {
		return nil, database.StoreError(err, "")
	}
	out, err := database.DecodeAll[LetterCount](ctx, cur)
	return out, database.StoreError(err, "")
}
