package dictionary

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/demoapps/go-services/pkg/logger"
)

// schemaValidator is the $jsonSchema the collection is created with.
var schemaValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": bson.A{"word", "length", "firstLetter"},
		"properties": bson.M{
			"word":        bson.M{"bsonType": "string", "description": "must be a string and is required"},
			"length":      bson.M{"bsonType": "int", "description": "must be an integer and is required"},
			"firstLetter": bson.M{"bsonType": "string", "description": "must be a string and is required"},
		},
	},
}

// InitCollection creates the words collection with its schema validator and
// the unique index on word. An existing collection is left as is.
func InitCollection(ctx context.Context, db *mongo.Database) error {
	err := db.CreateCollection(ctx, Collection, options.CreateCollection().SetValidator(schemaValidator))
	var cmdErr mongo.CommandError
	switch {
	case err == nil:
		logger.Infof("dictionary collection created with validation rules")
	case errors.As(err, &cmdErr) && cmdErr.Name == "NamespaceExists":
		logger.Infof("dictionary collection already exists")
	default:
		return err
	}
	if err := EnsureIndexes(ctx, db.Collection(Collection)); err != nil {
		return err
	}
	logger.Infof("created unique index on word field")
	return nil
}

// EnsureIndexes creates the unique word index.
func EnsureIndexes(ctx context.Context, col *mongo.Collection) error {
	_, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "word", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
