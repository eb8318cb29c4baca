package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var DB *mongo.Database

func ConnectDB(uri, name string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return err
	}

	DB = client.Database(name)
	if err := ensureIndexes(ctx); err != nil {
		return err
	}

	log.Println("Connected to MongoDB")
	return nil
}

// ensureIndexes backs the uniqueness rules the handlers rely on: one
// attendance record per classroom, one report per (student, year), and
// unique login emails.
func ensureIndexes(ctx context.Context) error {
	indexes := map[string]mongo.IndexModel{
		"attendances": {
			Keys:    bson.D{{Key: "classroomId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		"reports": {
			Keys:    bson.D{{Key: "student", Value: 1}, {Key: "year", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		"administratives": {
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		"teachers": {
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		"students": {
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	for collection, model := range indexes {
		if _, err := DB.Collection(collection).Indexes().CreateOne(ctx, model); err != nil {
			return err
		}
	}
	return nil
}
