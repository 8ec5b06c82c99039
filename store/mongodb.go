package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps every collection as a single replaced document in one
// Mongo collection, preserving the ordered-sequence contract of Store. The
// stored value travels as raw JSON so records round-trip byte-for-byte with
// the file driver.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// collectionDoc is the persisted shape: one document per logical collection.
type collectionDoc struct {
	ID   string `bson:"_id"`
	Data []byte `bson:"data"`
}

// ConnectMongo dials MongoDB and verifies the connection with a ping.
func ConnectMongo(uri string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	collection := client.Database("thriftrizz").Collection("collections")
	return &MongoStore{client: client, collection: collection}, nil
}

// Disconnect closes the underlying client.
func (s *MongoStore) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Read loads the document for the collection and decodes its JSON payload
// into v. Missing or malformed documents read as empty.
func (s *MongoStore) Read(ctx context.Context, collection string, v interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc collectionDoc
	err := s.collection.FindOne(ctx, bson.M{"_id": collection}).Decode(&doc)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			log.Printf("store: reading %s: %v", collection, err)
		}
		return nil
	}
	if err := json.Unmarshal(doc.Data, v); err != nil {
		log.Printf("store: parsing %s: %v", collection, err)
		return nil
	}
	return nil
}

// Write replaces the document for the collection, creating it if absent.
func (s *MongoStore) Write(ctx context.Context, collection string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", collection, err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err = s.collection.ReplaceOne(ctx,
		bson.M{"_id": collection},
		collectionDoc{ID: collection, Data: data},
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("writing %s: %w", collection, err)
	}
	return nil
}
