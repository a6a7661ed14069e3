package mongo

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// client holds the global Mongo client connection
var client *mongo.Client

// database holds the application database handle
var database *mongo.Database

// Init initializes the Mongo connection and sets the global client variable
func Init(url, dbName string) *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	// Test the connection
	if err := c.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	log.Println("Successfully connected to MongoDB")
	client = c
	database = c.Database(dbName)

	return database
}

// GetDatabase returns the global database handle
func GetDatabase() *mongo.Database {
	return database
}

// Close closes the Mongo client connection
func Close() error {
	if client != nil {
		log.Println("Closing MongoDB connection...")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return client.Disconnect(ctx)
	}
	return nil
}
