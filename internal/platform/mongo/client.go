// Package mongo connects to the document store behind the MongoDB repositories.
package mongo

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

const (
	serverSelectionTimeout = 10 * time.Second
	pingTimeout            = 10 * time.Second
)

// IsMongoURI reports whether uri selects the MongoDB store.
func IsMongoURI(uri string) bool {
	return strings.HasPrefix(uri, "mongodb://") || strings.HasPrefix(uri, "mongodb+srv://")
}

// DatabaseName returns the database named in uri's path, or fallback when
// the path is empty.
func DatabaseName(uri, fallback string) (string, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return "", fmt.Errorf("invalid mongodb uri: %w", err)
	}
	if cs.Database == "" {
		return fallback, nil
	}
	return cs.Database, nil
}

// Connect dials uri and pings the primary. The caller owns the client and
// must Disconnect it.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(serverSelectionTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	slog.Info("mongodb connection successful")
	return client, nil
}

// Ping checks that the primary is reachable.
func Ping(ctx context.Context, client *mongo.Client) error {
	return client.Ping(ctx, readpref.Primary())
}
