package database

import (
	"context"
	"log"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// DefaultDatabase is used when the URI does not name one.
const DefaultDatabase = "devconnector"

// Connect dials MongoDB, verifies the connection with a ping and returns the
// database named in the URI.
func Connect(ctx context.Context, mongoURI string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(mongoURI).
		SetServerSelectionTimeout(10 * time.Second)

	log.Printf("Attempting to connect to MongoDB...")
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, nil, err
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 10*time.Second)
	defer pingCancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, nil, err
	}

	log.Println("✅ Connected to MongoDB")
	return client, client.Database(DatabaseName(mongoURI)), nil
}

func Disconnect(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}

// DatabaseName returns the database path segment of a connection string.
func DatabaseName(mongoURI string) string {
	cs, err := connstring.Parse(mongoURI)
	if err != nil || cs.Database == "" {
		return DefaultDatabase
	}
	return cs.Database
}

// MaskURI hides the password of a connection string for logging.
func MaskURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		// Keep the host part only when the URI does not parse.
		if at := strings.LastIndex(uri, "@"); at >= 0 {
			if scheme := strings.Index(uri, "://"); scheme >= 0 && scheme < at {
				return uri[:scheme+3] + "***" + uri[at:]
			}
		}
		return uri
	}
	if u.User == nil {
		return uri
	}
	if _, ok := u.User.Password(); !ok {
		return u.String()
	}
	// url.UserPassword escapes '*'.
	user := url.User(u.User.Username()).String()
	u.User = nil
	prefix := u.Scheme + "://"
	return prefix + user + ":***@" + strings.TrimPrefix(u.String(), prefix)
}
