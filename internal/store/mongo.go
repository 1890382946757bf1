package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Mongo is the production Gateway over a MongoDB database. The zero value
// is a disconnected gateway: every call returns ErrUnavailable. That keeps
// the process bootable when no store is configured.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongo connects to the MongoDB instance at url and returns a gateway
// bound to the named database. An empty url yields a disconnected gateway
// and no error; the caller decides whether that is fatal.
func NewMongo(ctx context.Context, url, name string, timeout time.Duration) (*Mongo, error) {
	if url == "" {
		return &Mongo{}, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(url))
	if err != nil {
		return &Mongo{}, fmt.Errorf("%w: connect: %v", ErrUnavailable, err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		// Keep the client; the store may come up later and the driver
		// reconnects on demand.
		return &Mongo{client: client, db: client.Database(name)}, fmt.Errorf("%w: ping: %v", ErrUnavailable, err)
	}

	return &Mongo{client: client, db: client.Database(name)}, nil
}

// Connected reports whether a client handle exists. It does not imply the
// server is currently reachable; use Ping for that.
func (m *Mongo) Connected() bool {
	return m != nil && m.client != nil
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	if !m.Connected() {
		return nil
	}
	return m.client.Disconnect(ctx)
}

func (m *Mongo) Insert(ctx context.Context, collection string, record Record) (string, error) {
	if !m.Connected() {
		return "", ErrUnavailable
	}

	res, err := m.db.Collection(collection).InsertOne(ctx, bson.M(record))
	if err != nil {
		return "", fmt.Errorf("%w: insert into %s: %v", ErrWrite, collection, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

func (m *Mongo) Find(ctx context.Context, collection string, filter Record, limit int64) ([]Record, error) {
	if !m.Connected() {
		return nil, ErrUnavailable
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	if filter == nil {
		filter = Record{}
	}

	cursor, err := m.db.Collection(collection).Find(ctx, bson.M(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("%w: find in %s: %v", ErrRead, collection, err)
	}
	defer cursor.Close(ctx)

	var records []Record
	for cursor.Next(ctx) {
		var rec bson.M
		if err := cursor.Decode(&rec); err != nil {
			return nil, fmt.Errorf("%w: decode from %s: %v", ErrRead, collection, err)
		}
		records = append(records, Record(rec))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: cursor in %s: %v", ErrRead, collection, err)
	}

	return records, nil
}

func (m *Mongo) UpdateByID(ctx context.Context, collection string, id string, set Record) error {
	if !m.Connected() {
		return ErrUnavailable
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: update in %s: bad id %q: %v", ErrWrite, collection, id, err)
	}

	_, err = m.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M(set)})
	if err != nil {
		return fmt.Errorf("%w: update in %s: %v", ErrWrite, collection, err)
	}
	return nil
}

func (m *Mongo) Collections(ctx context.Context) ([]string, error) {
	if !m.Connected() {
		return nil, ErrUnavailable
	}

	names, err := m.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("%w: list collections: %v", ErrRead, err)
	}
	return names, nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	if !m.Connected() {
		return ErrUnavailable
	}
	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: ping: %v", ErrUnavailable, err)
	}
	return nil
}
