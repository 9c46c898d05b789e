package snapshot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wallery/wallery/pkg/wall"
)

const (
	mongoRoomsCollection = "rooms"
	mongoPrefsCollection = "prefs"
	mongoPrefsID         = "default"

	mongoConnectTimeout = 10 * time.Second
)

// roomDoc is the MongoDB document for one room snapshot. The room name
// is the document id, so each save replaces the previous snapshot.
type roomDoc struct {
	ID         wall.Room        `bson:"_id"`
	Placements []wall.Placement `bson:"placements"`
	UpdatedAt  time.Time        `bson:"updated_at"`
}

// prefsDoc is the MongoDB document for the preferences singleton.
type prefsDoc struct {
	ID        string     `bson:"_id"`
	Prefs     wall.Prefs `bson:"prefs"`
	UpdatedAt time.Time  `bson:"updated_at"`
}

// MongoStore keeps snapshots in MongoDB, for a wall shared between
// machines.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStore connects to MongoDB and verifies the connection.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	if database == "" {
		database = "wallery"
	}

	ctx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	return &MongoStore{client: client, db: client.Database(database)}, nil
}

func (s *MongoStore) LoadRoom(ctx context.Context, room wall.Room) ([]wall.Placement, error) {
	var doc roomDoc
	err := s.db.Collection(mongoRoomsCollection).FindOne(ctx, bson.M{"_id": room}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read room snapshot: %w", err)
	}
	return doc.Placements, nil
}

func (s *MongoStore) SaveRoom(ctx context.Context, room wall.Room, placements []wall.Placement) error {
	if placements == nil {
		placements = []wall.Placement{}
	}
	doc := roomDoc{ID: room, Placements: placements, UpdatedAt: time.Now().UTC()}

	_, err := s.db.Collection(mongoRoomsCollection).ReplaceOne(
		ctx, bson.M{"_id": room}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("write room snapshot: %w", err)
	}
	return nil
}

func (s *MongoStore) LoadPrefs(ctx context.Context) (*wall.Prefs, error) {
	var doc prefsDoc
	err := s.db.Collection(mongoPrefsCollection).FindOne(ctx, bson.M{"_id": mongoPrefsID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read preferences: %w", err)
	}
	return &doc.Prefs, nil
}

func (s *MongoStore) SavePrefs(ctx context.Context, prefs wall.Prefs) error {
	doc := prefsDoc{ID: mongoPrefsID, Prefs: prefs, UpdatedAt: time.Now().UTC()}

	_, err := s.db.Collection(mongoPrefsCollection).ReplaceOne(
		ctx, bson.M{"_id": mongoPrefsID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}

func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

var _ wall.Store = (*MongoStore)(nil)
