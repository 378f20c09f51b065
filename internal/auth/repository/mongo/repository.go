package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/rahmam-mok/Development/internal/auth/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepository struct {
	sessions *mongo.Collection
}

func NewMongoSessionRepository(sessions *mongo.Collection) *MongoRepository {
	return &MongoRepository{sessions: sessions}
}

// Upsert writes the session document keyed by its ID, replacing any previous
// document with the same ID.
func (r *MongoRepository) Upsert(ctx context.Context, session *domain.Session) error {
	opts := options.Replace().SetUpsert(true)

	_, err := r.sessions.ReplaceOne(ctx, bson.M{"_id": session.ID}, session, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert session %s: %w", session.ID, err)
	}

	return nil
}

// FindByUsername returns the most recently created session for the username,
// or (nil, nil) when the user has no session on record.
func (r *MongoRepository) FindByUsername(ctx context.Context, username string) (*domain.Session, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var session domain.Session
	err := r.sessions.FindOne(ctx, bson.M{"username": username}, opts).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find session by username: %w", err)
	}

	return &session, nil
}
