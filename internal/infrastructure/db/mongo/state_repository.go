package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/receptionhq/queue-calling/internal/core/domain"
)

const (
	stateCollection = "queue_state"
	stateDocID      = "main"
)

// MongoStateRepository stores the queue document as a single upserted record.
// It performs no validation; the queue service owns the document's semantics.
type MongoStateRepository struct {
	coll *mongo.Collection
}

func NewStateRepository(db *mongo.Database) *MongoStateRepository {
	return &MongoStateRepository{coll: db.Collection(stateCollection)}
}

type stateDoc struct {
	ID                string `bson:"_id"`
	domain.QueueState `bson:",inline"`
}

// Get returns the stored document, or a fresh default when none exists yet.
func (r *MongoStateRepository) Get(ctx context.Context) (*domain.QueueState, error) {
	var doc stateDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": stateDocID}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return domain.NewQueueState(), nil
		}
		return nil, fmt.Errorf("find queue state: %w", err)
	}
	state := doc.QueueState
	return &state, nil
}

func (r *MongoStateRepository) Put(ctx context.Context, state *domain.QueueState) error {
	doc := stateDoc{ID: stateDocID, QueueState: *state}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"_id": stateDocID}, doc, opts); err != nil {
		return fmt.Errorf("store queue state: %w", err)
	}
	return nil
}
