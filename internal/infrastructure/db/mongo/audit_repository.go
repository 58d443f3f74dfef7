package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/learnobots/job-portal-api/internal/core/ports"
)

const auditCollection = "auth_events"

// MongoAuditRepository appends auth events to the auth_events collection.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuthEvent struct {
	Email     string `bson:"email"`
	Action    string `bson:"action"`
	Reason    string `bson:"reason,omitempty"`
	Timestamp int64  `bson:"timestamp"`
}

// Record implements ports.AuditRecorder.
func (r *MongoAuditRepository) Record(ctx context.Context, event ports.AuthEvent) error {
	doc := mongoAuthEvent{
		Email:     event.Email,
		Action:    event.Action,
		Reason:    event.Reason,
		Timestamp: event.Timestamp.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}
