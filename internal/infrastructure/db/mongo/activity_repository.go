package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/riderapp/admin-console/internal/core/domain"
)

const activityCollection = "activity_log"

// listActivityLimit caps the audit page served to the console.
const listActivityLimit = 200

// ActivityRepository persists the append-only audit log.
type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{coll: db.Collection(activityCollection)}
}

type activityDoc struct {
	Actor     string    `bson:"actor"`
	Action    string    `bson:"action"`
	Timestamp time.Time `bson:"timestamp"`
}

func (r *ActivityRepository) Append(ctx context.Context, entry domain.ActivityEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, activityDoc{
		Actor:     entry.Actor,
		Action:    entry.Action,
		Timestamp: entry.Timestamp,
	})
	return err
}

// List returns the most recent entries, newest first.
func (r *ActivityRepository) List(ctx context.Context) ([]domain.ActivityEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(listActivityLimit)

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var entries []domain.ActivityEntry
	for cur.Next(ctx) {
		var doc activityDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		entries = append(entries, domain.ActivityEntry{
			Actor:     doc.Actor,
			Action:    doc.Action,
			Timestamp: doc.Timestamp,
		})
	}
	return entries, cur.Err()
}
