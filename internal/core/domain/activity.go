package domain

import "time"

// ActivityEntry is a single line in the administrative audit log.
type ActivityEntry struct {
	Actor     string    `json:"actor" bson:"actor"`
	Action    string    `json:"action" bson:"action"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}
