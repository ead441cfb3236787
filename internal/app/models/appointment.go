package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Appointment is one persisted slot row. ObjectIDs increase monotonically at
// insertion time, so sorting by _id yields recency order for the read-side
// reconciliation fold.
type Appointment struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Day  string             `bson:"day" json:"day"`
	Time string             `bson:"time" json:"time"`
	Name string             `bson:"name" json:"name"`
}
