package entity

import (
	"time"
)

// BaseSimple carries the fields every stored record has. The id is an opaque
// uuid string so the same value works as a Mongo _id and a Postgres key.
type BaseSimple struct {
	ID        string    `bson:"_id" db:"id"`
	CreatedAt time.Time `bson:"created_at" db:"created_at"`
}
