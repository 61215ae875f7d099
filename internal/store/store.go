package store

import (
	"context"
	"errors"

	"workshop-service/internal/model"
)

// SchemaVersion tags the persisted envelope. Loading data written by a
// newer version fails instead of guessing at its shape.
const SchemaVersion = 1

// ErrCorruptStore reports persisted data that could not be parsed. Callers
// are expected to surface it and continue with an empty collection; the
// store never truncates data it could not read.
var ErrCorruptStore = errors.New("corrupt order store")

// RecordStore is the durable boundary for the order collection. The
// granularity is whole-collection replace: Save rewrites everything, and a
// reader never observes a partially written collection.
type RecordStore interface {
	Load(ctx context.Context) ([]model.Order, error)
	Save(ctx context.Context, orders []model.Order) error
}

type envelope struct {
	SchemaVersion int           `json:"schema_version"`
	Orders        []model.Order `json:"orders"`
}
