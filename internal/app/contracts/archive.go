package contracts

import (
	"context"
	"trimline-service/internal/pkg/slots"
)

// SnapshotArchiver stores the pre-overwrite state of the appointment table so
// a bad bulk overwrite can be recovered by hand.
type SnapshotArchiver interface {
	ArchiveSnapshot(ctx context.Context, store slots.Store) (objectName string, err error)
}
