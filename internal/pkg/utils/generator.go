package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateSnapshotObjectName names an archived store snapshot so objects sort
// chronologically in the bucket listing.
func GenerateSnapshotObjectName(prefix string, now time.Time) string {
	return fmt.Sprintf("%s/%s-%s.json", prefix, now.UTC().Format("20060102T150405Z"), uuid.NewString())
}
