package contracts

import (
	"context"
	"trimline-service/internal/app/models"
	"trimline-service/internal/pkg/dto/requests"
	"trimline-service/internal/pkg/slots"
)

type AppointmentRepository interface {
	EnsureIndexes(ctx context.Context) error
	// FindAllOrdered returns every row in ascending _id order, including
	// legacy duplicates for the same (day, time) key.
	FindAllOrdered(ctx context.Context) ([]models.Appointment, error)
	// Upsert atomically replaces-or-inserts the row for (day, time),
	// falling back to delete-then-insert when the upsert loses a
	// duplicate-key race.
	Upsert(ctx context.Context, day, timeLabel, name string) error
	// DeleteByKey removes every row for (day, time); absence is not an error.
	DeleteByKey(ctx context.Context, day, timeLabel string) error
	DeleteAll(ctx context.Context) error
	InsertBatch(ctx context.Context, appointments []models.Appointment) error
}

type AppointmentUsecase interface {
	// FetchStore returns the reconciled store. Backend read failures
	// degrade to an empty store rather than an error.
	FetchStore(ctx context.Context) (slots.Store, error)
	SetSlot(ctx context.Context, request *requests.SlotMutation) error
	ReplaceStore(ctx context.Context, request *requests.BulkOverwrite) error
}
