package appointments

import (
	"context"
	"trimline-service/internal/app/contracts"
	"trimline-service/internal/app/models"
	"trimline-service/internal/pkg/constvars"
	"trimline-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) EnsureIndexes(ctx context.Context) error {
	indexModel := mongo.IndexModel{
		Keys: bson.D{
			{Key: "day", Value: 1},
			{Key: "time", Value: 1},
		},
		Options: options.Index().SetName("day_time_unique").SetUnique(true),
	}
	_, err := r.Collection.Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		return exceptions.ErrMongoDBEnsureIndexes(err)
	}
	return nil
}

// FindAllOrdered relies on ObjectID generation time for recency ordering, so
// rows inserted before the unique index existed still reconcile correctly.
func (r *AppointmentMongoRepository) FindAllOrdered(ctx context.Context) ([]models.Appointment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (r *AppointmentMongoRepository) Upsert(ctx context.Context, day, timeLabel, name string) error {
	filter := bson.M{"day": day, "time": timeLabel}
	replacement := models.Appointment{Day: day, Time: timeLabel, Name: name}

	_, err := r.Collection.ReplaceOne(ctx, filter, replacement, options.Replace().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Lost an upsert race against a concurrent writer for the same
			// key. Clear the key and insert a fresh row so the newest
			// ObjectID carries this write.
			if _, err := r.Collection.DeleteMany(ctx, filter); err != nil {
				return exceptions.ErrMongoDBDeleteDocument(err)
			}
			if _, err := r.Collection.InsertOne(ctx, replacement); err != nil {
				return exceptions.ErrMongoDBInsertDocument(err)
			}
			return nil
		}
		return exceptions.ErrMongoDBUpsertDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) DeleteByKey(ctx context.Context, day, timeLabel string) error {
	_, err := r.Collection.DeleteMany(ctx, bson.M{"day": day, "time": timeLabel})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) DeleteAll(ctx context.Context) error {
	_, err := r.Collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) InsertBatch(ctx context.Context, appointments []models.Appointment) error {
	if len(appointments) == 0 {
		return nil
	}
	documents := make([]interface{}, 0, len(appointments))
	for _, appointment := range appointments {
		documents = append(documents, appointment)
	}
	_, err := r.Collection.InsertMany(ctx, documents)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}
