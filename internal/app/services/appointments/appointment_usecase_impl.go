package appointments

import (
	"context"
	"strings"
	"sync"
	"time"
	"trimline-service/internal/app/config"
	"trimline-service/internal/app/contracts"
	"trimline-service/internal/app/models"
	"trimline-service/internal/pkg/constvars"
	"trimline-service/internal/pkg/dto/requests"
	"trimline-service/internal/pkg/exceptions"
	"trimline-service/internal/pkg/slots"
	"trimline-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	RedisRepository       contracts.RedisRepository
	SnapshotArchiver      contracts.SnapshotArchiver
	MutationPublisher     contracts.MutationPublisher
	Schedule              slots.DailySchedule
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentMongoRepository contracts.AppointmentRepository,
	redisRepository contracts.RedisRepository,
	snapshotArchiver contracts.SnapshotArchiver,
	mutationPublisher contracts.MutationPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository: appointmentMongoRepository,
			RedisRepository:       redisRepository,
			SnapshotArchiver:      snapshotArchiver,
			MutationPublisher:     mutationPublisher,
			Schedule: slots.NewDailySchedule(
				internalConfig.Schedule.StartHour,
				internalConfig.Schedule.EndHour,
				internalConfig.Schedule.SlotMinutes,
			),
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return appointmentUsecaseInstance
}

// FetchStore never fails: any backend trouble degrades to an empty store so
// polling clients keep rendering instead of erroring out.
func (uc *appointmentUsecase) FetchStore(ctx context.Context) (slots.Store, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FetchStore called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	storeRedisData, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyStoreSnapshot)
	if err != nil {
		uc.Log.Warn("appointmentUsecase.FetchStore error retrieving snapshot from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	if storeRedisData != "" {
		var cached slots.Store
		if err := json.Unmarshal([]byte(storeRedisData), &cached); err == nil {
			uc.Log.Info("appointmentUsecase.FetchStore served from Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return cached, nil
		}
		uc.Log.Warn("appointmentUsecase.FetchStore error parsing snapshot from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	appointments, err := uc.AppointmentRepository.FindAllOrdered(ctx)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FetchStore error fetching data from MongoDB, degrading to empty store",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return make(slots.Store), nil
	}

	records := make([]slots.Record, len(appointments))
	for i, appointment := range appointments {
		records[i] = slots.Record{Day: appointment.Day, Time: appointment.Time, Name: appointment.Name}
	}
	store := slots.FoldRecords(records)

	cacheTTL := time.Duration(uc.InternalConfig.Sync.PollIntervalSeconds) * time.Second
	if err := uc.RedisRepository.Set(ctx, constvars.RedisKeyStoreSnapshot, store, cacheTTL); err != nil {
		uc.Log.Warn("appointmentUsecase.FetchStore error caching snapshot in Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("appointmentUsecase.FetchStore succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotCountKey, len(records)),
	)
	return store, nil
}

func (uc *appointmentUsecase) SetSlot(ctx context.Context, request *requests.SlotMutation) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.SetSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOpKey, request.Op),
		zap.String(constvars.LoggingDayKey, request.Day),
		zap.String(constvars.LoggingTimeKey, request.Time),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	if !uc.Schedule.Contains(request.Time) {
		return exceptions.ErrTimeOutsideSchedule(nil)
	}

	name := strings.TrimSpace(request.Name)

	// A set with a blank name books nobody, which is exactly what clear
	// does. Both paths remove every row for the key so stale duplicates
	// cannot resurface on the next reconcile.
	eventKind := constvars.EventSlotSet
	if request.Op == constvars.MutationOpClear || name == "" {
		eventKind = constvars.EventSlotCleared
		if err := uc.AppointmentRepository.DeleteByKey(ctx, request.Day, request.Time); err != nil {
			uc.Log.Error("appointmentUsecase.SetSlot error deleting slot in MongoDB",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return err
		}
	} else {
		if err := uc.AppointmentRepository.Upsert(ctx, request.Day, request.Time, name); err != nil {
			uc.Log.Error("appointmentUsecase.SetSlot error upserting slot in MongoDB",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return err
		}
	}

	uc.invalidateSnapshot(ctx, requestID)
	uc.publishMutation(ctx, requestID, contracts.MutationEvent{
		Kind: eventKind,
		Day:  request.Day,
		Time: request.Time,
		Name: name,
	})

	uc.Log.Info("appointmentUsecase.SetSlot succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *appointmentUsecase) ReplaceStore(ctx context.Context, request *requests.BulkOverwrite) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.ReplaceStore called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !request.ConfirmFlag {
		return exceptions.ErrOverwriteNotConfirmed(nil)
	}
	if request.Store == nil {
		return exceptions.ErrStoreMissing(nil)
	}

	// Keep only well-formed, non-blank entries. Times outside the current
	// schedule are kept on purpose: snapshots may carry bookings made under
	// an older schedule, and dropping them here would silently lose data.
	appointments := make([]models.Appointment, 0)
	for day, dayMap := range request.Store {
		if !slots.IsValidDay(day) {
			continue
		}
		for timeLabel, name := range dayMap {
			if !slots.IsValidTime(timeLabel) {
				continue
			}
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			appointments = append(appointments, models.Appointment{Day: day, Time: timeLabel, Name: name})
		}
	}

	if uc.SnapshotArchiver != nil {
		previous, err := uc.FetchStore(ctx)
		if err == nil && len(previous) > 0 {
			objectName, err := uc.SnapshotArchiver.ArchiveSnapshot(ctx, previous)
			if err != nil {
				uc.Log.Warn("appointmentUsecase.ReplaceStore error archiving pre-overwrite snapshot",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
			} else {
				uc.Log.Info("appointmentUsecase.ReplaceStore archived pre-overwrite snapshot",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingObjectNameKey, objectName),
				)
			}
		}
	}

	if err := uc.AppointmentRepository.DeleteAll(ctx); err != nil {
		uc.Log.Error("appointmentUsecase.ReplaceStore error clearing collection in MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if err := uc.AppointmentRepository.InsertBatch(ctx, appointments); err != nil {
		uc.Log.Error("appointmentUsecase.ReplaceStore error inserting snapshot in MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.invalidateSnapshot(ctx, requestID)
	uc.publishMutation(ctx, requestID, contracts.MutationEvent{Kind: constvars.EventStoreOverwrite})

	uc.Log.Info("appointmentUsecase.ReplaceStore succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotCountKey, len(appointments)),
	)
	return nil
}

// invalidateSnapshot drops the cached reconciled store. A failed delete only
// means readers may see data up to one cache TTL stale, so it is logged and
// swallowed.
func (uc *appointmentUsecase) invalidateSnapshot(ctx context.Context, requestID string) {
	if err := uc.RedisRepository.Delete(ctx, constvars.RedisKeyStoreSnapshot); err != nil {
		uc.Log.Warn("appointmentUsecase.invalidateSnapshot error deleting snapshot from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, constvars.RedisKeyStoreSnapshot),
			zap.Error(err),
		)
	}
}

// publishMutation emits an audit event when events are enabled. The write has
// already been persisted, so publish failures are logged and swallowed.
func (uc *appointmentUsecase) publishMutation(ctx context.Context, requestID string, event contracts.MutationEvent) {
	if uc.MutationPublisher == nil {
		return
	}
	if err := uc.MutationPublisher.PublishMutation(ctx, event); err != nil {
		uc.Log.Warn("appointmentUsecase.publishMutation error publishing mutation event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}
