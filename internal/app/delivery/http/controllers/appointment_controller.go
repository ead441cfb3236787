package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"
	"trimline-service/internal/app/contracts"
	"trimline-service/internal/pkg/constvars"
	"trimline-service/internal/pkg/dto/requests"
	"trimline-service/internal/pkg/dto/responses"
	"trimline-service/internal/pkg/exceptions"
	"trimline-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

var (
	appointmentControllerInstance *AppointmentController
	onceAppointmentController     sync.Once
)

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	onceAppointmentController.Do(func() {
		appointmentControllerInstance = &AppointmentController{
			Log:                logger,
			AppointmentUsecase: appointmentUsecase,
		}
	})
	return appointmentControllerInstance
}

// GetStore writes the reconciled store as a raw day->time->name mapping, the
// exact shape polling clients apply verbatim.
func (ctrl *AppointmentController) GetStore(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("AppointmentController.GetStore called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	store, err := ctrl.AppointmentUsecase.FetchStore(ctx)
	if err != nil {
		ctrl.Log.Error("AppointmentController.GetStore error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.GetStore succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("day_count", len(store)),
	)
	utils.WriteJSON(w, constvars.StatusOK, store)
}

func (ctrl *AppointmentController) PatchSlot(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("AppointmentController.PatchSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.SlotMutation{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("AppointmentController.PatchSlot error decoding request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.AppointmentUsecase.SetSlot(ctx, request); err != nil {
		ctrl.Log.Error("AppointmentController.PatchSlot error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.PatchSlot succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOpKey, request.Op),
		zap.String(constvars.LoggingDayKey, request.Day),
		zap.String(constvars.LoggingTimeKey, request.Time),
	)
	utils.WriteJSON(w, constvars.StatusOK, responses.Ack{OK: true})
}

func (ctrl *AppointmentController) BulkReplace(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("AppointmentController.BulkReplace called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.BulkOverwrite{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("AppointmentController.BulkReplace error decoding request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.AppointmentUsecase.ReplaceStore(ctx, request); err != nil {
		ctrl.Log.Error("AppointmentController.BulkReplace error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.BulkReplace succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.WriteJSON(w, constvars.StatusOK, responses.Ack{OK: true})
}
