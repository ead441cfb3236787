package routers

import (
	"trimline-service/internal/app/delivery/http/controllers"
	"trimline-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Get("/", appointmentController.GetStore)
	router.With(middlewares.WriteLimiter.Limit).Patch("/", appointmentController.PatchSlot)
	router.With(middlewares.WriteLimiter.Limit).Post("/", appointmentController.BulkReplace)
}
