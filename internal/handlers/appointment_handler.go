package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sebasr/clinic-service/internal/service"
)

// AppointmentHandler handles appointment requests
type AppointmentHandler struct {
	appointments *service.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(appointments *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments}
}

// Create schedules an appointment
// POST /api/v1/appointments, POST /appointment
func (h *AppointmentHandler) Create(c *gin.Context) {
	var input service.AppointmentInput
	if err := c.ShouldBind(&input); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	if err := h.appointments.Create(c.Request.Context(), input); err != nil {
		respondError(c, err, "Insert error")
		return
	}

	respondOK(c, "Appointment scheduled successfully", nil)
}

// ListToday lists today's appointments, earliest first
// GET /api/v1/appointments/today, GET /appointments/today
func (h *AppointmentHandler) ListToday(c *gin.Context) {
	appointments, err := h.appointments.ListToday(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch today's appointments")
		return
	}

	respondOK(c, "Today's appointments fetched successfully", gin.H{"data": appointments})
}

// ListAll lists every appointment
// GET /api/v1/appointments, GET /allappointments
func (h *AppointmentHandler) ListAll(c *gin.Context) {
	appointments, err := h.appointments.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to fetch appointments")
		return
	}

	respondOK(c, "All appointments fetched successfully", gin.H{"data": appointments})
}
