package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sebasr/clinic-service/internal/service"
)

// TreatmentHandler handles treatment record requests
type TreatmentHandler struct {
	treatments *service.TreatmentService
}

// NewTreatmentHandler creates a new treatment handler
func NewTreatmentHandler(treatments *service.TreatmentService) *TreatmentHandler {
	return &TreatmentHandler{treatments: treatments}
}

// Create stores a treatment record
// POST /api/v1/treatments, POST /treat
func (h *TreatmentHandler) Create(c *gin.Context) {
	var input service.TreatmentInput
	if err := c.ShouldBind(&input); err != nil {
		respondInvalidRequest(c, err)
		return
	}

	if err := h.treatments.Create(c.Request.Context(), input); err != nil {
		respondError(c, err, "Failed to save treatment record")
		return
	}

	respondOK(c, "Treatment record saved", nil)
}

// FindByName lists the treatment records of one patient
// GET /api/v1/treatments?name=, GET /treatBYname?name=
func (h *TreatmentHandler) FindByName(c *gin.Context) {
	records, err := h.treatments.FindByName(c.Request.Context(), c.Query("name"))
	if err != nil {
		respondError(c, err, "Failed to fetch treat data")
		return
	}

	message := "Fetched treat data successfully"
	if len(records) == 0 {
		message = "No treatment data found for this patient"
	}

	respondOK(c, message, gin.H{"data": records})
}
