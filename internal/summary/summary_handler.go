package summary

import (
	"net/http"

	"go-timeclock/internal/shared/apperror"
	"go-timeclock/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// resolveEmployeeID maps the "me" alias to the caller and blocks
// non-admins from addressing anyone else.
func resolveEmployeeID(c *gin.Context, requested string) (string, bool) {
	caller := c.GetString("user_id_validated")
	if requested == "" || requested == "me" {
		return caller, true
	}
	if requested != caller && c.GetString("role") != "admin" {
		response.Error(c, http.StatusForbidden, apperror.CodeForbidden, "You can only view your own summaries", nil)
		return "", false
	}
	return requested, true
}

func (h *Handler) Calculate(c *gin.Context) {
	var req CalculateSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	employeeID, ok := resolveEmployeeID(c, req.EmployeeID)
	if !ok {
		return
	}

	resp, err := h.service.Calculate(c.Request.Context(), employeeID, req.Date)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByEmployee(c *gin.Context) {
	employeeID, ok := resolveEmployeeID(c, c.Param("employeeID"))
	if !ok {
		return
	}

	resp, err := h.service.GetByEmployee(
		c.Request.Context(),
		employeeID,
		c.Query("start_date"),
		c.Query("end_date"),
	)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetForDate(c *gin.Context) {
	employeeID, ok := resolveEmployeeID(c, c.Param("employeeID"))
	if !ok {
		return
	}

	resp, err := h.service.GetForDate(c.Request.Context(), employeeID, c.Param("date"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AdminGetAll(c *gin.Context) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate == "" || endDate == "" {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "start_date and end_date are required", nil)
		return
	}

	resp, err := h.service.GetAllGrouped(c.Request.Context(), startDate, endDate)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AdminRegenerate(c *gin.Context) {
	written, err := h.service.RegenerateAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"summaries_written": written}, nil)
}
