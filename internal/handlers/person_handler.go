package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/haldenworks/contact-manager/internal/domain/person"
	"github.com/haldenworks/contact-manager/internal/httperr"
	"github.com/haldenworks/contact-manager/internal/middleware"
	ucPerson "github.com/haldenworks/contact-manager/internal/usecase/person"
)

type PersonHandler struct {
	createUC *ucPerson.CreatePerson
	getUC    *ucPerson.GetPerson
	listUC   *ucPerson.ListPeople
	updateUC *ucPerson.UpdatePerson
	deleteUC *ucPerson.DeletePerson
}

func NewPersonHandler(
	createUC *ucPerson.CreatePerson,
	getUC *ucPerson.GetPerson,
	listUC *ucPerson.ListPeople,
	updateUC *ucPerson.UpdatePerson,
	deleteUC *ucPerson.DeletePerson,
) *PersonHandler {
	return &PersonHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// --------- Requests ---------

type CreatePersonRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Role    string `json:"role"`
	Company string `json:"company"`
	Status  string `json:"status"`
	Notes   string `json:"notes"`
	Address string `json:"address"`

	DynamicFields []domain.FieldInput `json:"dynamic_fields"`
}

type UpdatePersonRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Role    *string `json:"role,omitempty"`
	Company *string `json:"company,omitempty"`
	Status  *string `json:"status,omitempty"`
	Notes   *string `json:"notes,omitempty"`
	Address *string `json:"address,omitempty"`

	LastInteraction *time.Time `json:"last_interaction,omitempty"`

	DynamicFields *[]domain.FieldInput `json:"dynamic_fields,omitempty"`
}

// --------- Handlers ---------

func (h *PersonHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	p, err := h.createUC.Execute(c.Request.Context(), ucPerson.CreatePersonInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Role:          req.Role,
		Company:       req.Company,
		Status:        req.Status,
		Notes:         req.Notes,
		Address:       req.Address,
		CreatedByID:   &userID,
		DynamicFields: req.DynamicFields,
	})
	if err != nil {
		writePersonError(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *PersonHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		writePersonError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *PersonHandler) List(c *gin.Context) {
	status := strings.ToUpper(strings.TrimSpace(c.Query("status")))
	query := c.Query("query")
	sort := strings.ToLower(strings.TrimSpace(c.Query("sort")))

	people, err := h.listUC.Execute(c.Request.Context(), status, query, sort)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_status_filter") {
			httperr.BadRequest(c, "invalid_status_filter", "Unknown status filter.")
			return
		}
		httperr.Internal(c, "failed_to_list_people", "Could not list people.")
		return
	}

	c.JSON(http.StatusOK, people)
}

func (h *PersonHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	p, err := h.updateUC.Execute(c.Request.Context(), id, &userID, ucPerson.UpdatePersonInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Role:            req.Role,
		Company:         req.Company,
		Status:          req.Status,
		Notes:           req.Notes,
		Address:         req.Address,
		LastInteraction: req.LastInteraction,
		DynamicFields:   req.DynamicFields,
	})
	if err != nil {
		writePersonError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *PersonHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id, &userID); err != nil {
		writePersonError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// --------- Helpers ---------

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "The id must be a positive integer.")
		return 0, false
	}
	return uint(id), true
}

func writePersonError(c *gin.Context, err error) {
	if ve, ok := httperr.AsValidation(err); ok {
		httperr.UnprocessableEntity(c, "validation_failed", ve.Violations)
		return
	}

	if httperr.IsBusiness(err, "person_not_found") {
		httperr.NotFound(c, "person_not_found", "No person with this id.")
		return
	}

	httperr.Internal(c, "internal_error", "Something went wrong.")
}
