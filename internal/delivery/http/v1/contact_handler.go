package v1

import (
	"errors"
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const (
	msgSubmitted        = "Message Sent! Thank you for your message. I'll get back to you soon."
	msgValidationFailed = "Please check the form for errors."
	msgSubmitFailed     = "Something went wrong. Your message could not be sent. Please try again later."
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// ValidateFieldRequest carries a single field as typed by the visitor
type ValidateFieldRequest struct {
	Field string `json:"field" binding:"required" example:"email"`
	Value string `json:"value" example:"ada@example.com"`
}

// ValidateFieldResponse reports the outcome for one field
type ValidateFieldResponse struct {
	Field string `json:"field"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// SubmitContactResponse identifies a stored message
type SubmitContactResponse struct {
	ID string `json:"id"`
}

// NewContactHandler registers the contact routes (public, no auth required).
// submitLimit guards only the submission route.
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, submitLimit gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", submitLimit, handler.SubmitContact)
	public.POST("/contact/validate", handler.ValidateField)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validates every field, stores the message and notifies the site owner. Notification failures are not reported.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactMessage  true  "Contact Form Data"
// @Success      200      {object}  response.Response{data=SubmitContactResponse}
// @Failure      400      {object}  response.Response
// @Failure      422      {object}  response.Response{error=map[string]string}
// @Failure      429      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactMessage
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	record, err := h.contactUC.Submit(c.Request.Context(), req)
	if err != nil {
		if vErr, ok := domain.IsValidationError(err); ok {
			c.Error(apperror.Unprocessable(msgValidationFailed).WithDetails(vErr.Fields))
			return
		}
		if errors.Is(err, domain.ErrPersistenceFailed) {
			c.Error(apperror.BadGateway(msgSubmitFailed, err))
			return
		}
		c.Error(apperror.New(http.StatusInternalServerError, msgSubmitFailed, err))
		return
	}

	response.Success(c, http.StatusOK, msgSubmitted, SubmitContactResponse{ID: record.ID})
}

// ValidateField godoc
// @Summary      Validate one contact field
// @Description  Applies the rule for a single field, as the form does on every keystroke.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        field  body      ValidateFieldRequest  true  "Field and value"
// @Success      200    {object}  response.Response{data=ValidateFieldResponse}
// @Failure      400    {object}  response.Response
// @Router       /contact/validate [post]
func (h *ContactHandler) ValidateField(c *gin.Context) {
	var req ValidateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	msg, err := h.contactUC.ValidateField(c.Request.Context(), req.Field, req.Value)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownField) {
			c.Error(apperror.BadRequest("Unknown field: " + req.Field))
			return
		}
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Field checked", ValidateFieldResponse{
		Field: req.Field,
		Valid: msg == "",
		Error: msg,
	})
}
