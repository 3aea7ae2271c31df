package v1

import (
	"net/http"
	"strconv"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	contactUC domain.ContactUsecase
}

// MessageListResponse is one page of stored messages
type MessageListResponse struct {
	Messages []domain.ContactRecord `json:"messages"`
	Total    int                    `json:"total"`
	Limit    int                    `json:"limit"`
	Offset   int                    `json:"offset"`
}

// NewAdminHandler registers operator routes on an already authenticated group
func NewAdminHandler(admin *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &AdminHandler{contactUC: contactUC}
	admin.GET("/contact-messages", handler.ListMessages)
}

// ListMessages godoc
// @Summary      List contact messages
// @Description  Newest first. Requires an admin token.
// @Tags         admin
// @Produce      json
// @Param        limit   query     int  false  "Page size (max 100)"  default(20)
// @Param        offset  query     int  false  "Offset"               default(0)
// @Success      200     {object}  response.Response{data=MessageListResponse}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Security     BearerAuth
// @Router       /admin/contact-messages [get]
func (h *AdminHandler) ListMessages(c *gin.Context) {
	limit, err := queryInt(c, "limit", 20)
	if err != nil {
		c.Error(apperror.BadRequest("limit must be a number"))
		return
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		c.Error(apperror.BadRequest("offset must be a number"))
		return
	}

	records, total, err := h.contactUC.ListMessages(c.Request.Context(), limit, offset)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	response.Success(c, http.StatusOK, "Messages retrieved", MessageListResponse{
		Messages: records,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	})
}

func queryInt(c *gin.Context, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
