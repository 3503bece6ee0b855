package labels

import (
	"net/http"
	"strconv"
	"time"

	"github.com/anoixa/label-bed/api/common"
	"github.com/anoixa/label-bed/api/middleware"
	"github.com/anoixa/label-bed/database/models"
	svcLabel "github.com/anoixa/label-bed/internal/services/label"
	"github.com/gin-gonic/gin"
)

// Handler 标签处理器
type Handler struct {
	svc *svcLabel.Service
}

// NewHandler 创建标签处理器
func NewHandler(svc *svcLabel.Service) *Handler {
	return &Handler{svc: svc}
}

type labelPayload struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	ProjectID uint      `json:"project_id"`
	CreatedAt time.Time `json:"created_at"`
}

func toLabelPayload(label *models.Label) labelPayload {
	return labelPayload{
		ID:        label.ID,
		Name:      label.Name,
		ProjectID: label.ProjectID,
		CreatedAt: label.CreatedAt,
	}
}

type addLabelRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// AddLabelHandler 向项目添加标签
func (h *Handler) AddLabelHandler(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserIDKey)
	projectIdentifier := c.Param("identifier")

	var req addLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	label, err := h.svc.Add(projectIdentifier, userID, req.Name)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	common.RespondSuccessMessage(c, "Label added", toLabelPayload(label))
}

// ListLabelsHandler 列出项目的全部标签
func (h *Handler) ListLabelsHandler(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserIDKey)
	projectIdentifier := c.Param("identifier")

	labelList, err := h.svc.List(projectIdentifier, userID)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	payloads := make([]labelPayload, 0, len(labelList))
	for _, label := range labelList {
		payloads = append(payloads, toLabelPayload(label))
	}

	common.RespondSuccess(c, payloads)
}

// DeleteLabelHandler 删除标签并级联删除其标注
func (h *Handler) DeleteLabelHandler(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserIDKey)
	projectIdentifier := c.Param("identifier")

	labelID, err := strconv.ParseUint(c.Param("label_id"), 10, 32)
	if err != nil {
		common.RespondError(c, http.StatusBadRequest, "invalid label id")
		return
	}

	if err := h.svc.Delete(projectIdentifier, userID, uint(labelID)); err != nil {
		common.RespondAppError(c, err)
		return
	}

	common.RespondSuccessMessage(c, "Label deleted", nil)
}
