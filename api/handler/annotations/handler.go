package annotations

import (
	"net/http"
	"strconv"
	"time"

	"github.com/anoixa/label-bed/api/common"
	"github.com/anoixa/label-bed/api/middleware"
	"github.com/anoixa/label-bed/database/models"
	svcAnnotation "github.com/anoixa/label-bed/internal/services/annotation"
	"github.com/gin-gonic/gin"
)

// Handler 标注处理器
type Handler struct {
	svc *svcAnnotation.Service
}

// NewHandler 创建标注处理器
func NewHandler(svc *svcAnnotation.Service) *Handler {
	return &Handler{svc: svc}
}

type annotationPayload struct {
	ID        uint      `json:"id"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
	ImageID   uint      `json:"image_id"`
	LabelID   uint      `json:"label_id"`
	CreatedAt time.Time `json:"created_at"`
}

func toAnnotationPayload(ann *models.Annotation) annotationPayload {
	return annotationPayload{
		ID:        ann.ID,
		X:         ann.X,
		Y:         ann.Y,
		Width:     ann.Width,
		Height:    ann.Height,
		ImageID:   ann.ImageID,
		LabelID:   ann.LabelID,
		CreatedAt: ann.CreatedAt,
	}
}

type addAnnotationRequest struct {
	LabelID uint     `json:"label_id" binding:"required"`
	X       *float64 `json:"x" binding:"required"`
	Y       *float64 `json:"y" binding:"required"`
	Width   *float64 `json:"width" binding:"required"`
	Height  *float64 `json:"height" binding:"required"`
}

// AddAnnotationHandler 在图片上创建标注框
func (h *Handler) AddAnnotationHandler(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserIDKey)
	imageIdentifier := c.Param("identifier")

	var req addAnnotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ann, err := h.svc.Add(imageIdentifier, userID, req.LabelID, *req.X, *req.Y, *req.Width, *req.Height)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	common.RespondSuccessMessage(c, "Annotation added", toAnnotationPayload(ann))
}

// ListAnnotationsHandler 列出图片的全部标注
func (h *Handler) ListAnnotationsHandler(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserIDKey)
	imageIdentifier := c.Param("identifier")

	annotationList, err := h.svc.List(imageIdentifier, userID)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	payloads := make([]annotationPayload, 0, len(annotationList))
	for _, ann := range annotationList {
		payloads = append(payloads, toAnnotationPayload(ann))
	}

	common.RespondSuccess(c, payloads)
}

// DeleteAnnotationHandler 删除图片下的单个标注
func (h *Handler) DeleteAnnotationHandler(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserIDKey)
	imageIdentifier := c.Param("identifier")

	annotationID, err := strconv.ParseUint(c.Param("annotation_id"), 10, 32)
	if err != nil {
		common.RespondError(c, http.StatusBadRequest, "invalid annotation id")
		return
	}

	if err := h.svc.Delete(imageIdentifier, userID, uint(annotationID)); err != nil {
		common.RespondAppError(c, err)
		return
	}

	common.RespondSuccessMessage(c, "Annotation deleted", nil)
}
