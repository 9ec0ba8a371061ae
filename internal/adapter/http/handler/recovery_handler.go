package handler

import (
	"strings"

	"receipt-recovery-service/internal/adapter/http/dto"
	"receipt-recovery-service/internal/core/ports"
	"receipt-recovery-service/pkg/apperror"
	"receipt-recovery-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// RecoveryHandler handles receipt recovery endpoints.
type RecoveryHandler struct {
	recoverySvc ports.RecoveryService
	maxPageSize int
}

// NewRecoveryHandler creates a new RecoveryHandler.
func NewRecoveryHandler(recoverySvc ports.RecoveryService, maxPageSize int) *RecoveryHandler {
	return &RecoveryHandler{recoverySvc: recoverySvc, maxPageSize: maxPageSize}
}

// Recover handles POST /api/v1/receipts/:event_id/recover.
func (h *RecoveryHandler) Recover(c *gin.Context) {
	eventID := strings.TrimSpace(c.Param("event_id"))
	if eventID == "" {
		response.Error(c, apperror.Validation("event id must not be blank"))
		return
	}

	result, err := h.recoverySvc.Recover(c.Request.Context(), ports.RecoverRequest{
		EventID: eventID,
		IsCart:  c.Query("is_cart") == "true",
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.RecoverResponse{
		RecordID: result.RecordID,
		Status:   string(result.Status),
		Enqueued: result.Enqueued,
	})
}

// RecoverBatch handles POST /api/v1/recovery/batch.
func (h *RecoveryHandler) RecoverBatch(c *gin.Context) {
	var req dto.RecoverBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	statuses, err := dto.ParseStatuses(req.Statuses)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	pageSize := req.PageSize
	if pageSize > h.maxPageSize {
		pageSize = h.maxPageSize
	}

	batchReq := ports.RecoverBatchRequest{Statuses: statuses, PageSize: pageSize}

	var result *ports.RecoverBatchResult
	if req.Scope == "carts" {
		result, err = h.recoverySvc.RecoverCartBatch(c.Request.Context(), batchReq)
	} else {
		result, err = h.recoverySvc.RecoverBatch(c.Request.Context(), batchReq)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	failedIDs := result.FailedIDs
	if failedIDs == nil {
		failedIDs = []string{}
	}

	response.OK(c, dto.RecoverBatchResponse{
		Succeeded:   result.Succeeded,
		Failed:      result.Failed,
		Skipped:     result.Skipped,
		FailedIDs:   failedIDs,
		Interrupted: result.Interrupted,
	})
}
