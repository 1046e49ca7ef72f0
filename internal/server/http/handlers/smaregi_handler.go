package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/uubo/memberhub/internal/domain/errors"
	"github.com/uubo/memberhub/internal/server/http/dto"
)

// SmaregiHandler serves the POS-facing integration endpoints.
type SmaregiHandler struct {
	customers CustomerFacade
	syncs     SyncFacade
	logger    *slog.Logger
}

// NewSmaregiHandler constructs SmaregiHandler.
func NewSmaregiHandler(customers CustomerFacade, syncs SyncFacade, logger *slog.Logger) *SmaregiHandler {
	return &SmaregiHandler{customers: customers, syncs: syncs, logger: logger}
}

// List handles POST /api/smaregi/customers/list.
func (h *SmaregiHandler) List(c *gin.Context) {
	var req dto.CustomerListRequest
	// A malformed body leaves the request zero-valued and fails the
	// missing-parameter check below, keeping the POS envelope shape.
	_ = c.ShouldBindJSON(&req)

	h.logger.Info("customer list requested",
		slog.String("searchString", req.SearchString),
		slog.String("storeCode", req.StoreCode),
	)

	customers, err := h.customers.SearchCustomers(c.Request.Context(), req.SearchString)
	if err != nil {
		if errors.Is(err, domainErrors.ErrMissingParameter) {
			sendSmaregiError(c, http.StatusBadRequest, "MISSING_PARAMETER", "検索文字列が入力されていません。")
			return
		}
		h.logger.Error("customer list failed", slog.String("error", err.Error()))
		sendSmaregiError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "内部エラーが発生しました。")
		return
	}

	c.JSON(http.StatusOK, dto.CustomerListResponse{
		Result: dto.CustomerListResult{Count: len(customers), Customers: customers},
	})
}

// Detail handles POST /api/smaregi/customers/detail.
func (h *SmaregiHandler) Detail(c *gin.Context) {
	var req dto.CustomerDetailRequest
	_ = c.ShouldBindJSON(&req)

	h.logger.Info("customer detail requested",
		slog.String("customerCode", req.CustomerCode),
		slog.String("storeCode", req.StoreCode),
		slog.String("terminalTranDateTime", req.TerminalTranDateTime),
	)

	detail, err := h.customers.CustomerDetail(c.Request.Context(), req.CustomerCode)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrMissingParameter):
			sendSmaregiError(c, http.StatusBadRequest, "MISSING_PARAMETER", "会員コードが入力されていません。")
		case errors.Is(err, domainErrors.ErrNotFound):
			// Deliberately HTTP 200: the POS client branches on the
			// error object, not the status code.
			c.JSON(http.StatusOK, dto.CustomerNotFoundResponse{
				Result: nil,
				Error:  dto.SmaregiErrorBody{Code: "NOT_FOUND", Message: "会員が見つかりません。"},
			})
		default:
			h.logger.Error("customer detail failed", slog.String("error", err.Error()))
			sendSmaregiError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "内部エラーが発生しました。")
		}
		return
	}

	c.JSON(http.StatusOK, dto.CustomerDetailResponse{Result: detail})
}

// PointUpdateWebhook handles POST /api/smaregi/webhook/point-update.
// The route carries no token check; the POS batch jobs call it directly.
func (h *SmaregiHandler) PointUpdateWebhook(c *gin.Context) {
	var req dto.PointUpdateWebhookRequest
	_ = c.ShouldBindJSON(&req)

	h.logger.Info("point update webhook received",
		slog.String("requestId", req.RequestID),
		slog.String("status", req.Status),
		slog.Int64("successCount", req.SuccessCount),
		slog.Int64("errorCount", req.ErrorCount),
	)

	if _, err := h.syncs.RecordPointUpdate(c.Request.Context(), req.RequestID, req.Status, req.SuccessCount, req.ErrorCount); err != nil {
		h.logger.Error("sync log append failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.WebhookResponse{Success: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.WebhookResponse{Success: true})
}

func sendSmaregiError(c *gin.Context, status int, code, message string) {
	c.JSON(status, dto.NewSmaregiError(code, message))
}
