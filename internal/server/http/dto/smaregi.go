package dto

import "github.com/uubo/memberhub/internal/domain/model"

// CustomerListRequest is the POS customer search payload. storeCode is
// accepted and logged but never used for filtering.
type CustomerListRequest struct {
	SearchString string `json:"searchString"`
	StoreCode    string `json:"storeCode"`
}

// CustomerDetailRequest is the POS customer lookup payload.
type CustomerDetailRequest struct {
	CustomerCode         string `json:"customerCode"`
	StoreCode            string `json:"storeCode"`
	TerminalTranDateTime string `json:"terminalTranDateTime"`
}

// PointUpdateWebhookRequest is the payload of the point-update webhook.
// Absent counts bind to zero, which is the documented default.
type PointUpdateWebhookRequest struct {
	RequestID    string `json:"requestId"`
	Status       string `json:"status"`
	SuccessCount int64  `json:"successCount"`
	ErrorCount   int64  `json:"errorCount"`
}

// SmaregiErrorBody is the error object embedded in POS responses.
type SmaregiErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SmaregiErrorResponse is the fixed POS error envelope. The result field
// always serializes as an empty array, never null.
type SmaregiErrorResponse struct {
	Result []any            `json:"result"`
	Error  SmaregiErrorBody `json:"error"`
}

// NewSmaregiError builds the envelope with the empty result array set.
func NewSmaregiError(code, message string) SmaregiErrorResponse {
	return SmaregiErrorResponse{
		Result: []any{},
		Error:  SmaregiErrorBody{Code: code, Message: message},
	}
}

// CustomerListResult wraps search results with their count.
type CustomerListResult struct {
	Count     int                     `json:"count"`
	Customers []model.CustomerSummary `json:"customers"`
}

// CustomerListResponse is the search success envelope.
type CustomerListResponse struct {
	Result CustomerListResult `json:"result"`
}

// CustomerDetailResponse is the detail success envelope.
type CustomerDetailResponse struct {
	Result *model.CustomerDetail `json:"result"`
}

// CustomerNotFoundResponse is the detail miss envelope: delivered with
// HTTP 200, result explicitly null, and a NOT_FOUND error object. The POS
// client branches on the error field, not the status code.
type CustomerNotFoundResponse struct {
	Result any              `json:"result"`
	Error  SmaregiErrorBody `json:"error"`
}

// WebhookResponse acknowledges a webhook delivery.
type WebhookResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
