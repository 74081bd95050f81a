package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rezvik/foodorder/internal/core/domain"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,
	domain.ErrBadRequest:      http.StatusBadRequest,
}

var kindStatusMap = map[domain.ErrorKind]int{
	domain.KindCustomerNotFound:   http.StatusNotFound,
	domain.KindRestaurantNotFound: http.StatusNotFound,
	domain.KindOrderNotFound:      http.StatusNotFound,

	domain.KindRestaurantNotActive:  http.StatusUnprocessableEntity,
	domain.KindEmptyItems:           http.StatusUnprocessableEntity,
	domain.KindPriceMismatch:        http.StatusUnprocessableEntity,
	domain.KindItemSubtotalMismatch: http.StatusUnprocessableEntity,
	domain.KindInvalidItemPrice:     http.StatusUnprocessableEntity,
	domain.KindInvalidOrderState:    http.StatusUnprocessableEntity,
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.Status(http.StatusBadRequest)
}

// handleError maps a failure to a status code; domain errors carry their
// rendered message to the caller verbatim.
func (h *Handler) handleError(ctx *gin.Context, err error) {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		statusCode, ok := kindStatusMap[domainErr.Kind]
		if !ok {
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, errorResponse{
			Code:    string(domainErr.Kind),
			Message: domainErr.Error(),
		})
		return
	}

	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
		h.logger.Error("error processing request", zap.Error(err))
	}
	ctx.Status(statusCode)
}

// handleSuccess sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
