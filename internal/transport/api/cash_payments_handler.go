package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/cash-review/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CashPaymentsHandler struct {
	svs CashPaymentServicer
}

func NewCashPaymentsHandler(svs CashPaymentServicer) *CashPaymentsHandler {
	return &CashPaymentsHandler{
		svs: svs,
	}
}

type CashPaymentResponse struct {
	ID            uuid.UUID                `json:"id"`
	CreatedAt     time.Time                `json:"created_at"`
	Date          time.Time                `json:"date"`
	Amount        decimal.Decimal          `json:"amount"`
	Status        domain.PaymentStatusType `json:"status"`
	SubmittedBy   uuid.UUID                `json:"submitted_by"`
	SubmitterName string                   `json:"submitter_name,omitempty"`
	ApprovedBy    *uuid.UUID               `json:"approved_by,omitempty"`
	ApprovedAt    *time.Time               `json:"approved_at,omitempty"`
	AdminNotes    string                   `json:"admin_notes,omitempty"`
}

func newCashPaymentResponse(p *domain.CashPayment) CashPaymentResponse {
	res := CashPaymentResponse{
		ID:          p.ID,
		CreatedAt:   p.CreatedAt,
		Date:        p.DisplayDate(),
		Amount:      p.Amount,
		Status:      p.Status,
		SubmittedBy: p.SubmittedBy,
		ApprovedBy:  p.ApprovedBy,
		ApprovedAt:  p.ApprovedAt,
		AdminNotes:  p.AdminNotes,
	}
	if p.Submitter != nil {
		res.SubmitterName = p.Submitter.FullName
	}
	return res
}

func newCashPaymentsResponse(payments []domain.CashPayment) []CashPaymentResponse {
	var response = make([]CashPaymentResponse, len(payments))
	for i := range payments {
		response[i] = newCashPaymentResponse(&payments[i])
	}
	return response
}

type SubmitCashPaymentParams struct {
	Amount decimal.Decimal `binding:"required,gt=0" json:"amount"`
}

// Create POST RouteGroup + CashPaymentsRoute. Заявка пользователя о внесенной наличными сумме.
func (h *CashPaymentsHandler) Create(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params SubmitCashPaymentParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}
	if err := domain.ValidateAmount(params.Amount); err != nil {
		c.AbortWithStatus(http.StatusUnprocessableEntity)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	payment, err := h.svs.Submit(reqCtx, currentUserID, params.Amount)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			c.AbortWithStatus(http.StatusUnprocessableEntity)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusAccepted, newCashPaymentResponse(payment))
}

// Index GET RouteGroup + CashPaymentsRoute. Заявки текущего пользователя.
func (h *CashPaymentsHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	payments, err := h.svs.ListByUser(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	if len(payments) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, newCashPaymentsResponse(payments))
}
