package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/fsdevblog/cash-review/internal/domain"
	"github.com/fsdevblog/cash-review/internal/review"
	"github.com/fsdevblog/cash-review/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReviewHandler раздел рассмотрения заявок. Все маршруты закрыты middlewares.AdminRequired.
type ReviewHandler struct {
	sessions ReviewSessions
	auditSvs AuditServicer
}

func NewReviewHandler(sessions ReviewSessions, auditSvs AuditServicer) *ReviewHandler {
	return &ReviewHandler{
		sessions: sessions,
		auditSvs: auditSvs,
	}
}

type NoticeResponse struct {
	Success   bool                `json:"success"`
	PaymentID uuid.UUID           `json:"payment_id"`
	Decision  domain.DecisionType `json:"decision"`
	Message   string              `json:"message"`
}

type ReviewResponse struct {
	Pending     []CashPaymentResponse `json:"pending"`
	Processed   []CashPaymentResponse `json:"processed"`
	Stale       bool                  `json:"stale"`
	RefreshedAt time.Time             `json:"refreshed_at"`
	Notice      *NoticeResponse       `json:"notice,omitempty"`
}

type ConfirmationResponse struct {
	Token         uuid.UUID           `json:"token"`
	PaymentID     uuid.UUID           `json:"payment_id"`
	Decision      domain.DecisionType `json:"decision"`
	Amount        decimal.Decimal     `json:"amount"`
	SubmitterName string              `json:"submitter_name"`
	Prompt        string              `json:"prompt"`
	ExpiresAt     time.Time           `json:"expires_at"`
}

type AuditEntryResponse struct {
	ID        int64                  `json:"id"`
	CreatedAt time.Time              `json:"created_at"`
	AdminID   uuid.UUID              `json:"admin_id"`
	Action    domain.AdminActionType `json:"action"`
	PaymentID uuid.UUID              `json:"payment_id"`
	Notes     string                 `json:"notes,omitempty"`
}

type DecisionParams struct {
	Notes string `binding:"max_bytes=1000" json:"notes"`
}

func newReviewResponse(view review.View) ReviewResponse {
	return ReviewResponse{
		Pending:     newCashPaymentsResponse(view.Pending),
		Processed:   newCashPaymentsResponse(view.Processed),
		Stale:       view.Stale,
		RefreshedAt: view.RefreshedAt,
	}
}

func newNoticeResponse(n review.Notice) *NoticeResponse {
	return &NoticeResponse{
		Success:   n.Success,
		PaymentID: n.PaymentID,
		Decision:  n.Decision,
		Message:   n.Message,
	}
}

// Index GET RouteGroup + AdminGroup + ReviewRoute. Загружает список заново. Если загрузка не удалась,
// отдается прежний список с признаком stale.
func (h *ReviewHandler) Index(c *gin.Context) {
	ctrl, ok := h.controller(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	view, err := ctrl.Refresh(reqCtx)
	response := newReviewResponse(view)
	if err != nil {
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		response.Notice = &NoticeResponse{Message: "failed to load cash payments, showing previous list"}
	}

	c.JSON(http.StatusOK, response)
}

// Approve POST RouteGroup + AdminGroup + ApproveRoute. Возвращает подтверждение, ничего не изменяя.
func (h *ReviewHandler) Approve(c *gin.Context) {
	h.request(c, domain.DecisionApprove)
}

// Reject POST RouteGroup + AdminGroup + RejectRoute.
func (h *ReviewHandler) Reject(c *gin.Context) {
	h.request(c, domain.DecisionReject)
}

func (h *ReviewHandler) request(c *gin.Context, decision domain.DecisionType) {
	paymentID, ok := bindUUIDParam(c, "id")
	if !ok {
		return
	}

	var params DecisionParams
	// тело необязательно
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil && !errors.Is(bindErr, io.EOF) {
		abortWithBindError(c, bindErr)
		return
	}

	ctrl, ok := h.controller(c)
	if !ok {
		return
	}

	conf, err := ctrl.Request(paymentID, decision, params.Notes)
	if err != nil {
		_ = c.AbortWithError(reviewErrorStatus(err), err).SetType(gin.ErrorTypePublic)
		return
	}

	c.JSON(http.StatusOK, ConfirmationResponse{
		Token:         conf.Token,
		PaymentID:     conf.PaymentID,
		Decision:      conf.Decision,
		Amount:        conf.Amount,
		SubmitterName: conf.SubmitterName,
		Prompt:        conf.Prompt,
		ExpiresAt:     conf.ExpiresAt,
	})
}

// Confirm POST RouteGroup + AdminGroup + ConfirmationsRoute. Выполняет подтвержденное решение.
func (h *ReviewHandler) Confirm(c *gin.Context) {
	token, ok := bindUUIDParam(c, "token")
	if !ok {
		return
	}

	ctrl, ok := h.controller(c)
	if !ok {
		return
	}

	notice, err := ctrl.Confirm(c, token)
	if err != nil {
		status := reviewErrorStatus(err)
		if notice.Message == "" {
			_ = c.AbortWithError(status, err).SetType(gin.ErrorTypePublic)
			return
		}
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.AbortWithStatusJSON(status, gin.H{"notice": newNoticeResponse(notice)})
		return
	}

	response := newReviewResponse(ctrl.View())
	response.Notice = newNoticeResponse(notice)
	c.JSON(http.StatusOK, response)
}

// Cancel DELETE RouteGroup + AdminGroup + ConfirmationsRoute.
func (h *ReviewHandler) Cancel(c *gin.Context) {
	token, ok := bindUUIDParam(c, "token")
	if !ok {
		return
	}

	ctrl, ok := h.controller(c)
	if !ok {
		return
	}

	ctrl.Cancel(token)
	c.AbortWithStatus(http.StatusNoContent)
}

// Audit GET RouteGroup + AdminGroup + AuditRoute. Журнал решений по платежу.
func (h *ReviewHandler) Audit(c *gin.Context) {
	paymentID, ok := bindUUIDParam(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	entries, err := h.auditSvs.AuditTrail(reqCtx, paymentID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	if len(entries) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	var response = make([]AuditEntryResponse, len(entries))
	for i := range entries {
		details, detailsErr := entries[i].PaymentDetails()
		if detailsErr != nil {
			_ = c.AbortWithError(http.StatusInternalServerError, detailsErr).SetType(gin.ErrorTypePrivate)
			return
		}
		response[i] = AuditEntryResponse{
			ID:        entries[i].ID,
			CreatedAt: entries[i].CreatedAt,
			AdminID:   entries[i].AdminID,
			Action:    entries[i].Action,
			PaymentID: details.PaymentID,
			Notes:     details.Notes,
		}
	}

	c.JSON(http.StatusOK, response)
}

func (h *ReviewHandler) controller(c *gin.Context) (ReviewController, bool) {
	ctrl, err := h.sessions.For(getAdminSessionFromContext(c))
	if err != nil {
		if errors.Is(err, review.ErrNotAdmin) {
			c.Redirect(http.StatusSeeOther, middlewares.AdminRedirectLocation)
			c.Abort()
			return nil, false
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return nil, false
	}
	return ctrl, true
}

func reviewErrorStatus(err error) int {
	switch {
	case errors.Is(err, review.ErrBusy), errors.Is(err, domain.ErrAlreadyResolved):
		return http.StatusConflict
	case errors.Is(err, review.ErrConfirmationNotFound),
		errors.Is(err, review.ErrConfirmationExpired),
		errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrPermissionDenied), errors.Is(err, review.ErrNotAdmin):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidDecision):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

type reviewSessions struct {
	sessions *review.Sessions
}

// NewReviewSessions адаптер review.Sessions для обработчиков.
func NewReviewSessions(sessions *review.Sessions) ReviewSessions {
	return reviewSessions{sessions: sessions}
}

func (r reviewSessions) For(session review.AdminSession) (ReviewController, error) {
	ctrl, err := r.sessions.For(session)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return ctrl, nil
}
