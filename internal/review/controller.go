// Package review процесс рассмотрения заявок на наличную оплату администратором:
// выборка и разбиение списка, подтверждение решения, маркер занятости и уведомления о результате.
package review

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fsdevblog/cash-review/internal/domain"
	"github.com/fsdevblog/cash-review/internal/metrics"
	"github.com/fsdevblog/cash-review/internal/service"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	DefaultConfirmationTTL = 5 * time.Minute
	DefaultResolveTimeout  = 10 * time.Second
)

// Controller состояние экрана рассмотрения одного администратора.
type Controller struct {
	session  AdminSession
	lister   PaymentLister
	resolver Resolver
	locker   Locker
	observer Observer
	l        *logrus.Entry

	confirmationTTL time.Duration
	resolveTimeout  time.Duration
	now             func() time.Time

	mu sync.Mutex
	// seq номер последнего запущенного обновления, appliedSeq - последнего примененного.
	seq           uint64
	appliedSeq    uint64
	state         State
	payments      []domain.CashPayment
	view          View
	busy          map[uuid.UUID]struct{}
	confirmations map[uuid.UUID]Confirmation
}

func NewController(
	session AdminSession,
	lister PaymentLister,
	resolver Resolver,
	locker Locker,
	l *logrus.Logger,
) (*Controller, error) {
	if !session.IsAdmin() {
		return nil, ErrNotAdmin
	}
	return &Controller{
		session:  session,
		lister:   lister,
		resolver: resolver,
		locker:   locker,
		observer: nopObserver{},
		l: l.WithFields(logrus.Fields{
			"component": "review",
			"admin_id":  session.AdminID.String(),
		}),
		confirmationTTL: DefaultConfirmationTTL,
		resolveTimeout:  DefaultResolveTimeout,
		now:             time.Now,
		state:           StateIdle,
		view:            View{Pending: []domain.CashPayment{}, Processed: []domain.CashPayment{}},
		busy:            make(map[uuid.UUID]struct{}),
		confirmations:   make(map[uuid.UUID]Confirmation),
	}, nil
}

func (c *Controller) SetConfirmationTTL(ttl time.Duration) *Controller {
	if ttl > 0 {
		c.confirmationTTL = ttl
	}
	return c
}

func (c *Controller) SetResolveTimeout(timeout time.Duration) *Controller {
	if timeout > 0 {
		c.resolveTimeout = timeout
	}
	return c
}

func (c *Controller) SetObserver(o Observer) *Controller {
	if o != nil {
		c.observer = o
	}
	return c
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// View последнее разбиение списка.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// IsBusy сообщает, обрабатывается ли сейчас решение по платежу этим или любым другим контроллером,
// разделяющим тот же Locker.
func (c *Controller) IsBusy(ctx context.Context, id uuid.UUID) (bool, error) {
	c.mu.Lock()
	_, own := c.busy[id]
	c.mu.Unlock()
	if own {
		return true, nil
	}

	locked, err := c.locker.IsLocked(ctx, id.String())
	if err != nil {
		return false, fmt.Errorf("check busy marker of payment %s: %w", id, err)
	}
	return locked, nil
}

// Refresh загружает список заново. При ошибке прежний список сохраняется и возвращается с признаком Stale.
// Результат более старого запроса, завершившегося позже нового, не применяется.
func (c *Controller) Refresh(ctx context.Context) (View, error) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.state = StateLoading
	c.mu.Unlock()

	payments, err := c.lister.ListForReview(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.observer.ObserveFetch(0, err)
		if seq > c.appliedSeq {
			c.view.Stale = true
		}
		c.settle(seq)
		c.l.WithError(err).Warn("failed to load cash payments, keeping previous list")
		return c.view, fmt.Errorf("refresh review list: %w", err)
	}

	if seq > c.appliedSeq {
		c.appliedSeq = seq
		c.payments = payments
		pending, processed := Partition(payments)
		c.view = View{
			Pending:     pending,
			Processed:   processed,
			RefreshedAt: c.now(),
		}
		c.observer.ObserveFetch(len(pending), nil)
	}
	c.settle(seq)
	return c.view, nil
}

// settle вызывается под c.mu.
func (c *Controller) settle(seq uint64) {
	if seq != c.seq {
		// идет более новое обновление
		return
	}
	if c.appliedSeq > 0 {
		c.state = StateReady
		return
	}
	c.state = StateIdle
}

func (c *Controller) RequestApprove(id uuid.UUID, notes string) (Confirmation, error) {
	return c.Request(id, domain.DecisionApprove, notes)
}

func (c *Controller) RequestReject(id uuid.UUID, notes string) (Confirmation, error) {
	return c.Request(id, domain.DecisionReject, notes)
}

// Request готовит подтверждение решения по платежу из текущего списка. Данные не изменяются.
func (c *Controller) Request(id uuid.UUID, decision domain.DecisionType, notes string) (Confirmation, error) {
	if !decision.Valid() {
		return Confirmation{}, fmt.Errorf("%w: %q", domain.ErrInvalidDecision, decision)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.purgeExpired()

	payment := c.find(id)
	if payment == nil {
		return Confirmation{}, fmt.Errorf("cash payment %s: %w", id, domain.ErrRecordNotFound)
	}
	if payment.Status.IsResolved() {
		return Confirmation{}, fmt.Errorf("cash payment %s: %w", id, domain.ErrAlreadyResolved)
	}

	var submitter string
	if payment.Submitter != nil {
		submitter = payment.Submitter.FullName
	}

	conf := Confirmation{
		Token:         uuid.New(),
		PaymentID:     payment.ID,
		Decision:      decision,
		Notes:         notes,
		Amount:        payment.Amount,
		SubmitterName: submitter,
		Prompt: fmt.Sprintf("%s cash payment of %s from %s?",
			decisionVerb(decision), payment.Amount.StringFixed(2), submitter),
		ExpiresAt: c.now().Add(c.confirmationTTL),
	}
	c.confirmations[conf.Token] = conf
	return conf, nil
}

// Cancel отменяет подтверждение. Неизвестный токен игнорируется.
func (c *Controller) Cancel(token uuid.UUID) {
	c.mu.Lock()
	delete(c.confirmations, token)
	c.mu.Unlock()
}

// Confirm выполняет подтвержденное решение. Подтверждение расходуется в любом случае.
// При ошибке хранилища возвращается уведомление с Success=false и сама ошибка, список не меняется.
func (c *Controller) Confirm(ctx context.Context, token uuid.UUID) (Notice, error) {
	c.mu.Lock()
	conf, ok := c.confirmations[token]
	delete(c.confirmations, token)
	c.mu.Unlock()

	if !ok {
		return Notice{}, ErrConfirmationNotFound
	}
	if c.now().After(conf.ExpiresAt) {
		return Notice{}, ErrConfirmationExpired
	}
	return c.resolve(ctx, conf)
}

// Decide последовательность Request, вопрос оператору и Confirm.
func (c *Controller) Decide(
	ctx context.Context,
	id uuid.UUID,
	decision domain.DecisionType,
	notes string,
	confirm ConfirmFunc,
) (Notice, error) {
	conf, err := c.Request(id, decision, notes)
	if err != nil {
		return Notice{}, err
	}
	if confirm == nil || !confirm(conf) {
		c.Cancel(conf.Token)
		return Notice{}, ErrNotConfirmed
	}
	return c.Confirm(ctx, conf.Token)
}

func (c *Controller) Approve(ctx context.Context, id uuid.UUID, notes string, confirm ConfirmFunc) (Notice, error) {
	return c.Decide(ctx, id, domain.DecisionApprove, notes, confirm)
}

func (c *Controller) Reject(ctx context.Context, id uuid.UUID, notes string, confirm ConfirmFunc) (Notice, error) {
	return c.Decide(ctx, id, domain.DecisionReject, notes, confirm)
}

func (c *Controller) resolve(ctx context.Context, conf Confirmation) (Notice, error) {
	// отправленное изменение не отменяется вместе с запросом оператора
	opCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.resolveTimeout)
	defer cancel()

	key := conf.PaymentID.String()
	log := c.l.WithFields(logrus.Fields{
		"payment_id": key,
		"decision":   string(conf.Decision),
	})

	locked, err := c.locker.TryLock(opCtx, key)
	if err != nil {
		c.observer.ObserveResolution(string(conf.Decision), metrics.OutcomeFailure)
		log.WithError(err).Error("failed to mark payment busy")
		return c.failure(conf, err), fmt.Errorf("mark payment %s busy: %w", key, err)
	}
	if !locked {
		c.observer.ObserveResolution(string(conf.Decision), metrics.OutcomeBusy)
		log.Debug("payment is busy, decision ignored")
		return Notice{}, fmt.Errorf("%s cash payment %s: %w", conf.Decision, key, ErrBusy)
	}

	c.mu.Lock()
	c.busy[conf.PaymentID] = struct{}{}
	c.mu.Unlock()

	resolveErr := c.resolver.Resolve(opCtx, service.ResolveArgs{
		PaymentID: conf.PaymentID,
		Decision:  conf.Decision,
		AdminID:   c.session.AdminID,
		Notes:     conf.Notes,
	})

	// маркер снимается даже если время на решение истекло
	c.release(context.WithoutCancel(opCtx), conf.PaymentID, log)

	if resolveErr != nil {
		c.observer.ObserveResolution(string(conf.Decision), metrics.OutcomeFailure)
		log.WithError(resolveErr).Error("failed to resolve cash payment")
		return c.failure(conf, resolveErr), resolveErr
	}

	c.observer.ObserveResolution(string(conf.Decision), metrics.OutcomeSuccess)
	log.Info("cash payment resolved")

	// ошибка обновления уже записана в лог, список помечен устаревшим
	_, _ = c.Refresh(opCtx)

	return Notice{
		Success:   true,
		PaymentID: conf.PaymentID,
		Decision:  conf.Decision,
		Message:   fmt.Sprintf("payment %s %s", conf.PaymentID, conf.Decision.Status()),
	}, nil
}

func (c *Controller) release(ctx context.Context, id uuid.UUID, log *logrus.Entry) {
	c.mu.Lock()
	delete(c.busy, id)
	c.mu.Unlock()

	if err := c.locker.Unlock(ctx, id.String()); err != nil {
		log.WithError(err).Warn("failed to release busy marker")
	}
}

func (c *Controller) failure(conf Confirmation, err error) Notice {
	reason := err.Error()
	switch {
	case errors.Is(err, domain.ErrAlreadyResolved):
		reason = "payment was already resolved"
	case errors.Is(err, domain.ErrRecordNotFound):
		reason = "payment not found"
	case errors.Is(err, domain.ErrPermissionDenied):
		reason = "permission denied"
	}
	return Notice{
		PaymentID: conf.PaymentID,
		Decision:  conf.Decision,
		Message:   fmt.Sprintf("%s payment %s failed: %s", conf.Decision, conf.PaymentID, reason),
	}
}

// find вызывается под c.mu.
func (c *Controller) find(id uuid.UUID) *domain.CashPayment {
	for i := range c.payments {
		if c.payments[i].ID == id {
			p := c.payments[i]
			return &p
		}
	}
	return nil
}

// purgeExpired вызывается под c.mu.
func (c *Controller) purgeExpired() {
	now := c.now()
	for token, conf := range c.confirmations {
		if now.After(conf.ExpiresAt) {
			delete(c.confirmations, token)
		}
	}
}

func decisionVerb(d domain.DecisionType) string {
	if d == domain.DecisionReject {
		return "Reject"
	}
	return "Approve"
}

type nopObserver struct{}

func (nopObserver) ObserveResolution(string, string) {}
func (nopObserver) ObserveFetch(int, error)          {}
