package domain

type PaymentStatusType string

const (
	PaymentStatusPending  PaymentStatusType = "pending"
	PaymentStatusApproved PaymentStatusType = "approved"
	PaymentStatusRejected PaymentStatusType = "rejected"
)

// IsResolved сообщает, что платеж уже прошел единственный допустимый переход из pending.
func (s PaymentStatusType) IsResolved() bool {
	return s == PaymentStatusApproved || s == PaymentStatusRejected
}

type RoleType string

const (
	RoleAdmin RoleType = "admin"
	RoleUser  RoleType = "user"
)

type DecisionType string

const (
	DecisionApprove DecisionType = "approve"
	DecisionReject  DecisionType = "reject"
)

// Valid проверяет, что решение входит в множество {approve, reject}.
func (d DecisionType) Valid() bool {
	return d == DecisionApprove || d == DecisionReject
}

// Status возвращает терминальный статус платежа, в который переводит решение.
func (d DecisionType) Status() PaymentStatusType {
	if d == DecisionApprove {
		return PaymentStatusApproved
	}
	return PaymentStatusRejected
}

// Action возвращает тэг записи журнала администратора, например approve_cash_payment.
func (d DecisionType) Action() AdminActionType {
	return AdminActionType(string(d) + "_cash_payment")
}

type AdminActionType string

const (
	AdminActionApproveCashPayment AdminActionType = "approve_cash_payment"
	AdminActionRejectCashPayment  AdminActionType = "reject_cash_payment"
)
