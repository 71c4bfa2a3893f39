package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID                uuid.UUID
	CreatedAt         time.Time
	FullName          string
	Email             string
	MobileNumber      string
	Role              RoleType
	EncryptedPassword string
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

type CashPayment struct {
	ID          uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Amount      decimal.Decimal
	Status      PaymentStatusType
	SubmittedBy uuid.UUID
	ApprovedBy  *uuid.UUID
	ApprovedAt  *time.Time
	AdminNotes  string
	// Submitter заполняется только выборками с join на users.
	Submitter *User
}

// DisplayDate дата, которую показываем оператору: время решения, если оно есть, иначе время подачи.
func (p *CashPayment) DisplayDate() time.Time {
	if p.ApprovedAt != nil {
		return *p.ApprovedAt
	}
	return p.CreatedAt
}

type AdminLogDetails struct {
	PaymentID uuid.UUID `json:"payment_id"`
	Notes     string    `json:"notes"`
}

type AdminLogEntry struct {
	ID        int64
	CreatedAt time.Time
	AdminID   uuid.UUID
	Action    AdminActionType
	Details   json.RawMessage
}

// PaymentDetails разбирает details записи журнала. Возвращает ошибку, если payload не соответствует
// формату записей о решениях по платежам.
func (e *AdminLogEntry) PaymentDetails() (*AdminLogDetails, error) {
	var d AdminLogDetails
	if err := json.Unmarshal(e.Details, &d); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &d, nil
}
