package service

import (
	"fmt"

	"github.com/fsdevblog/cash-review/pkg/uow"
)

type AppServices struct {
	UserService        *UserService
	CashPaymentService *CashPaymentService
	ApprovalService    *ApprovalService
}

func Factory(unitOfWork uow.UOW, jwtSecret []byte, hasher PasswordHasher) (*AppServices, error) {
	userService, userServiceErr := NewUserService(unitOfWork, jwtSecret, hasher)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	paymentService, paymentServiceErr := NewCashPaymentService(unitOfWork)
	if paymentServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", paymentServiceErr.Error())
	}

	approvalService, approvalServiceErr := NewApprovalService(unitOfWork)
	if approvalServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", approvalServiceErr.Error())
	}

	return &AppServices{
		UserService:        userService,
		CashPaymentService: paymentService,
		ApprovalService:    approvalService,
	}, nil
}
