package repoargs

import "github.com/fsdevblog/cash-review/internal/domain"

type CreateUser struct {
	FullName     string
	Email        string
	MobileNumber string
	Password     string
	Role         domain.RoleType
}
