package repoargs

import (
	"github.com/fsdevblog/cash-review/internal/domain"
	"github.com/google/uuid"
)

type CreateAdminLog struct {
	AdminID uuid.UUID
	Action  domain.AdminActionType
	Details domain.AdminLogDetails
}
