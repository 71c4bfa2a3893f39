package api

import (
	"errors"
	"net/http"

	"github.com/fsdevblog/cash-review/internal/domain"
	"github.com/fsdevblog/cash-review/internal/review"
	"github.com/fsdevblog/cash-review/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// getUserIDFromContext берет из контекста gin ID текущего юзера. ID устанавливается в
// middlewares.AuthRequired. Если значения нет, вернется uuid.Nil.
func getUserIDFromContext(c *gin.Context) uuid.UUID {
	value, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return uuid.Nil
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return userID
}

func getAdminSessionFromContext(c *gin.Context) review.AdminSession {
	role, _ := c.Get(middlewares.CurrentUserRoleKey)
	roleType, _ := role.(domain.RoleType)
	return review.AdminSession{
		AdminID: getUserIDFromContext(c),
		Role:    roleType,
	}
}

// bindUUIDParam разбирает параметр пути. При ошибке запрос прерывается с 400.
func bindUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("invalid "+name)).
			SetType(gin.ErrorTypePublic)
		return uuid.Nil, false
	}
	return id, true
}

// abortWithBindError ошибки валидации отдаются как 422, ошибки разбора тела как 400.
func abortWithBindError(c *gin.Context, bindErr error) {
	var valErrs validator.ValidationErrors
	if errors.As(bindErr, &valErrs) {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs.Error()})
		return
	}
	_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
}
