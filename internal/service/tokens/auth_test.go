package tokens

import (
	"testing"
	"time"

	"github.com/fsdevblog/cash-review/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	key := []byte("secret")
	id := uuid.New()

	token, err := GenerateUserJWT(id, domain.RoleAdmin, time.Hour, key)
	require.NoError(t, err)

	claims, err := ValidateUserJWT(token, key)
	require.NoError(t, err)
	assert.Equal(t, id, claims.ID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)

	_, err = ValidateUserJWT(token, []byte("another secret"))
	require.Error(t, err)
}

func TestValidateExpired(t *testing.T) {
	key := []byte("secret")

	token, err := GenerateUserJWT(uuid.New(), domain.RoleUser, -time.Minute, key)
	require.NoError(t, err)

	_, err = ValidateUserJWT(token, key)
	require.ErrorIs(t, err, ErrTokenExpired)
}
