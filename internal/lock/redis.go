package lock

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "cash-review:busy:"
	defaultTTL       = time.Minute
	pingTimeout      = 5 * time.Second
)

// unlockScript снимает маркер, только если он поставлен этим же экземпляром.
var unlockScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// Redis маркеры занятости, общие для всех экземпляров сервиса. Маркер живет не дольше ttl, чтобы
// упавший процесс не заблокировал платеж навсегда.
type Redis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	owner  string
}

// NewRedis подключается к redis по адресу host:port или redis:// URL и проверяет соединение.
func NewRedis(ctx context.Context, addr string) (*Redis, error) {
	var opts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil, errors.Wrapf(err, "parse redis url %q", addr)
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr}
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "ping redis")
	}
	return NewRedisWithClient(client), nil
}

func NewRedisWithClient(client *redis.Client) *Redis {
	return &Redis{
		client: client,
		prefix: defaultKeyPrefix,
		ttl:    defaultTTL,
		owner:  uuid.NewString(),
	}
}

// SetTTL задает время жизни маркера.
func (r *Redis) SetTTL(ttl time.Duration) *Redis {
	r.ttl = ttl
	return r
}

func (r *Redis) TryLock(ctx context.Context, key string) (bool, error) {
	ok, err := r.client.SetNX(ctx, r.prefix+key, r.owner, r.ttl).Result()
	if err != nil {
		return false, errors.Wrapf(err, "lock %s", key)
	}
	return ok, nil
}

func (r *Redis) Unlock(ctx context.Context, key string) error {
	if err := unlockScript.Run(ctx, r.client, []string{r.prefix + key}, r.owner).Err(); err != nil {
		return errors.Wrapf(err, "unlock %s", key)
	}
	return nil
}

func (r *Redis) IsLocked(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, r.prefix+key).Result()
	if err != nil {
		return false, errors.Wrapf(err, "check lock %s", key)
	}
	return n > 0, nil
}

func (r *Redis) Close() error {
	return r.client.Close() //nolint:wrapcheck
}
