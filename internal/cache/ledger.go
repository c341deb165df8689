package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const codeKeyPrefix = "reset-code:"

// CodeLedger tracks live password-reset codes so each one can be redeemed at
// most once. The entry expires together with the code itself; consuming
// deletes it, which is what makes a replayed code terminal.
type CodeLedger struct {
	rdb *redis.Client
}

func NewCodeLedger(rdb *redis.Client) *CodeLedger {
	return &CodeLedger{rdb: rdb}
}

func (l *CodeLedger) Put(ctx context.Context, id string, ttl time.Duration) error {
	return l.rdb.Set(ctx, codeKeyPrefix+id, "1", ttl).Err()
}

func (l *CodeLedger) Exists(ctx context.Context, id string) (bool, error) {
	n, err := l.rdb.Exists(ctx, codeKeyPrefix+id).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Consume removes the entry, reporting whether it was still present.
func (l *CodeLedger) Consume(ctx context.Context, id string) (bool, error) {
	n, err := l.rdb.Del(ctx, codeKeyPrefix+id).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
