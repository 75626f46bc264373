package infra

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const prefijoRevocado = "sesion:revocada:"

// Revocaciones keeps logged-out token ids in Redis until the token would
// have expired anyway.
type Revocaciones struct{ rdb *redis.Client }

func NewRevocaciones(rdb *redis.Client) *Revocaciones { return &Revocaciones{rdb: rdb} }

func (r *Revocaciones) Revocar(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.rdb.Set(ctx, prefijoRevocado+tokenID, 1, ttl).Err()
}

func (r *Revocaciones) Revocado(ctx context.Context, tokenID string) (bool, error) {
	err := r.rdb.Get(ctx, prefijoRevocado+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
