package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// KV is a thin JSON codec over redis. Callers treat any failure as absence
// of state, so errors surface here but are swallowed into booleans one
// layer up.
type KV struct {
	Client *redis.Client
}

func NewKV(client *redis.Client) *KV {
	return &KV{Client: client}
}

func (k *KV) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := k.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv get %s: %w", key, err)
	}
	return val, true, nil
}

func (k *KV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := k.Client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("kv set %s: %w", key, err)
	}
	return nil
}

// GetJSON decodes the value at key into dest. The boolean reports presence.
func (k *KV) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	raw, ok, err := k.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("kv decode %s: %w", key, err)
	}
	return true, nil
}

func (k *KV) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kv encode %s: %w", key, err)
	}
	return k.Set(ctx, key, string(payload), ttl)
}

func (k *KV) Delete(ctx context.Context, key string) (bool, error) {
	n, err := k.Client.Del(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("kv delete %s: %w", key, err)
	}
	return n > 0, nil
}

// Expire refreshes a key's TTL without touching its value.
func (k *KV) Expire(ctx context.Context, key string, ttl time.Duration) error {
	if err := k.Client.Expire(ctx, key, ttl).Err(); err != nil {
		return fmt.Errorf("kv expire %s: %w", key, err)
	}
	return nil
}
