package cache

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
)

// scanCount is the COUNT hint for each SCAN step.
const scanCount = 200

// deleteByPattern deletes all keys matching pattern using SCAN.
func deleteByPattern(ctx context.Context, rdb *redis.Client, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := rdb.Scan(ctx, cursor, pattern, scanCount).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			return nil
		}
	}
}

// safe escapes characters that are problematic for Redis keys and patterns.
func safe(s string) string {
	return keyEscaper.Replace(s)
}

var keyEscaper = strings.NewReplacer(
	" ", "_",
	":", "_",
	"*", "_",
	"?", "_",
	"[", "_",
	"]", "_",
)
