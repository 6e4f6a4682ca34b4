package shared

import (
	"context"
	"fmt"
	"math"
	"strings"

	"clearance/shared/cache"
	"clearance/shared/constant"
	"clearance/shared/dto"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// BuildCacheKey joins the prefix and parts with ':' skipping empty parts.
func BuildCacheKey(prefix string, parts ...string) string {
	key := []string{prefix}

	for _, part := range parts {
		if part == constant.Empty {
			continue
		}

		key = append(key, part)
	}

	return strings.Join(key, cacheKeySeparator)
}

// BuildCacheKeyWithQuery derives a key for a paginated listing.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filters ...string) string {
	parts := []string{
		fmt.Sprintf("page=%d", params.Page),
		fmt.Sprintf("limit=%d", params.Limit),
		fmt.Sprintf("sort=%s.%s", params.SortBy, params.SortDir),
	}

	return BuildCacheKey(prefix, append(parts, filters...)...)
}

// InvalidateCaches removes every key under prefix. Failures are logged, never returned.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
