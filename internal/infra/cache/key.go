// Package cache provides response-cache implementations and deterministic
// key construction for upstream queries.
package cache

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
)

// Key builds a deterministic cache key from an endpoint path and its
// parameter set. Parameters are sorted before hashing so equivalent queries
// issued with differently-ordered parameters collide on the same key.
func Key(endpoint string, params map[string]string) string {
	pairs := make([]string, 0, len(params))
	for k, v := range params {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)

	h := fnv.New64a()
	_, _ = h.Write([]byte(strings.Join(pairs, "&")))

	return fmt.Sprintf("%s:%016x", strings.Trim(endpoint, "/"), h.Sum64())
}
