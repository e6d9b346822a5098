package memcache_fx

import (
	"go.uber.org/fx"

	mem "arogya/pkg/memcache"
)

var Module = fx.Provide(provideLookupCache)

func provideLookupCache() mem.LookupCache {
	return mem.NewLookupCache()
}
