// spelling/cache.go
package spelling

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the number of (word, language) lookups kept in memory.
const DefaultCacheSize = 16384

type lookupKey struct {
	word     string
	language string
}

// CachedDictionary memoizes lookups of another Dictionary. Errors are never cached.
type CachedDictionary struct {
	next  Dictionary
	cache *lru.Cache[lookupKey, Lookup]
}

// NewCachedDictionary wraps next with an LRU cache of the given size.
func NewCachedDictionary(next Dictionary, size int) (*CachedDictionary, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[lookupKey, Lookup](size)
	if err != nil {
		return nil, err
	}
	return &CachedDictionary{next: next, cache: cache}, nil
}

// Check implements Dictionary. Returned suggestion slices are shared and must not be modified.
func (c *CachedDictionary) Check(word, language string) (Lookup, error) {
	key := lookupKey{word: word, language: language}
	if l, ok := c.cache.Get(key); ok {
		return l, nil
	}
	l, err := c.next.Check(word, language)
	if err != nil {
		return Lookup{}, err
	}
	c.cache.Add(key, l)
	return l, nil
}

func (c *CachedDictionary) Languages() []string { return c.next.Languages() }
