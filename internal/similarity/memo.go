package similarity

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
)

// DefaultMemoSize bounds the number of cached pairs. A drill session
// touches a small vocabulary, so this is rarely reached.
const DefaultMemoSize = 4096

type pair struct {
	a, b string
}

// Memo caches the scores of another Scorer per (a, b) pair.
type Memo struct {
	inner Scorer
	cache *lru.Cache
}

// NewMemo wraps inner with a bounded LRU cache holding up to size pairs.
// A non-positive size selects DefaultMemoSize.
func NewMemo(inner Scorer, size int) (*Memo, error) {
	if size <= 0 {
		size = DefaultMemoSize
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("create score cache: %w", err)
	}
	return &Memo{inner: inner, cache: cache}, nil
}

// Score returns the cached score for (a, b), computing it on a miss.
func (m *Memo) Score(a, b string) int {
	key := pair{a: a, b: b}
	if v, ok := m.cache.Get(key); ok {
		return v.(int)
	}
	s := m.inner.Score(a, b)
	m.cache.Add(key, s)
	return s
}

// Len reports the number of cached pairs.
func (m *Memo) Len() int {
	return m.cache.Len()
}
