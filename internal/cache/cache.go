package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for score caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// PairKey generates a cache key for a text pair. The pair is
// order-normalized before hashing so the cache itself enforces the
// symmetry contract: PairKey(a, b) == PairKey(b, a).
func PairKey(textA, textB string) string {
	if textB < textA {
		textA, textB = textB, textA
	}
	hash := sha256.New()
	hash.Write([]byte(textA))
	hash.Write([]byte{0})
	hash.Write([]byte(textB))
	return "lexaudit:sim:v1:" + hex.EncodeToString(hash.Sum(nil))
}
