// Package cache stores thought signatures observed on streaming responses so
// that subsequent tool-call turns can re-attach them. Signatures are keyed by
// conversation, preventing a signature from one in-flight conversation leaking
// into another under concurrent load.
package cache

import (
	"sync"
	"time"
)

const (
	// SignatureTTL is how long a stored signature stays valid.
	SignatureTTL = 3 * time.Hour

	// cleanupInterval controls how often stale entries are purged.
	cleanupInterval = 10 * time.Minute
)

// signatureEntry holds a cached thought signature with its last-access time.
type signatureEntry struct {
	signature string
	timestamp time.Time
}

// SignatureStore is a per-conversation thought-signature cache with sliding
// expiration. The zero value is not usable; construct with NewSignatureStore.
type SignatureStore struct {
	mu      sync.Mutex
	entries map[string]signatureEntry
	ttl     time.Duration
	now     func() time.Time

	cleanupOnce sync.Once
}

// NewSignatureStore constructs a store with the given TTL. A TTL of zero means
// entries never expire.
func NewSignatureStore(ttl time.Duration) *SignatureStore {
	return &SignatureStore{
		entries: make(map[string]signatureEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// defaultStore is the process-wide store shared between the streaming side
// (writer) and the request translator (reader).
var defaultStore = NewSignatureStore(SignatureTTL)

// Default exposes the shared store.
func Default() *SignatureStore {
	return defaultStore
}

// Put stores a signature for a conversation. Empty conversation IDs or
// signatures are ignored.
func (s *SignatureStore) Put(conversationID, signature string) {
	if conversationID == "" || signature == "" {
		return
	}
	s.cleanupOnce.Do(s.startCleanup)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[conversationID] = signatureEntry{signature: signature, timestamp: s.now()}
}

// Get returns the most recently stored signature for a conversation, refreshing
// its TTL on access. The second return reports whether a live entry was found.
func (s *SignatureStore) Get(conversationID string) (string, bool) {
	if conversationID == "" {
		return "", false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[conversationID]
	if !ok {
		return "", false
	}
	now := s.now()
	if s.ttl > 0 && now.Sub(entry.timestamp) > s.ttl {
		delete(s.entries, conversationID)
		return "", false
	}

	// Sliding expiration.
	entry.timestamp = now
	s.entries[conversationID] = entry
	return entry.signature, true
}

// Clear removes the entry for one conversation, or every entry when the ID is
// empty.
func (s *SignatureStore) Clear(conversationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if conversationID == "" {
		s.entries = make(map[string]signatureEntry)
		return
	}
	delete(s.entries, conversationID)
}

// startCleanup launches a background goroutine that periodically removes
// expired entries.
func (s *SignatureStore) startCleanup() {
	if s.ttl <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()
		for range ticker.C {
			s.purgeExpired()
		}
	}()
}

// purgeExpired removes every entry older than the TTL.
func (s *SignatureStore) purgeExpired() {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, entry := range s.entries {
		if now.Sub(entry.timestamp) > s.ttl {
			delete(s.entries, id)
		}
	}
}
