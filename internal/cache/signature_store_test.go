package cache

import (
	"testing"
	"time"
)

func TestSignatureStore_PutAndGet(t *testing.T) {
	store := NewSignatureStore(SignatureTTL)

	store.Put("conv-1", "sig-abc")
	got, ok := store.Get("conv-1")
	if !ok || got != "sig-abc" {
		t.Errorf("expected sig-abc, got %q (found=%v)", got, ok)
	}
}

func TestSignatureStore_ConversationsAreIsolated(t *testing.T) {
	store := NewSignatureStore(SignatureTTL)

	store.Put("conv-a", "sig-a")
	store.Put("conv-b", "sig-b")

	if got, _ := store.Get("conv-a"); got != "sig-a" {
		t.Errorf("conversation a: expected sig-a, got %q", got)
	}
	if got, _ := store.Get("conv-b"); got != "sig-b" {
		t.Errorf("conversation b: expected sig-b, got %q", got)
	}
	if _, ok := store.Get("conv-c"); ok {
		t.Error("expected miss for unknown conversation")
	}
}

func TestSignatureStore_LatestWriteWins(t *testing.T) {
	store := NewSignatureStore(SignatureTTL)

	store.Put("conv-1", "old")
	store.Put("conv-1", "new")
	if got, _ := store.Get("conv-1"); got != "new" {
		t.Errorf("expected new, got %q", got)
	}
}

func TestSignatureStore_EmptyInputsIgnored(t *testing.T) {
	store := NewSignatureStore(SignatureTTL)

	store.Put("", "sig")
	store.Put("conv-1", "")
	if _, ok := store.Get("conv-1"); ok {
		t.Error("expected no entry after empty-signature put")
	}
	if _, ok := store.Get(""); ok {
		t.Error("expected miss for empty conversation ID")
	}
}

func TestSignatureStore_Expiry(t *testing.T) {
	store := NewSignatureStore(time.Hour)
	now := time.Now()
	store.now = func() time.Time { return now }

	store.Put("conv-1", "sig")

	now = now.Add(30 * time.Minute)
	if _, ok := store.Get("conv-1"); !ok {
		t.Fatal("expected entry before TTL")
	}

	// The read above slid the timestamp forward; expire from there.
	now = now.Add(61 * time.Minute)
	if _, ok := store.Get("conv-1"); ok {
		t.Error("expected entry expired after TTL")
	}
}

func TestSignatureStore_Clear(t *testing.T) {
	store := NewSignatureStore(SignatureTTL)

	store.Put("conv-1", "sig-1")
	store.Put("conv-2", "sig-2")

	store.Clear("conv-1")
	if _, ok := store.Get("conv-1"); ok {
		t.Error("expected conv-1 cleared")
	}
	if _, ok := store.Get("conv-2"); !ok {
		t.Error("expected conv-2 kept")
	}

	store.Clear("")
	if _, ok := store.Get("conv-2"); ok {
		t.Error("expected all entries cleared")
	}
}
