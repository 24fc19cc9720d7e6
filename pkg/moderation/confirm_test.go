package moderation

import (
	"testing"
	"time"

	"github.com/OrionStudios/JarvisBotGo/pkg/models"
)

func TestConfirmRegistryResolveOnce(t *testing.T) {
	r := newConfirmRegistry(time.Minute)
	token := r.Add(kindResetWarns, "123", "someone")

	action, ok := r.Resolve(token)
	if !ok {
		t.Fatal("expected token to resolve")
	}
	if action.kind != kindResetWarns {
		t.Errorf("kind = %q, want %q", action.kind, kindResetWarns)
	}
	if action.targetID != "123" {
		t.Errorf("targetID = %q, want %q", action.targetID, "123")
	}

	if _, ok := r.Resolve(token); ok {
		t.Error("token resolved twice")
	}
}

func TestConfirmRegistryUnknownToken(t *testing.T) {
	r := newConfirmRegistry(time.Minute)
	if _, ok := r.Resolve("no-such-token"); ok {
		t.Error("unknown token should not resolve")
	}
}

func TestConfirmRegistryExpiry(t *testing.T) {
	r := newConfirmRegistry(10 * time.Millisecond)
	token := r.Add(kindDelWarn, "", "")

	deadline := time.Now().Add(time.Second)
	for r.Len() > 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	if _, ok := r.Resolve(token); ok {
		t.Error("expired token should not resolve")
	}
}

func TestUndoBufferTakeOnce(t *testing.T) {
	b := newUndoBuffer(time.Minute)
	b.Store([]models.Warning{{ID: "w1", UserID: "u1"}})

	snap, ok := b.Take()
	if !ok {
		t.Fatal("expected snapshot")
	}
	if len(snap) != 1 || snap[0].ID != "w1" {
		t.Errorf("unexpected snapshot: %+v", snap)
	}

	if _, ok := b.Take(); ok {
		t.Error("snapshot taken twice")
	}
}

func TestUndoBufferOverwrite(t *testing.T) {
	b := newUndoBuffer(time.Minute)
	b.Store([]models.Warning{{ID: "old"}})
	b.Store([]models.Warning{{ID: "new"}})

	snap, ok := b.Take()
	if !ok {
		t.Fatal("expected snapshot")
	}
	if len(snap) != 1 || snap[0].ID != "new" {
		t.Errorf("expected latest snapshot, got %+v", snap)
	}
}

func TestUndoBufferExpires(t *testing.T) {
	b := newUndoBuffer(10 * time.Millisecond)
	b.Store([]models.Warning{{ID: "w1"}})

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		b.mu.Lock()
		gone := b.snapshot == nil
		b.mu.Unlock()
		if gone {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	if _, ok := b.Take(); ok {
		t.Error("expired snapshot should not be available")
	}
}
