package db

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestDatabaseWithoutURI(t *testing.T) {
	p := NewProvider("", "realEstate", time.Second)
	if _, err := p.Database(context.Background()); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if p.Connected() {
		t.Fatal("provider should not report a connection")
	}
}

func TestDatabaseUnreachable(t *testing.T) {
	// Nothing listens on port 1; server selection fails within the timeout.
	p := NewProvider("mongodb://127.0.0.1:1/?directConnection=true", "realEstate", 300*time.Millisecond)
	if _, err := p.Database(context.Background()); err == nil {
		t.Fatal("expected connection error")
	}
	if p.Connected() {
		t.Fatal("failed attempt must not be cached")
	}
}

func TestCloseWithoutConnect(t *testing.T) {
	p := NewProvider("mongodb://127.0.0.1:27017", "realEstate", time.Second)
	if err := p.Close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestDefaultTimeout(t *testing.T) {
	p := NewProvider("mongodb://127.0.0.1:27017", "realEstate", 0)
	if p.Timeout() != 10*time.Second {
		t.Fatalf("expected 10s default, got %s", p.Timeout())
	}
}
