package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var ErrNotConfigured = errors.New("db: connection string is empty")

// Provider lazily connects to MongoDB on first use and hands out the same
// database handle for the rest of the process.
type Provider struct {
	uri      string
	database string
	timeout  time.Duration

	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database
}

// NewProvider does not dial; the first Database call does.
func NewProvider(uri, database string, timeout time.Duration) *Provider {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Provider{uri: uri, database: database, timeout: timeout}
}

// Database returns the shared handle, connecting if needed. A failed
// connection attempt is not cached, so the next caller tries again.
func (p *Provider) Database(ctx context.Context) (*mongo.Database, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db != nil {
		return p.db, nil
	}
	if p.uri == "" {
		return nil, ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(p.uri).
		SetConnectTimeout(p.timeout).
		SetServerSelectionTimeout(p.timeout).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true}))
	if err != nil {
		return nil, fmt.Errorf("db: connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("db: ping: %w", err)
	}

	p.client = client
	p.db = client.Database(p.database)
	log.Printf("Connected to MongoDB (database: %s)", p.database)
	return p.db, nil
}

// Timeout is the per-operation budget callers should apply to queries.
func (p *Provider) Timeout() time.Duration {
	return p.timeout
}

// Connected reports whether a client has been established.
func (p *Provider) Connected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.client != nil
}

// Close disconnects the client if one was ever created.
func (p *Provider) Close(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client == nil {
		return nil
	}
	err := p.client.Disconnect(ctx)
	p.client = nil
	p.db = nil
	if err != nil {
		return fmt.Errorf("db: disconnect: %w", err)
	}
	return nil
}
