package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/OrionStudios/JarvisBotGo/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Database manages the MongoDB connection shared by the mongo-backed
// collections. When the connection drops, pending rewrites are queued and
// flushed once the reconnect loop brings it back.
type Database struct {
	client          *mongo.Client
	db              *mongo.Database
	connected       bool
	reconnectTicker *time.Ticker
	stopReconnect   chan struct{}
	mu              sync.RWMutex
	collections     map[string]*mongo.Collection
}

// NewDatabase creates a Database without connecting.
func NewDatabase() *Database {
	return &Database{
		stopReconnect: make(chan struct{}),
		collections:   make(map[string]*mongo.Collection),
	}
}

// Connect establishes a connection to MongoDB.
func (d *Database) Connect(mongoURL, dbName string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.connected {
		return nil
	}

	logger.System("Connecting to the database...", "DB")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(mongoURL).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		logger.Critical("Failed to connect to the database.", "DB")
		d.scheduleReconnect(mongoURL, dbName)
		return err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Critical("Failed to verify the database connection.", "DB")
		d.scheduleReconnect(mongoURL, dbName)
		return err
	}

	d.client = client
	d.db = client.Database(dbName)
	d.connected = true

	logger.Success("Connected to the database.", "DB")

	if d.reconnectTicker != nil {
		d.reconnectTicker.Stop()
		d.reconnectTicker = nil
	}
	return nil
}

// scheduleReconnect retries the connection in the background. The caller must
// hold the write lock.
func (d *Database) scheduleReconnect(mongoURL, dbName string) {
	if d.reconnectTicker != nil {
		return
	}
	d.reconnectTicker = time.NewTicker(15 * time.Second)
	ticker := d.reconnectTicker
	go func() {
		for {
			select {
			case <-ticker.C:
				logger.Info("Retrying database connection...", "DB")
				if err := d.Connect(mongoURL, dbName); err == nil {
					return
				}
			case <-d.stopReconnect:
				return
			}
		}
	}()
}

// Disconnect closes the database connection.
func (d *Database) Disconnect() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.reconnectTicker != nil {
		d.reconnectTicker.Stop()
	}
	close(d.stopReconnect)

	if d.client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := d.client.Disconnect(ctx); err != nil {
			return err
		}
		d.connected = false
		logger.Warn("Database disconnected.", "DB")
	}
	return nil
}

// Connected reports whether the database is reachable.
func (d *Database) Connected() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.connected
}

// Ping measures the database response time.
func (d *Database) Ping() (time.Duration, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.connected || d.client == nil {
		return 0, fmt.Errorf("not connected to database")
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := d.client.Ping(ctx, readpref.Primary())
	return time.Since(start), err
}

// GetCollection returns a MongoDB collection handle.
func (d *Database) GetCollection(name string) *mongo.Collection {
	d.mu.RLock()
	if col, exists := d.collections[name]; exists {
		d.mu.RUnlock()
		return col
	}
	d.mu.RUnlock()

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db == nil {
		return nil
	}

	col := d.db.Collection(name)
	d.collections[name] = col
	return col
}

// MongoCollection mirrors an in-memory record slice to a MongoDB collection,
// one document per record. The memory copy stays authoritative: reads never
// touch the database after the initial load, and a failed persist is queued
// for the flush loop.
type MongoCollection[T any] struct {
	db       *Database
	name     string
	mu       sync.RWMutex
	items    []T
	dirty    bool
	stopSync chan struct{}
}

// NewMongoCollection loads the collection from MongoDB. A failed load starts
// empty with a warning, like the file backend.
func NewMongoCollection[T any](db *Database, name string) *MongoCollection[T] {
	mc := &MongoCollection[T]{
		db:       db,
		name:     name,
		items:    make([]T, 0),
		stopSync: make(chan struct{}),
	}

	if err := mc.load(); err != nil {
		logger.Warn(fmt.Sprintf("Could not load collection '%s', starting empty: %v", name, err), "Store")
	}

	go mc.syncLoop()
	return mc
}

func (mc *MongoCollection[T]) load() error {
	if !mc.db.Connected() {
		return fmt.Errorf("database not connected")
	}
	col := mc.db.GetCollection(mc.name)
	if col == nil {
		return fmt.Errorf("collection unavailable")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	defer func() { _ = cursor.Close(ctx) }()

	items := make([]T, 0)
	for cursor.Next(ctx) {
		var doc T
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		items = append(items, doc)
	}
	if err := cursor.Err(); err != nil {
		return err
	}

	mc.mu.Lock()
	mc.items = items
	mc.mu.Unlock()
	return nil
}

// Append adds a record and persists it.
func (mc *MongoCollection[T]) Append(item T) error {
	mc.mu.Lock()
	mc.items = append(mc.items, item)
	mc.mu.Unlock()
	mc.persist()
	return nil
}

// All returns a copy of every record in insertion order.
func (mc *MongoCollection[T]) All() []T {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	out := make([]T, len(mc.items))
	copy(out, mc.items)
	return out
}

// Filter returns the records matching pred, in insertion order.
func (mc *MongoCollection[T]) Filter(pred func(T) bool) []T {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	out := make([]T, 0)
	for _, item := range mc.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// ReplaceAll swaps the entire contents and persists them.
func (mc *MongoCollection[T]) ReplaceAll(items []T) error {
	mc.mu.Lock()
	mc.items = make([]T, len(items))
	copy(mc.items, items)
	mc.mu.Unlock()
	mc.persist()
	return nil
}

// DeleteWhere removes every record matching pred and persists the result.
func (mc *MongoCollection[T]) DeleteWhere(pred func(T) bool) (int, error) {
	mc.mu.Lock()
	kept := make([]T, 0, len(mc.items))
	for _, item := range mc.items {
		if !pred(item) {
			kept = append(kept, item)
		}
	}
	removed := len(mc.items) - len(kept)
	mc.items = kept
	mc.mu.Unlock()

	if removed > 0 {
		mc.persist()
	}
	return removed, nil
}

// persist rewrites the mongo collection to match memory. On failure the
// collection is marked dirty and the sync loop retries.
func (mc *MongoCollection[T]) persist() {
	if err := mc.rewrite(); err != nil {
		logger.Warn(fmt.Sprintf("DB offline. Queueing rewrite of '%s'", mc.name), "Store")
		mc.mu.Lock()
		mc.dirty = true
		mc.mu.Unlock()
	}
}

func (mc *MongoCollection[T]) rewrite() error {
	if !mc.db.Connected() {
		return fmt.Errorf("database not connected")
	}
	col := mc.db.GetCollection(mc.name)
	if col == nil {
		return fmt.Errorf("collection unavailable")
	}

	mc.mu.RLock()
	docs := make([]interface{}, len(mc.items))
	for i, item := range mc.items {
		docs[i] = item
	}
	mc.mu.RUnlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := col.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}
	_, err := col.InsertMany(ctx, docs)
	return err
}

// syncLoop flushes queued rewrites once the connection returns.
func (mc *MongoCollection[T]) syncLoop() {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			mc.mu.RLock()
			dirty := mc.dirty
			mc.mu.RUnlock()
			if !dirty || !mc.db.Connected() {
				continue
			}
			if err := mc.rewrite(); err != nil {
				logger.Error(fmt.Sprintf("Retry of '%s' rewrite failed: %v", mc.name, err), "Store")
				continue
			}
			mc.mu.Lock()
			mc.dirty = false
			mc.mu.Unlock()
			logger.Success(fmt.Sprintf("Queued rewrite of '%s' synced.", mc.name), "Store")
		case <-mc.stopSync:
			return
		}
	}
}

// Close stops the background sync loop.
func (mc *MongoCollection[T]) Close() {
	close(mc.stopSync)
}
