package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/OrionStudios/JarvisBotGo/pkg/logger"
	"github.com/OrionStudios/JarvisBotGo/pkg/models"
)

// Records bundles the three moderation collections behind one handle.
type Records struct {
	Warnings Collection[models.Warning]
	Mutes    Collection[models.Mute]
	ModRoles Collection[string]

	db *Database
}

// Open selects the backend from the configuration: MongoDB when mongoURL is
// set, flat JSON files under dataDir otherwise. A Mongo connection failure
// falls back to the background reconnect loop, not to files, so the two
// backends never mix.
func Open(dataDir, mongoURL, dbName string) (*Records, error) {
	if mongoURL != "" {
		db := NewDatabase()
		if err := db.Connect(mongoURL, dbName); err != nil {
			logger.Warn(fmt.Sprintf("Database unavailable, will keep retrying: %v", err), "Store")
		}
		return &Records{
			Warnings: NewMongoCollection[models.Warning](db, "warnings"),
			Mutes:    NewMongoCollection[models.Mute](db, "mutes"),
			ModRoles: NewMongoCollection[string](db, "modroles"),
			db:       db,
		}, nil
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &Records{
		Warnings: NewFileCollection[models.Warning](filepath.Join(dataDir, "warnings.json")),
		Mutes:    NewFileCollection[models.Mute](filepath.Join(dataDir, "mutes.json")),
		ModRoles: NewFileCollection[string](filepath.Join(dataDir, "modroles.json")),
	}, nil
}

// Status describes the active backend for status surfaces.
func (r *Records) Status() string {
	if r.db == nil {
		return "📁 JSON files"
	}
	if r.db.Connected() {
		return "🟢 MongoDB connected"
	}
	return "🔴 MongoDB disconnected"
}

// Close releases the backend resources.
func (r *Records) Close() error {
	if r.db != nil {
		return r.db.Disconnect()
	}
	return nil
}

// DB returns the underlying database, or nil for the file backend.
func (r *Records) DB() *Database {
	return r.db
}
