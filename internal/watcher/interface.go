package watcher

import "context"

// Watcher defines the interface for file system monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// Handler is invoked for each new media file
type Handler func(ctx context.Context, filePath string) error
