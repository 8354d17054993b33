package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/motif"
	"github.com/aretw0/motif/internal/config"
	"github.com/aretw0/motif/internal/logging"
	"github.com/aretw0/motif/internal/playback"
	"github.com/aretw0/motif/pkg/adapters/memory"
	redisAdapter "github.com/aretw0/motif/pkg/adapters/redis"
	"github.com/aretw0/motif/pkg/persistence/middleware"
	"github.com/aretw0/motif/pkg/ports"
	"github.com/spf13/cobra"
)

// bootstrap holds everything a command needs after configuration is applied.
type bootstrap struct {
	cfg    *config.Config
	logger *slog.Logger
	engine *motif.Engine

	closers []func() error
}

// Close releases backend connections opened during setup.
func (b *bootstrap) Close() {
	for _, c := range b.closers {
		if err := c(); err != nil {
			b.logger.Warn("failed to close backend", "error", err)
		}
	}
}

// setup loads configuration and wires an engine: logger, storage backend
// (Redis when configured, memory otherwise) and the scene fixture.
func setup(cmd *cobra.Command, opts ...motif.Option) (*bootstrap, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	b := &bootstrap{
		cfg:    cfg,
		logger: logging.New(logging.ParseLevel(cfg.LogLevel)),
	}

	var kv ports.KVStore = memory.NewStore()
	if cfg.Redis.Addr != "" {
		var redisOpts []redisAdapter.Option
		if cfg.Redis.Namespace != "" {
			redisOpts = append(redisOpts, redisAdapter.WithNamespace(cfg.Redis.Namespace))
		}
		store := redisAdapter.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, redisOpts...)
		b.closers = append(b.closers, store.Close)
		kv = store
	}

	encryptionKey, err := cfg.EncryptionKeyBytes()
	if err != nil {
		return nil, err
	}
	if encryptionKey != nil {
		kv = middleware.Chain(kv, middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{
			ActiveKey: encryptionKey,
		}))
	}

	sceneGraph, err := loadScene(cfg.Scene)
	if err != nil {
		return nil, err
	}

	engineOpts := []motif.Option{
		motif.WithStore(kv),
		motif.WithLogger(b.logger),
		motif.WithPlayback(playback.WithFrameInterval(cfg.FrameInterval())),
	}
	engineOpts = append(engineOpts, opts...)

	b.engine, err = motif.New(sceneGraph, engineOpts...)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// loadScene reads a YAML scene fixture. An empty path yields an empty scene.
func loadScene(path string) (*memory.Scene, error) {
	if path == "" {
		return memory.NewScene(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	return memory.SceneFromYAML(data)
}
