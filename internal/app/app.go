// Package app wires the core services together. A frontend embeds App
// and drives it; nothing below this layer renders or decodes video.
package app

import (
	"fmt"

	"github.com/user/amazstreme/internal/account"
	"github.com/user/amazstreme/internal/catalog"
	"github.com/user/amazstreme/internal/config"
	"github.com/user/amazstreme/internal/feed"
	"github.com/user/amazstreme/internal/media"
	"github.com/user/amazstreme/internal/player"
	"github.com/user/amazstreme/internal/store"
	"github.com/user/amazstreme/internal/watch"
)

// App bundles the viewing-state core
type App struct {
	Store    store.Store
	Library  *media.Library
	Accounts *account.Service
	Catalog  *catalog.Service
	Watch    *watch.Service
	Feed     *feed.Assembler
	Player   *player.Reconciler
	Shorts   []feed.RosterVideo
}

// New builds the core from configuration
func New(cfg *config.Config) (*App, error) {
	mysqlStore, err := store.NewMySQLStore(&cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	library, err := media.NewLibrary(&cfg.Media)
	if err != nil {
		mysqlStore.Close()
		return nil, fmt.Errorf("failed to prepare media library: %w", err)
	}

	channels := feed.DefaultChannels()

	return &App{
		Store:    mysqlStore,
		Library:  library,
		Accounts: account.NewService(mysqlStore, cfg.Feed.DefaultChannel, feed.ChannelNames(channels)),
		Catalog:  catalog.NewService(mysqlStore, library),
		Watch:    watch.NewService(mysqlStore, library),
		Feed:     feed.NewAssembler(mysqlStore, channels),
		Player:   player.NewReconciler(mysqlStore, cfg.Player.PersistInterval),
		Shorts:   feed.DefaultShorts(),
	}, nil
}

// Close releases the store connection
func (a *App) Close() error {
	return a.Store.Close()
}
