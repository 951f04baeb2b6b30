package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swipedeck/internal/eventbus"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swipedeck", "config.toml")
	svc := NewConfigService(path)

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, path, svc.Path())
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigService(path)

	cfg := DefaultConfig()
	cfg.Deck = "/decks/intro.md"
	cfg.UI.Size = SizeCompact
	cfg.Carousel.SwipeThreshold = 400
	require.NoError(t, svc.Save(cfg))

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\nsize = \"compact\"\n"), 0644))

	cfg, err := NewConfigService("").LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, SizeCompact, cfg.UI.Size)
	assert.Equal(t, 350.0, cfg.UI.SpringStiffness)
	assert.Equal(t, 10000.0, cfg.Carousel.SwipeThreshold)
	assert.True(t, cfg.UI.Rounded)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"size":      "[ui]\nsize = \"huge\"\n",
		"card":      "[ui]\ncard = \"glass\"\n",
		"threshold": "[carousel]\nswipe_threshold = 0.0\n",
		"scale":     "[carousel]\ncell_width_px = -1.0\n",
		"window":    "[carousel]\nvelocity_window_ms = 0\n",
		"spring":    "[ui]\nspring_damping = 0.0\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))

			_, err := NewConfigService(path).Load()
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui\n"), 0644))

	_, err := NewConfigService(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestSaveRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.UI.Card = "nope"

	require.ErrorIs(t, NewConfigService(path).Save(cfg), ErrInvalidConfig)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestBusReceivesConfigEvents(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()

	loaded := make(chan eventbus.DomainEvent, 1)
	saved := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) { loaded <- e })
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) { saved <- e })

	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigServiceWithBus(path, bus)

	cfg := DefaultConfig()
	cfg.Deck = "deck.toml"
	require.NoError(t, svc.Save(cfg))
	_, err := svc.Load()
	require.NoError(t, err)

	select {
	case e := <-saved:
		assert.Equal(t, path, e.(eventbus.ConfigSavedEvent).Path)
	case <-time.After(time.Second):
		t.Fatal("no ConfigSaved event")
	}
	select {
	case e := <-loaded:
		assert.Equal(t, "deck.toml", e.(eventbus.ConfigLoadedEvent).Deck)
	case <-time.After(time.Second):
		t.Fatal("no ConfigLoaded event")
	}
}
