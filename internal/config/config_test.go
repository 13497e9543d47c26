package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selectlist/internal/domain"
	"selectlist/internal/eventbus"
	"selectlist/internal/selection"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cs := NewConfigService(path)

	cfg, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, selection.Multiple, cfg.SelectionMode())

	people := cfg.People()
	require.Len(t, people, 4)
	assert.Equal(t, domain.Person{Name: "Santa"}, people[3].Value)
	assert.True(t, people[3].Selected)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)
	cs := NewConfigService(path)

	cfg := DefaultConfig()
	cfg.Mode = "single"
	require.NoError(t, cs.Save(cfg))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "version = 1")
	assert.Contains(t, string(content), "single")

	loaded, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadHandWrittenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(`
version = 1
title = "Reindeer"

[[items]]
name = "Dasher"

[[items]]
name = "Dancer"
selected = true
`), 0644))

	cfg, err := NewConfigService(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "Reindeer", cfg.Title)
	assert.Equal(t, "single", cfg.Mode, "mode defaults to single")
	assert.Equal(t, []ItemConfig{{Name: "Dasher"}, {Name: "Dancer", Selected: true}}, cfg.Items)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()

	badMode := filepath.Join(dir, "mode.toml")
	require.NoError(t, os.WriteFile(badMode, []byte(`mode = "radio"`), 0644))
	_, err := NewConfigService(badMode).Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, selection.ErrUnknownMode)

	emptyName := filepath.Join(dir, "name.toml")
	require.NoError(t, os.WriteFile(emptyName, []byte("[[items]]\nname = \" \"\n"), 0644))
	_, err = NewConfigService(emptyName).Load()
	assert.ErrorContains(t, err, "empty name")

	garbage := filepath.Join(dir, "garbage.toml")
	require.NoError(t, os.WriteFile(garbage, []byte(`version = = 1`), 0644))
	_, err = NewConfigService(garbage).Load()
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestApplySelection(t *testing.T) {
	cfg := DefaultConfig()
	c := selection.NewController(cfg.People(), selection.WithMode(selection.Multiple))
	require.NoError(t, c.Toggle(0))

	cfg.ApplySelection(c.Items(), selection.Single)
	assert.Equal(t, "single", cfg.Mode)
	assert.True(t, cfg.Items[0].Selected)
	assert.True(t, cfg.Items[3].Selected)
	assert.False(t, cfg.Items[1].Selected)
}

func TestServicePublishesEvents(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	loaded := make(chan eventbus.DomainEvent, 1)
	saved := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) { loaded <- e })
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) { saved <- e })

	path := filepath.Join(t.TempDir(), FileName)
	cs := NewConfigServiceWithBus(path, bus)

	cfg, err := cs.Load()
	require.NoError(t, err)
	require.NoError(t, cs.Save(cfg))

	select {
	case e := <-loaded:
		assert.Equal(t, eventbus.ConfigLoadedEvent{Path: path, Mode: "multiple", Items: 4}, e)
	case <-time.After(time.Second):
		t.Fatal("no ConfigLoaded event")
	}
	select {
	case e := <-saved:
		assert.Equal(t, eventbus.ConfigSavedEvent{Path: path}, e)
	case <-time.After(time.Second):
		t.Fatal("no ConfigSaved event")
	}
}
