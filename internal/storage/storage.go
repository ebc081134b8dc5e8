// /internal/storage/storage.go
package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"ffinfo/datastore"
)

const (
	serversKey  = "servers"
	settingsKey = "global_settings"

	defaultCooldownSeconds = 30
	defaultDailyLimit      = 30
)

// Storage owns the persisted config document: per-guild channel allow-lists
// and cooldown overrides plus global defaults. Mutations are serialized by
// a single lock and rewritten to disk best-effort.
type Storage struct {
	ds *datastore.DataStore
	mu sync.Mutex
}

type GuildConfig struct {
	Cooldown *int `json:"cooldown,omitempty"`
}

type GuildRecord struct {
	InfoChannels []string    `json:"info_channels"`
	Config       GuildConfig `json:"config"`
}

type GlobalSettings struct {
	DefaultAllChannels bool `json:"default_all_channels"`
	DefaultCooldown    int  `json:"default_cooldown"`
	DefaultDailyLimit  int  `json:"default_daily_limit"`
}

func New(filePath string) (*Storage, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		return nil, err
	}
	s := &Storage{ds: ds}
	s.ensureGlobalSettings()
	return s, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}

// save rewrites the document. Failure is logged, never propagated: callers
// must not assume durability.
func (s *Storage) save() {
	if err := s.ds.SaveToFile(); err != nil {
		log.Printf("[ERR] Error saving config: %v", err)
	}
}

// ensureGlobalSettings seeds defaults so a fresh document has the full shape.
func (s *Storage) ensureGlobalSettings() {
	s.mu.Lock()
	defer s.mu.Unlock()
	gs := s.globalSettings()
	s.ds.Add(settingsKey, gs)
	s.save()
}

// GlobalSettings returns the global defaults, filling in any missing keys.
func (s *Storage) GlobalSettings() GlobalSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.globalSettings()
}

func (s *Storage) globalSettings() GlobalSettings {
	gs := GlobalSettings{
		DefaultAllChannels: false,
		DefaultCooldown:    defaultCooldownSeconds,
		DefaultDailyLimit:  defaultDailyLimit,
	}

	data, exists := s.ds.Get(settingsKey)
	if !exists {
		return gs
	}

	// Round-trip through JSON to recover the typed struct; unknown or
	// missing keys keep their defaults.
	raw, err := json.Marshal(data)
	if err != nil {
		return gs
	}
	if err := json.Unmarshal(raw, &gs); err != nil {
		return gs
	}
	if gs.DefaultCooldown <= 0 {
		gs.DefaultCooldown = defaultCooldownSeconds
	}
	if gs.DefaultDailyLimit <= 0 {
		gs.DefaultDailyLimit = defaultDailyLimit
	}
	return gs
}

// getServers returns the servers map from the document. Callers hold s.mu.
func (s *Storage) getServers() (map[string]GuildRecord, error) {
	data, exists := s.ds.Get(serversKey)
	if !exists {
		return map[string]GuildRecord{}, nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error marshalling servers: %w", err)
	}

	servers := map[string]GuildRecord{}
	if err := json.Unmarshal(raw, &servers); err != nil {
		return nil, fmt.Errorf("error unmarshalling servers: %w", err)
	}
	return servers, nil
}

func (s *Storage) putServers(servers map[string]GuildRecord) {
	s.ds.Add(serversKey, servers)
	s.save()
}

// HasGuildConfig reports whether the guild has any saved configuration.
func (s *Storage) HasGuildConfig(guildID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	servers, err := s.getServers()
	if err != nil {
		return false
	}
	_, ok := servers[guildID]
	return ok
}

// EffectiveCooldown returns the guild override when present, else the
// global default, in seconds.
func (s *Storage) EffectiveCooldown(guildID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cooldown := s.globalSettings().DefaultCooldown

	servers, err := s.getServers()
	if err != nil {
		return cooldown
	}
	if rec, ok := servers[guildID]; ok && rec.Config.Cooldown != nil {
		return *rec.Config.Cooldown
	}
	return cooldown
}

// SetCooldown sets the per-guild cooldown override in seconds. Zero clears
// the override so the global default applies again.
func (s *Storage) SetCooldown(guildID string, seconds int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	servers, err := s.getServers()
	if err != nil {
		log.Printf("[ERR] Error reading servers: %v", err)
		return
	}

	rec := servers[guildID]
	if seconds <= 0 {
		rec.Config.Cooldown = nil
	} else {
		rec.Config.Cooldown = &seconds
	}
	servers[guildID] = rec
	s.putServers(servers)
}
