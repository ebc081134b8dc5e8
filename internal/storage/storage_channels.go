package storage

import "log"

// IsChannelAllowed reports whether the info command may run in the channel.
// An empty allow-list means no restriction, not no channel.
func (s *Storage) IsChannelAllowed(guildID, channelID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	servers, err := s.getServers()
	if err != nil {
		log.Printf("[ERR] Error reading servers: %v", err)
		return false
	}

	rec, ok := servers[guildID]
	if !ok || len(rec.InfoChannels) == 0 {
		return true
	}
	for _, id := range rec.InfoChannels {
		if id == channelID {
			return true
		}
	}
	return false
}

// AddInfoChannel adds a channel to the guild allow-list. Returns false when
// the channel was already listed.
func (s *Storage) AddInfoChannel(guildID, channelID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	servers, err := s.getServers()
	if err != nil {
		log.Printf("[ERR] Error reading servers: %v", err)
		return false
	}

	rec := servers[guildID]
	for _, id := range rec.InfoChannels {
		if id == channelID {
			return false
		}
	}
	rec.InfoChannels = append(rec.InfoChannels, channelID)
	servers[guildID] = rec
	s.putServers(servers)
	return true
}

// RemoveInfoChannel removes a channel from the guild allow-list. Returns
// false when the channel was not listed.
func (s *Storage) RemoveInfoChannel(guildID, channelID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	servers, err := s.getServers()
	if err != nil {
		log.Printf("[ERR] Error reading servers: %v", err)
		return false
	}

	rec, ok := servers[guildID]
	if !ok {
		return false
	}

	updated := make([]string, 0, len(rec.InfoChannels))
	removed := false
	for _, id := range rec.InfoChannels {
		if id == channelID {
			removed = true
			continue
		}
		updated = append(updated, id)
	}
	if !removed {
		return false
	}

	rec.InfoChannels = updated
	servers[guildID] = rec
	s.putServers(servers)
	return true
}

// ListInfoChannels returns the guild allow-list in insertion order.
func (s *Storage) ListInfoChannels(guildID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	servers, err := s.getServers()
	if err != nil {
		log.Printf("[ERR] Error reading servers: %v", err)
		return nil
	}
	return servers[guildID].InfoChannels
}
