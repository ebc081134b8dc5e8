package storage

import (
	"path/filepath"
	"testing"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "info_channels.json"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestIsChannelAllowed_EmptyListAllowsAll(t *testing.T) {
	s := newTestStorage(t)

	if !s.IsChannelAllowed("guild1", "chan1") {
		t.Error("guild without config should allow any channel")
	}

	s.AddInfoChannel("guild1", "chanA")
	s.RemoveInfoChannel("guild1", "chanA")

	if !s.IsChannelAllowed("guild1", "chan1") {
		t.Error("emptied allow-list should allow any channel again")
	}
}

func TestIsChannelAllowed_NonEmptyListRestricts(t *testing.T) {
	s := newTestStorage(t)

	s.AddInfoChannel("guild1", "chanA")
	s.AddInfoChannel("guild1", "chanB")

	if !s.IsChannelAllowed("guild1", "chanA") {
		t.Error("listed channel should be allowed")
	}
	if s.IsChannelAllowed("guild1", "chanC") {
		t.Error("unlisted channel should be denied")
	}

	// Removing one channel must not change the outcome for the others.
	s.RemoveInfoChannel("guild1", "chanB")
	if !s.IsChannelAllowed("guild1", "chanA") {
		t.Error("chanA should still be allowed after removing chanB")
	}
	if s.IsChannelAllowed("guild1", "chanC") {
		t.Error("chanC should still be denied after removing chanB")
	}
}

func TestAddInfoChannel_DuplicateReportsFalse(t *testing.T) {
	s := newTestStorage(t)

	if !s.AddInfoChannel("guild1", "chanA") {
		t.Error("first add should report true")
	}
	if s.AddInfoChannel("guild1", "chanA") {
		t.Error("duplicate add should report false")
	}
	if got := s.ListInfoChannels("guild1"); len(got) != 1 {
		t.Errorf("expected 1 channel, got %v", got)
	}
}

func TestRemoveInfoChannel_MissingReportsFalse(t *testing.T) {
	s := newTestStorage(t)

	if s.RemoveInfoChannel("guild1", "chanA") {
		t.Error("removing from unknown guild should report false")
	}

	s.AddInfoChannel("guild1", "chanA")
	if s.RemoveInfoChannel("guild1", "chanB") {
		t.Error("removing unlisted channel should report false")
	}
}

func TestEffectiveCooldown_OverrideAndDefault(t *testing.T) {
	s := newTestStorage(t)

	if got := s.EffectiveCooldown("guild1"); got != 30 {
		t.Errorf("expected global default 30, got %d", got)
	}

	s.SetCooldown("guild1", 10)
	if got := s.EffectiveCooldown("guild1"); got != 10 {
		t.Errorf("expected override 10, got %d", got)
	}
	if got := s.EffectiveCooldown("guild2"); got != 30 {
		t.Errorf("other guild should keep the default, got %d", got)
	}

	s.SetCooldown("guild1", 0)
	if got := s.EffectiveCooldown("guild1"); got != 30 {
		t.Errorf("cleared override should fall back to 30, got %d", got)
	}
}

func TestGlobalSettings_Defaults(t *testing.T) {
	s := newTestStorage(t)

	gs := s.GlobalSettings()
	if gs.DefaultCooldown != 30 {
		t.Errorf("expected default cooldown 30, got %d", gs.DefaultCooldown)
	}
	if gs.DefaultDailyLimit != 30 {
		t.Errorf("expected default daily limit 30, got %d", gs.DefaultDailyLimit)
	}
	if gs.DefaultAllChannels {
		t.Error("expected default_all_channels false")
	}
}

func TestConfigSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "info_channels.json")

	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	s.AddInfoChannel("guild1", "chanA")
	s.SetCooldown("guild1", 12)
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()

	if !s2.IsChannelAllowed("guild1", "chanA") {
		t.Error("allow-list should survive reopen")
	}
	if s2.IsChannelAllowed("guild1", "chanB") {
		t.Error("restriction should survive reopen")
	}
	if got := s2.EffectiveCooldown("guild1"); got != 12 {
		t.Errorf("cooldown override should survive reopen, got %d", got)
	}
}
