package prompt

import (
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"newsig/internal/logger"
)

// Profile carries the operator-tunable parts of the prompt. Everything else
// in the template is fixed.
type Profile struct {
	Instrument string   `mapstructure:"instrument"`
	Horizon    string   `mapstructure:"horizon"`
	ExtraRules []string `mapstructure:"extra_rules"`
}

func DefaultProfile() Profile {
	return Profile{
		Instrument: "GBP/USD",
		Horizon:    "next 1-24 hours",
	}
}

// ProfileStore reads a profile file and watches it for edits, so instrument
// or horizon changes take effect without restarting the loop.
type ProfileStore struct {
	mu      sync.RWMutex
	current Profile
	v       *viper.Viper
}

// NewProfileStore loads path and subscribes to changes. An empty path means
// the built-in defaults with no watching.
func NewProfileStore(path string) (*ProfileStore, error) {
	s := &ProfileStore{current: DefaultProfile()}
	path = strings.TrimSpace(path)
	if path == "" {
		return s, nil
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read prompt profile failed: %w", err)
	}
	s.v = v
	if err := s.reload(); err != nil {
		return nil, err
	}
	v.OnConfigChange(func(evt fsnotify.Event) {
		if err := s.reload(); err != nil {
			logger.Errorf("prompt profile reload failed: %v", err)
			return
		}
		logger.Infof("prompt profile reloaded from %s", evt.Name)
	})
	v.WatchConfig()
	return s, nil
}

func (s *ProfileStore) reload() error {
	prof := DefaultProfile()
	if err := s.v.Unmarshal(&prof); err != nil {
		return fmt.Errorf("parse prompt profile failed: %w", err)
	}
	if strings.TrimSpace(prof.Instrument) == "" {
		prof.Instrument = DefaultProfile().Instrument
	}
	if strings.TrimSpace(prof.Horizon) == "" {
		prof.Horizon = DefaultProfile().Horizon
	}
	s.mu.Lock()
	s.current = prof
	s.mu.Unlock()
	return nil
}

func (s *ProfileStore) Current() Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
