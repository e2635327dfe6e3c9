package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/jesus-or/facturas/internal/extract"
	"github.com/spf13/viper"
)

// RulesHolder serves the current classifier rule set. Rules are ordered and
// the first match wins, so a reload swaps the whole slice atomically.
type RulesHolder struct {
	current atomic.Value // holds []extract.MarkerRule
}

func NewRulesHolder() (*RulesHolder, error) {
	v := viper.New()

	v.SetConfigName("classifier")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/facturas/config")
	v.AddConfigPath("/etc/facturas")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FACTURAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	rules := extract.DefaultRules()
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	} else {
		var loaded []extract.MarkerRule
		if err := v.UnmarshalKey("classifier.rules", &loaded); err != nil {
			return nil, err
		}
		if err := validateRules(loaded); err != nil {
			return nil, err
		}
		rules = loaded
	}

	holder := &RulesHolder{}
	holder.current.Store(rules)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated []extract.MarkerRule
		if err := v.UnmarshalKey("classifier.rules", &updated); err != nil {
			log.Printf("[classifier-config] reload failed: %v", err)
			return
		}
		if err := validateRules(updated); err != nil {
			log.Printf("[classifier-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[classifier-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticRulesHolder serves a fixed rule set with no file watching.
func NewStaticRulesHolder(rules []extract.MarkerRule) *RulesHolder {
	holder := &RulesHolder{}
	holder.current.Store(rules)
	return holder
}

// Rules returns the active rule set.
func (h *RulesHolder) Rules() []extract.MarkerRule {
	return h.current.Load().([]extract.MarkerRule)
}

func validateRules(rules []extract.MarkerRule) error {
	if len(rules) == 0 {
		return errors.New("classifier.rules cannot be empty")
	}
	known := map[extract.FormatKind]bool{}
	for _, f := range extract.KnownFormats() {
		known[f] = true
	}
	for _, r := range rules {
		if !known[r.Format] {
			return errors.New("classifier.rules references unknown format " + string(r.Format))
		}
		if len(r.AllOf) == 0 && len(r.AnyOf) == 0 {
			return errors.New("classifier.rules entry for " + string(r.Format) + " has no markers")
		}
	}
	return nil
}
