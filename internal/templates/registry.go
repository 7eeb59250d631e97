package templates

import "sync"

// DefaultTemplateID is the fallback used when a stored template id no longer
// resolves to a registered template.
const DefaultTemplateID = "classic"

var (
	registryOnce sync.Once
	registryByID map[string]*Config
	registryIDs  []string
)

// initRegistry builds the catalog on first access. Configs are shared and
// must not be mutated by callers.
func initRegistry() {
	registryByID = make(map[string]*Config)
	for _, cfg := range builtinConfigs() {
		registryByID[cfg.ID] = cfg
		registryIDs = append(registryIDs, cfg.ID)
	}
}

// Get returns the template config for id. An unknown, empty or legacy id
// deterministically resolves to the default template; rendering must never
// fail on a stale template id carried over from an old document version, so
// no error is ever signaled.
func Get(id string) *Config {
	registryOnce.Do(initRegistry)
	if cfg, ok := registryByID[id]; ok {
		return cfg
	}
	return registryByID[DefaultTemplateID]
}

// IDs returns the registered template ids in registration order.
func IDs() []string {
	registryOnce.Do(initRegistry)
	out := make([]string, len(registryIDs))
	copy(out, registryIDs)
	return out
}

// All returns every registered template config in registration order.
func All() []*Config {
	registryOnce.Do(initRegistry)
	out := make([]*Config, 0, len(registryIDs))
	for _, id := range registryIDs {
		out = append(out, registryByID[id])
	}
	return out
}
