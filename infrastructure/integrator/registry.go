package integrator

import "github.com/vfg2006/sequencer-stats-api/internal/domain"

// Registry resolve o adapter de cada sequencer
type Registry struct {
	adapters map[domain.Sequencer]ProviderAdapter
}

func NewRegistry(adapters ...ProviderAdapter) *Registry {
	r := &Registry{adapters: make(map[domain.Sequencer]ProviderAdapter, len(adapters))}
	for _, a := range adapters {
		r.adapters[a.Sequencer()] = a
	}
	return r
}

func (r *Registry) Get(s domain.Sequencer) (ProviderAdapter, bool) {
	a, ok := r.adapters[s]
	return a, ok
}
