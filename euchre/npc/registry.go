package npc

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"sync"
)

// PersonaRegistry holds all bot persona definitions.
type PersonaRegistry struct {
	mu       sync.RWMutex
	personas map[string]*Persona
}

// NewRegistry creates a registry pre-loaded with the default personas.
func NewRegistry() *PersonaRegistry {
	r := &PersonaRegistry{personas: make(map[string]*Persona)}
	for _, p := range DefaultPersonas {
		r.personas[p.ID] = p
	}
	return r
}

// LoadFromFile loads personas from a JSON file, overriding same-ID defaults.
func (r *PersonaRegistry) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read personas file: %w", err)
	}
	return r.LoadFromJSON(data)
}

// LoadFromJSON loads personas from raw JSON bytes.
func (r *PersonaRegistry) LoadFromJSON(data []byte) error {
	var list []*Persona
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("parse personas JSON: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range list {
		if p.ID == "" {
			continue
		}
		r.personas[p.ID] = p
	}
	return nil
}

// Get returns a persona by ID.
func (r *PersonaRegistry) Get(id string) (*Persona, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.personas[id]
	return p, ok
}

// List returns all personas sorted by ID.
func (r *PersonaRegistry) List() []*Persona {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Persona, 0, len(r.personas))
	for _, p := range r.personas {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Pick returns a random persona.
func (r *PersonaRegistry) Pick(rng *rand.Rand) *Persona {
	list := r.List()
	if len(list) == 0 {
		return nil
	}
	return list[rng.Intn(len(list))]
}
