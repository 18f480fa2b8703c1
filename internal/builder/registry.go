package builder

import "sync"

// Registry holds per-session wizards. State is in-memory only, so a
// server restart discards any half-completed form, mirroring a page
// reload in the original single-page flow.
type Registry struct {
	mu        sync.Mutex
	bySession map[string]*Wizard
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{bySession: make(map[string]*Wizard)}
}

// Get returns the wizard for the session, creating one at the identity
// stage if none exists.
func (r *Registry) Get(sessionID string) *Wizard {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.bySession[sessionID]
	if !ok {
		w = New()
		r.bySession[sessionID] = w
	}
	return w
}

// Drop discards the session's wizard.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bySession, sessionID)
}
