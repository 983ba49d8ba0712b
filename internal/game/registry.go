package game

import (
	"fmt"
	"strings"
	"sync"

	"qlaunch/internal/domain"
)

// Registry holds the supported games in the order they are probed.
type Registry struct {
	mu       sync.RWMutex
	profiles []func() Profile
}

// NewRegistry creates an empty game registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Default returns a registry with every supported game registered.
func Default() *Registry {
	r := NewRegistry()
	r.Register(func() Profile { return &Quake{} })
	r.Register(func() Profile { return &Quake2{} })
	r.Register(func() Profile { return &Hexen2{} })
	return r
}

// Register appends a game. Earlier registrations win when several games
// recognize the same installation.
func (r *Registry) Register(factory func() Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles = append(r.profiles, factory)
}

// List returns a fresh instance of every registered game, in probe order.
func (r *Registry) List() []Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Profile, 0, len(r.profiles))
	for _, f := range r.profiles {
		out = append(out, f())
	}
	return out
}

// Titles returns the display names of the registered games.
func (r *Registry) Titles() []string {
	profiles := r.List()
	titles := make([]string, 0, len(profiles))
	for _, p := range profiles {
		titles = append(titles, p.Title())
	}
	return titles
}

// SupportedGames returns a label naming every registered game.
func (r *Registry) SupportedGames() string {
	return strings.Join(r.Titles(), " / ")
}

// Detect returns the first game that recognizes gamePath, without setting it up.
func (r *Registry) Detect(gamePath string) (Profile, error) {
	for _, p := range r.List() {
		if p.CanHandle(gamePath) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%s: %w (supported: %s)", gamePath, domain.ErrUnsupportedGame, r.SupportedGames())
}

// Select detects the game installed at gamePath and sets it up.
func (r *Registry) Select(gamePath string, opts ...HandlerOption) (*Handler, error) {
	p, err := r.Detect(gamePath)
	if err != nil {
		return nil, err
	}
	return newHandler(p, gamePath, opts...), nil
}
