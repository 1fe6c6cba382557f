package grammar

import (
	"strings"
	"sync"
)

// Registry resolves grammars by language id or file extension. Lookups are
// pure and side effect free; registration normally happens once at startup.
type Registry struct {
	mu sync.RWMutex

	byID  map[string]*Grammar
	byExt map[string]*Grammar
}

func NewRegistry() *Registry {
	return &Registry{
		byID:  make(map[string]*Grammar),
		byExt: make(map[string]*Grammar),
	}
}

// Register adds a grammar to the registry, replacing any previous grammar
// with the same id or extensions.
func (r *Registry) Register(g *Grammar) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[g.ID] = g
	for _, ext := range g.FileExtensions {
		r.byExt[normalizeExt(ext)] = g
	}
}

// ByID returns the grammar registered under the given language id.
func (r *Registry) ByID(id string) (*Grammar, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.byID[id]
	return g, ok
}

// ByExtension returns the grammar handling the given file extension. The
// extension may be given with or without the leading dot.
func (r *Registry) ByExtension(ext string) (*Grammar, bool) {
	if ext == "" {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.byExt[normalizeExt(ext)]
	return g, ok
}

// Languages returns the ids of all registered grammars.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}

	return ids
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return ext
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r := NewRegistry()
	for _, g := range Builtin() {
		r.Register(g)
	}

	return r
})

// Default returns the shared registry preloaded with the built-in grammars.
func Default() *Registry {
	return defaultRegistry()
}
