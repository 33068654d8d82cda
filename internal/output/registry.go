package output

import (
	"fmt"
	"strings"
)

// Registry holds the writers by format name.
type Registry struct {
	writers map[string]Writer
}

// order is the listing and fallback priority.
var order = []string{"txt", "ans"}

// NewRegistry creates a registry with every built-in writer.
func NewRegistry() *Registry {
	r := &Registry{
		writers: make(map[string]Writer),
	}
	for _, w := range []Writer{&TextWriter{}, &ANSIWriter{}} {
		r.writers[w.Format()] = w
	}
	return r
}

// Get returns the writer for the given format, or nil if unknown.
func (r *Registry) Get(format string) Writer {
	return r.writers[strings.ToLower(format)]
}

// Available returns all format names in priority order.
func (r *Registry) Available() []string {
	var result []string
	for _, f := range order {
		if _, ok := r.writers[f]; ok {
			result = append(result, f)
		}
	}
	return result
}

// ResolveFormats filters requested formats to known ones, dropping
// duplicates, and falls back to txt when nothing is left.
func (r *Registry) ResolveFormats(requested []string) []string {
	var resolved []string
	seen := map[string]bool{}

	for _, f := range requested {
		f = strings.ToLower(strings.TrimSpace(f))
		if _, ok := r.writers[f]; ok && !seen[f] {
			resolved = append(resolved, f)
			seen[f] = true
		}
	}
	if len(resolved) == 0 {
		resolved = append(resolved, "txt")
	}
	return resolved
}

// String returns a summary of available writers.
func (r *Registry) String() string {
	avail := r.Available()
	if len(avail) == 0 {
		return "no writers available"
	}
	return fmt.Sprintf("writers: %s", strings.Join(avail, ", "))
}
