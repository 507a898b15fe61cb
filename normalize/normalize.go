package normalize

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/zero-day-ai/enums"
)

// Normalizer maps payload field names to their accepted input values.
type Normalizer struct {
	mu     sync.RWMutex
	fields map[string]map[string]string
}

// New returns an empty Normalizer with no bound fields.
func New() *Normalizer {
	return &Normalizer{
		fields: make(map[string]map[string]string),
	}
}

type bindConfig struct {
	aliases map[string]string
}

// Option configures a single Bind call.
type Option func(*bindConfig)

// Alias registers an extra accepted input for a bound field.
// input: the shorthand value to accept (e.g. "syn")
// target: the label it normalizes to (e.g. "SYN_SCAN")
func Alias(input, target string) Option {
	return func(cfg *bindConfig) {
		if cfg.aliases == nil {
			cfg.aliases = make(map[string]string)
		}
		cfg.aliases[input] = target
	}
}

// Bind maps a payload field to E's string association. The field then
// accepts E's labels case-insensitively, plus any aliases, and
// normalizes them to the exact registered label. Binding the same field
// again merges into the existing entries.
//
// Alias targets must be labels of E; an unknown target fails the whole
// Bind and leaves the Normalizer unchanged.
func Bind[E enums.Enum](n *Normalizer, field string, opts ...Option) error {
	var cfg bindConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	labels := enums.Labels[E]()
	entries := make(map[string]string, len(labels)+len(cfg.aliases))
	for _, label := range labels {
		entries[strings.ToLower(label)] = label
	}
	for input, target := range cfg.aliases {
		if _, err := enums.Parse[E](target); err != nil {
			return fmt.Errorf("bind %q: alias %q: %w", field, input, err)
		}
		entries[strings.ToLower(input)] = target
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.fields[field] == nil {
		n.fields[field] = make(map[string]string, len(entries))
	}
	for input, canonical := range entries {
		n.fields[field][input] = canonical
	}
	return nil
}

// Canonical resolves a raw input value for a bound field. The second
// return reports whether the field is bound and the value matched.
func (n *Normalizer) Canonical(field, raw string) (string, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	canonical, ok := n.fields[field][strings.ToLower(raw)]
	return canonical, ok
}

// Apply normalizes a decoded payload in place. Bound fields are matched
// by name at any nesting depth, through both objects and arrays. Values
// that are not strings, and strings that match no binding, are left
// untouched.
func (n *Normalizer) Apply(data map[string]any) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	n.applyMap(data)
}

// applyMap rewrites bound string fields in place. Callers hold n.mu.
func (n *Normalizer) applyMap(m map[string]any) {
	for field, value := range m {
		switch v := value.(type) {
		case string:
			if canonical, ok := n.fields[field][strings.ToLower(v)]; ok {
				m[field] = canonical
			}
		case map[string]any:
			n.applyMap(v)
		case []any:
			n.applySlice(v)
		}
	}
}

func (n *Normalizer) applySlice(s []any) {
	for _, value := range s {
		switch v := value.(type) {
		case map[string]any:
			n.applyMap(v)
		case []any:
			n.applySlice(v)
		}
	}
}

// JSON normalizes bound fields in a JSON object and returns the
// re-encoded document. If any error occurs, the original input is
// returned unchanged.
func (n *Normalizer) JSON(input string) string {
	if n.empty() {
		return input
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(input), &data); err != nil {
		return input
	}
	if len(data) == 0 {
		return input
	}

	n.mu.RLock()
	n.applyMap(data)
	n.mu.RUnlock()

	normalized, err := json.Marshal(data)
	if err != nil {
		return input
	}
	return string(normalized)
}

// YAML normalizes bound fields in a YAML mapping and returns the
// re-encoded document. If any error occurs, the original input is
// returned unchanged.
func (n *Normalizer) YAML(input []byte) []byte {
	if n.empty() {
		return input
	}

	var data map[string]any
	if err := yaml.Unmarshal(input, &data); err != nil {
		return input
	}
	if len(data) == 0 {
		return input
	}

	n.mu.RLock()
	n.applyMap(data)
	n.mu.RUnlock()

	normalized, err := yaml.Marshal(data)
	if err != nil {
		return input
	}
	return normalized
}

// Mappings returns the accepted inputs for a bound field, keyed by the
// lowercased input with the canonical label as value. Returns nil if
// the field is not bound. The result is a copy and can be modified
// freely.
func (n *Normalizer) Mappings(field string) map[string]string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	entries, ok := n.fields[field]
	if !ok {
		return nil
	}

	result := make(map[string]string, len(entries))
	for input, canonical := range entries {
		result[input] = canonical
	}
	return result
}

func (n *Normalizer) empty() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.fields) == 0
}
