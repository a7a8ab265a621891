package stopwords

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Export formats accepted by Manager.Export.
const (
	FormatText = "txt"
	FormatJSON = "json"
)

// Manager holds a mutable stopword set with a keep-list override. A word on
// the keep-list is never reported as a stopword, even if it is added to the
// stopword set afterwards.
//
// A Manager is not safe for concurrent mutation. Callers that share one
// instance across goroutines must serialize Add/Remove/AddKeepWords
// externally, or give each goroutine its own Manager seeded from a shared
// Set. Snapshots are immutable and safe to share freely.
type Manager struct {
	caseSensitive bool
	stopwords     map[string]struct{}
	keep          map[string]struct{}
}

// ManagerOptions configures NewManager. A nil Base selects the embedded
// default resource; an empty non-nil Base means an empty stopword set.
type ManagerOptions struct {
	Base          []string
	Additions     []string
	Keep          []string
	CaseSensitive bool
}

// Snapshot is an immutable view of a Manager's state at a point in time.
// It stays valid regardless of later mutation of the Manager.
type Snapshot struct {
	Stopwords     Set
	KeepWords     Set
	CaseSensitive bool
}

// NewManager creates a Manager seeded from opts.Base (or the embedded
// default resource), then merges opts.Additions through the add path and
// installs opts.Keep through the keep path.
func NewManager(opts ManagerOptions) (*Manager, error) {
	base := opts.Base
	if base == nil {
		baseSet, err := BaseStopwords()
		if err != nil {
			return nil, err
		}
		base = baseSet.Words()
	}

	m := &Manager{
		caseSensitive: opts.CaseSensitive,
		stopwords:     make(map[string]struct{}, len(base)),
		keep:          make(map[string]struct{}),
	}
	for _, word := range base {
		if normalized := normalize(word, m.caseSensitive); normalized != "" {
			m.stopwords[normalized] = struct{}{}
		}
	}
	m.Add(opts.Additions...)
	m.AddKeepWords(opts.Keep...)
	return m, nil
}

// CaseSensitive reports the matching mode fixed at construction.
func (m *Manager) CaseSensitive() bool {
	return m.caseSensitive
}

// Stopwords returns an immutable copy of the current stopword set.
func (m *Manager) Stopwords() Set {
	return copySet(m.stopwords)
}

// KeepWords returns an immutable copy of the current keep-word set.
func (m *Manager) KeepWords() Set {
	return copySet(m.keep)
}

// IsStopword reports whether token is a stopword. Keep-words always win;
// an empty token is never a stopword.
func (m *Manager) IsStopword(token string) bool {
	normalized := normalize(token, m.caseSensitive)
	if normalized == "" {
		return false
	}
	if _, kept := m.keep[normalized]; kept {
		return false
	}
	_, ok := m.stopwords[normalized]
	return ok
}

// Add inserts words into the stopword set. Words on the keep-list are
// skipped, not inserted.
func (m *Manager) Add(words ...string) {
	for _, word := range words {
		normalized := normalize(word, m.caseSensitive)
		if normalized == "" {
			continue
		}
		if _, kept := m.keep[normalized]; kept {
			continue
		}
		m.stopwords[normalized] = struct{}{}
	}
}

// Remove discards words from the stopword set. Absent words are ignored.
func (m *Manager) Remove(words ...string) {
	for _, word := range words {
		delete(m.stopwords, normalize(word, m.caseSensitive))
	}
}

// AddKeepWords installs words on the keep-list and evicts them from the
// stopword set if present. The keep-list always wins.
func (m *Manager) AddKeepWords(words ...string) {
	for _, word := range words {
		normalized := normalize(word, m.caseSensitive)
		if normalized == "" {
			continue
		}
		m.keep[normalized] = struct{}{}
		delete(m.stopwords, normalized)
	}
}

// LoadAdditions merges a newline-delimited word file into the stopword set.
func (m *Manager) LoadAdditions(path string) error {
	words, err := LoadWords(path, m.caseSensitive)
	if err != nil {
		return err
	}
	m.Add(words.Words()...)
	return nil
}

// Filter returns the tokens that are not stopwords, preserving order.
func (m *Manager) Filter(tokens []string) []string {
	filtered := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !m.IsStopword(token) {
			filtered = append(filtered, token)
		}
	}
	return filtered
}

// Snapshot captures the current state as an immutable value.
func (m *Manager) Snapshot() Snapshot {
	return Snapshot{
		Stopwords:     m.Stopwords(),
		KeepWords:     m.KeepWords(),
		CaseSensitive: m.caseSensitive,
	}
}

// Export writes the sorted stopword set to path. Keep-words are excluded.
// Format FormatText writes one word per line; FormatJSON writes an indented
// JSON array. Any other format is a configuration error.
func (m *Manager) Export(path, format string) error {
	words := m.Stopwords().Words()
	var payload []byte
	switch format {
	case FormatText:
		payload = []byte(strings.Join(words, "\n") + "\n")
	case FormatJSON:
		encoded, err := json.MarshalIndent(words, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode stopwords: %w", err)
		}
		payload = append(encoded, '\n')
	default:
		return fmt.Errorf("%w: unsupported export format %q (use %q or %q)", ErrConfig, format, FormatText, FormatJSON)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}

// ToMap returns the manager state in a JSON-friendly shape: sorted
// stopwords, sorted keep-words, and the case flag.
func (m *Manager) ToMap() map[string]any {
	return map[string]any{
		"stopwords":      m.Stopwords().Words(),
		"keep_words":     m.KeepWords().Words(),
		"case_sensitive": m.caseSensitive,
	}
}

// FileManagerOptions configures ManagerFromFiles. Additions and Keep name
// newline-delimited word files.
type FileManagerOptions struct {
	Additions     []string
	Keep          []string
	CaseSensitive bool
}

// ManagerFromFiles builds a Manager on the default base set, merging
// addition files into the stopword set and keep files into the keep-list.
func ManagerFromFiles(opts FileManagerOptions) (*Manager, error) {
	m, err := NewManager(ManagerOptions{CaseSensitive: opts.CaseSensitive})
	if err != nil {
		return nil, err
	}
	for _, path := range opts.Additions {
		if err := m.LoadAdditions(path); err != nil {
			return nil, err
		}
	}
	for _, path := range opts.Keep {
		words, err := LoadWords(path, opts.CaseSensitive)
		if err != nil {
			return nil, err
		}
		m.AddKeepWords(words.Words()...)
	}
	return m, nil
}

// ResourceManagerOptions configures ManagerFromResources. An empty Metadata
// selects the embedded bundle.
type ResourceManagerOptions struct {
	Metadata      string
	Additions     []string
	Keep          []string
	CaseSensitive bool
}

// ManagerFromResources builds a Manager whose base set is the merged
// resolution of the named resources. Empty names select DefaultResource.
func ManagerFromResources(names []string, opts ResourceManagerOptions) (*Manager, error) {
	if len(names) == 0 {
		names = []string{DefaultResource}
	}
	resolver, err := resolverFor(opts.Metadata)
	if err != nil {
		return nil, err
	}
	base, err := resolver.ResolveAll(names, opts.CaseSensitive)
	if err != nil {
		return nil, err
	}
	return NewManager(ManagerOptions{
		Base:          base.Words(),
		Additions:     opts.Additions,
		Keep:          opts.Keep,
		CaseSensitive: opts.CaseSensitive,
	})
}

func copySet(m map[string]struct{}) Set {
	out := make(map[string]struct{}, len(m))
	for w := range m {
		out[w] = struct{}{}
	}
	return setFromMap(out)
}
