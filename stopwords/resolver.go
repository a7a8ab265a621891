package stopwords

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// Resolver resolves named stopword resources declared in a metadata
// document, applying extends inheritance and alias redirects. It owns two
// caches for the process lifetime of the instance: the parsed document
// (loaded once) and the resolved word sets, keyed by resource name and
// case-sensitivity mode. Neither cache is ever invalidated; the resource
// bundle is treated as static.
//
// A Resolver is safe for concurrent use. Two goroutines racing to resolve
// the same uncached name serialize on an internal lock and the loser reuses
// the winner's entry.
type Resolver struct {
	fsys    fs.FS
	docPath string
	baseDir string

	docOnce sync.Once
	doc     *Document
	docErr  error

	mu    sync.Mutex
	cache map[setKey]Set
}

// setKey identifies a resolved set. Case sensitivity participates in the
// key: normalization changes both membership and cardinality, so the two
// modes must never share an entry.
type setKey struct {
	name          string
	caseSensitive bool
}

// NewResolver creates a Resolver for the metadata document at docPath
// within fsys. Resource file references resolve relative to the document's
// directory and must stay inside it.
func NewResolver(fsys fs.FS, docPath string) *Resolver {
	baseDir := path.Dir(docPath)
	return &Resolver{
		fsys:    fsys,
		docPath: docPath,
		baseDir: baseDir,
		cache:   make(map[setKey]Set),
	}
}

// NewResolverFromPath creates a Resolver for a metadata document on the OS
// filesystem, rooted at the document's directory.
func NewResolverFromPath(metadataPath string) (*Resolver, error) {
	abs, err := filepath.Abs(metadataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve metadata path %q: %w", metadataPath, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}
	return NewResolver(os.DirFS(filepath.Dir(abs)), filepath.Base(abs)), nil
}

func (r *Resolver) document() (*Document, error) {
	r.docOnce.Do(func() {
		r.doc, r.docErr = loadDocument(r.fsys, r.docPath)
	})
	return r.doc, r.docErr
}

// Names returns the sorted resource names declared in the document.
func (r *Resolver) Names() ([]string, error) {
	doc, err := r.document()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(doc.Sets))
	for name := range doc.Sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Entries returns a copy of the document's resource declarations.
func (r *Resolver) Entries() (map[string]Entry, error) {
	doc, err := r.document()
	if err != nil {
		return nil, err
	}
	entries := make(map[string]Entry, len(doc.Sets))
	for name, entry := range doc.Sets {
		entries[name] = entry
	}
	return entries, nil
}

// Resolve returns the effective word set of the named resource: the union
// of its own file's words with the recursively resolved sets of every
// parent in extends, or the target's set verbatim for an alias.
func (r *Resolver) Resolve(name string, caseSensitive bool) (Set, error) {
	doc, err := r.document()
	if err != nil {
		return Set{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolveLocked(doc, name, caseSensitive)
}

// ResolveAll resolves and merges several named resources.
func (r *Resolver) ResolveAll(names []string, caseSensitive bool) (Set, error) {
	merged := NewSet()
	for _, name := range names {
		set, err := r.Resolve(name, caseSensitive)
		if err != nil {
			return Set{}, err
		}
		merged = merged.Union(set)
	}
	return merged, nil
}

// visitState tracks a node during one resolution pass: absent from the map
// means unvisited, inProgress means on the active chain, done means its set
// is in the cache.
type visitState int

const (
	inProgress visitState = iota + 1
	done
)

// frame is one entry on the explicit work stack. deps holds the names this
// node needs resolved first: the alias target for alias entries, the
// extends parents otherwise.
type frame struct {
	name  string
	entry Entry
	deps  []string
	next  int
}

// resolveLocked runs an iterative post-order walk over the extends/alias
// graph rooted at root. Completed nodes land in the shared cache; a failure
// anywhere aborts the walk with nothing cached for in-progress nodes, so
// siblings and previously resolved dependents stay valid.
func (r *Resolver) resolveLocked(doc *Document, root string, caseSensitive bool) (Set, error) {
	if set, ok := r.cache[setKey{root, caseSensitive}]; ok {
		return set, nil
	}

	state := make(map[string]visitState)
	var stack []frame
	var chain []string

	push := func(name string) error {
		if state[name] == inProgress {
			return &CycleError{Chain: append(append([]string{}, chain...), name)}
		}
		entry, ok := doc.Sets[name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownResource, name)
		}
		var deps []string
		if entry.Alias != "" {
			if entry.File != "" || len(entry.Extends) > 0 {
				return fmt.Errorf(
					"%w: alias %q cannot define additional fields: %s",
					ErrAliasConflict, name, strings.Join(entryConflicts(entry), ", "),
				)
			}
			deps = []string{entry.Alias}
		} else {
			if entry.File == "" && len(entry.Extends) == 0 {
				return fmt.Errorf(
					"%w: resource %q declares no file, extends, or alias",
					ErrSchema, name,
				)
			}
			deps = entry.Extends
		}
		state[name] = inProgress
		chain = append(chain, name)
		stack = append(stack, frame{name: name, entry: entry, deps: deps})
		return nil
	}

	if err := push(root); err != nil {
		return Set{}, err
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.next < len(top.deps) {
			dep := top.deps[top.next]
			top.next++
			if _, ok := r.cache[setKey{dep, caseSensitive}]; ok {
				continue
			}
			if err := push(dep); err != nil {
				return Set{}, err
			}
			continue
		}

		// All dependencies resolved; finish this node.
		finished := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		chain = chain[:len(chain)-1]

		var result Set
		if finished.entry.Alias != "" {
			// Alias is a pure redirect: the target's set is stored
			// under the original name, never merged with anything.
			result = r.cache[setKey{finished.entry.Alias, caseSensitive}]
		} else {
			merged := make(map[string]struct{})
			for _, parent := range finished.deps {
				for w := range r.cache[setKey{parent, caseSensitive}].words {
					merged[w] = struct{}{}
				}
			}
			if finished.entry.File != "" {
				filePath, err := r.resourcePath(finished.name, finished.entry.File)
				if err != nil {
					return Set{}, err
				}
				words, err := readWordFile(r.fsys, filePath, caseSensitive)
				if err != nil {
					return Set{}, fmt.Errorf("%w: resource %q: %v", ErrMissingFile, finished.name, err)
				}
				for _, w := range words {
					merged[w] = struct{}{}
				}
			}
			result = setFromMap(merged)
		}

		state[finished.name] = done
		r.cache[setKey{finished.name, caseSensitive}] = result
	}

	return r.cache[setKey{root, caseSensitive}], nil
}

// resourcePath resolves a resource entry's relative file reference against
// the document directory and verifies containment: the cleaned path must
// stay under the directory, with no `..` escape and no absolute reference.
func (r *Resolver) resourcePath(name, ref string) (string, error) {
	joined := path.Join(r.baseDir, ref)
	if path.IsAbs(ref) || !fs.ValidPath(joined) || !withinDir(r.baseDir, joined) {
		return "", fmt.Errorf(
			"%w: resource %q file %q resolves outside %q",
			ErrPathEscape, name, ref, r.baseDir,
		)
	}
	info, err := fs.Stat(r.fsys, joined)
	if err != nil {
		return "", fmt.Errorf(
			"%w: resource %q file %q not found under %q",
			ErrMissingFile, name, ref, r.baseDir,
		)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf(
			"%w: resource %q file %q is not a regular file",
			ErrMissingFile, name, ref,
		)
	}
	return joined, nil
}

func withinDir(baseDir, target string) bool {
	if baseDir == "." {
		return true
	}
	return target == baseDir || strings.HasPrefix(target, baseDir+"/")
}

func entryConflicts(entry Entry) []string {
	var fields []string
	if len(entry.Extends) > 0 {
		fields = append(fields, "extends")
	}
	if entry.File != "" {
		fields = append(fields, "file")
	}
	return fields
}
