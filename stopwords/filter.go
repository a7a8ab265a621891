package stopwords

import "fmt"

// QueryOptions selects which resolved stopword set a package-level query
// runs against. Zero value: the embedded default resource, matched
// case-insensitively.
type QueryOptions struct {
	// Resources names the resources to resolve and merge. Empty selects
	// DefaultResource.
	Resources []string
	// Metadata is the path to a metadata document. Empty selects the
	// embedded bundle.
	Metadata string
	// CaseSensitive disables Turkish case folding for both the resolved
	// words and the queried token.
	CaseSensitive bool
}

// LoadResource resolves a single named resource against the metadata
// document at metadataPath (empty for the embedded bundle).
func LoadResource(name, metadataPath string, caseSensitive bool) (Set, error) {
	resolver, err := resolverFor(metadataPath)
	if err != nil {
		return Set{}, err
	}
	return resolver.Resolve(name, caseSensitive)
}

// LoadResources resolves and merges several named resources.
func LoadResources(names []string, metadataPath string, caseSensitive bool) (Set, error) {
	resolver, err := resolverFor(metadataPath)
	if err != nil {
		return Set{}, err
	}
	return resolver.ResolveAll(names, caseSensitive)
}

func querySet(opts QueryOptions) (Set, error) {
	names := opts.Resources
	if len(names) == 0 {
		names = []string{DefaultResource}
	}
	return LoadResources(names, opts.Metadata, opts.CaseSensitive)
}

// IsStopword reports whether token belongs to the selected stopword set.
// An empty token is never a stopword.
func IsStopword(token string, opts QueryOptions) (bool, error) {
	normalized := normalize(token, opts.CaseSensitive)
	if normalized == "" {
		return false, nil
	}
	set, err := querySet(opts)
	if err != nil {
		return false, err
	}
	return set.Contains(normalized), nil
}

// ListStopwords returns the selected stopword set as a sorted slice.
func ListStopwords(opts QueryOptions) ([]string, error) {
	set, err := querySet(opts)
	if err != nil {
		return nil, err
	}
	return set.Words(), nil
}

// FilterOptions configures FilterTokens. Either supply a Manager, or any
// of Base/Additions/Keep/CaseSensitive for an ad hoc one; mixing the two is
// a configuration error. CaseSensitive is a pointer so that an explicit
// flag can be checked against a supplied Manager's mode.
type FilterOptions struct {
	Manager       *Manager
	Base          []string
	Additions     []string
	Keep          []string
	CaseSensitive *bool
}

// FilterTokens returns the tokens that are not stopwords, preserving
// order. With a zero FilterOptions it filters against the embedded default
// resource.
func FilterTokens(tokens []string, opts FilterOptions) ([]string, error) {
	manager := opts.Manager
	if manager == nil {
		caseSensitive := opts.CaseSensitive != nil && *opts.CaseSensitive
		var err error
		manager, err = NewManager(ManagerOptions{
			Base:          opts.Base,
			Additions:     opts.Additions,
			Keep:          opts.Keep,
			CaseSensitive: caseSensitive,
		})
		if err != nil {
			return nil, err
		}
	} else {
		if opts.CaseSensitive != nil && *opts.CaseSensitive != manager.CaseSensitive() {
			return nil, fmt.Errorf("%w: CaseSensitive does not match the supplied manager", ErrConfig)
		}
		if opts.Base != nil || opts.Additions != nil || opts.Keep != nil {
			return nil, fmt.Errorf("%w: cannot combine Base/Additions/Keep with a supplied manager", ErrConfig)
		}
	}
	return manager.Filter(tokens), nil
}
