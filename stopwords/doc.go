// Package stopwords resolves named stopword resources declared in a JSON
// metadata document and filters tokens against them.
//
// Resources form an inheritance graph: an entry may reference a word file,
// extend other resources (its effective set is the union of theirs), or
// alias another resource outright. The Resolver walks this graph with cycle
// detection and memoizes results per resource name and case-sensitivity
// mode. A Manager layers runtime mutation on top of a resolved base set:
// additions, removals, and a keep-list of words that are never treated as
// stopwords.
//
// The package ships an embedded Turkish resource bundle; package-level
// helpers (IsStopword, ListStopwords, FilterTokens) run against it unless a
// metadata path selects another bundle.
package stopwords
