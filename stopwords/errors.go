package stopwords

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure kinds callers may want to distinguish.
// All errors returned by this package match exactly one of these via
// errors.Is.
var (
	// ErrSchema indicates a missing or malformed metadata document, or a
	// resource entry that declares nothing resolvable.
	ErrSchema = errors.New("stopword metadata schema error")

	// ErrUnknownResource indicates a resource name absent from the
	// document's sets mapping.
	ErrUnknownResource = errors.New("unknown stopword resource")

	// ErrCycle indicates a circular extends/alias chain.
	ErrCycle = errors.New("stopword resource cycle")

	// ErrPathEscape indicates a resource file reference that resolves
	// outside the metadata directory.
	ErrPathEscape = errors.New("stopword resource path escapes metadata directory")

	// ErrMissingFile indicates a resource file reference that does not
	// exist or is not a regular file.
	ErrMissingFile = errors.New("stopword resource file not found")

	// ErrAliasConflict indicates an alias entry that also declares file
	// or extends fields.
	ErrAliasConflict = errors.New("stopword alias conflict")

	// ErrConfig indicates an invalid option combination or an unsupported
	// export format.
	ErrConfig = errors.New("stopword configuration error")
)

// CycleError reports a circular extends/alias chain. Chain holds the
// resource names along the cycle in resolution order, ending with the name
// that closed the loop.
type CycleError struct {
	Chain []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("circular stopword resource chain: %s", strings.Join(e.Chain, " -> "))
}

// Is makes CycleError match ErrCycle under errors.Is.
func (e *CycleError) Is(target error) bool {
	return target == ErrCycle
}
