package stopwords_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/durak-nlp/durak/stopwords"
)

func TestMetadata_MissingFileIsSchemaError(t *testing.T) {
	resolver, err := stopwords.NewResolverFromPath(filepath.Join(t.TempDir(), "metadata.json"))
	require.NoError(t, err)

	_, err = resolver.Names()
	assert.ErrorIs(t, err, stopwords.ErrSchema)
}

func TestMetadata_InvalidJSONIsSchemaError(t *testing.T) {
	resolver := newResolver(t, map[string]string{
		"metadata.json": `{"sets": `,
	})

	_, err := resolver.Resolve("a", false)
	assert.ErrorIs(t, err, stopwords.ErrSchema)
}

func TestMetadata_TopLevelMustBeObject(t *testing.T) {
	resolver := newResolver(t, map[string]string{
		"metadata.json": `["not", "an", "object"]`,
	})

	_, err := resolver.Names()
	assert.ErrorIs(t, err, stopwords.ErrSchema)
}

func TestMetadata_EmptySetsIsSchemaError(t *testing.T) {
	resolver := newResolver(t, map[string]string{
		"metadata.json": `{"sets": {}}`,
	})

	_, err := resolver.Names()
	assert.ErrorIs(t, err, stopwords.ErrSchema)
}

func TestMetadata_MissingSetsIsSchemaError(t *testing.T) {
	resolver := newResolver(t, map[string]string{
		"metadata.json": `{"other": true}`,
	})

	_, err := resolver.Names()
	assert.ErrorIs(t, err, stopwords.ErrSchema)
}

func TestMetadata_SetsMustBeObject(t *testing.T) {
	resolver := newResolver(t, map[string]string{
		"metadata.json": `{"sets": ["a", "b"]}`,
	})

	_, err := resolver.Names()
	assert.ErrorIs(t, err, stopwords.ErrSchema)
}

func TestMetadata_ExtendsMustHoldStrings(t *testing.T) {
	resolver := newResolver(t, map[string]string{
		"metadata.json": `{"sets": {"a": {"extends": [1, 2]}}}`,
	})

	_, err := resolver.Names()
	assert.ErrorIs(t, err, stopwords.ErrSchema)
	assert.Contains(t, err.Error(), "extends")
	assert.NotContains(t, err.Error(), "not valid JSON")
}

func TestMetadata_EmptyAliasIsSchemaError(t *testing.T) {
	resolver := newResolver(t, map[string]string{
		"metadata.json": `{"sets": {"a": {"alias": "  "}}}`,
	})

	_, err := resolver.Names()
	assert.ErrorIs(t, err, stopwords.ErrSchema)
}

func TestMetadata_DocumentLoadedOncePerResolver(t *testing.T) {
	resolver := newResolver(t, map[string]string{
		"metadata.json": `{"sets": {"a": {"file": "x.txt"}}}`,
		"x.txt":         "ve\n",
	})

	first, err := resolver.Entries()
	require.NoError(t, err)
	second, err := resolver.Entries()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
