package stopwords_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/durak-nlp/durak/stopwords"
)

func TestFilterTokens_DefaultsToEmbeddedBase(t *testing.T) {
	filtered, err := stopwords.FilterTokens([]string{"ve", "Durak", "ama"}, stopwords.FilterOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Durak"}, filtered)
}

func TestFilterTokens_WithExplicitManager(t *testing.T) {
	m, err := stopwords.NewManager(stopwords.ManagerOptions{Base: []string{"rt"}})
	require.NoError(t, err)

	filtered, err := stopwords.FilterTokens([]string{"rt", "harika"}, stopwords.FilterOptions{Manager: m})
	require.NoError(t, err)
	assert.Equal(t, []string{"harika"}, filtered)
}

func TestFilterTokens_ManagerWithAdHocOptionsIsConfigError(t *testing.T) {
	m, err := stopwords.NewManager(stopwords.ManagerOptions{Base: []string{"ve"}})
	require.NoError(t, err)

	_, err = stopwords.FilterTokens([]string{"ve"}, stopwords.FilterOptions{
		Manager: m,
		Keep:    []string{"ve"},
	})
	assert.ErrorIs(t, err, stopwords.ErrConfig)
}

func TestFilterTokens_ManagerCaseMismatchIsConfigError(t *testing.T) {
	m, err := stopwords.NewManager(stopwords.ManagerOptions{Base: []string{"ve"}})
	require.NoError(t, err)

	caseSensitive := true
	_, err = stopwords.FilterTokens([]string{"ve"}, stopwords.FilterOptions{
		Manager:       m,
		CaseSensitive: &caseSensitive,
	})
	assert.ErrorIs(t, err, stopwords.ErrConfig)
}

func TestFilterTokens_MatchingCaseFlagWithManagerIsAllowed(t *testing.T) {
	m, err := stopwords.NewManager(stopwords.ManagerOptions{Base: []string{"ve"}})
	require.NoError(t, err)

	caseSensitive := false
	filtered, err := stopwords.FilterTokens([]string{"ve", "kal"}, stopwords.FilterOptions{
		Manager:       m,
		CaseSensitive: &caseSensitive,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"kal"}, filtered)
}

func TestFilterTokens_AdHocKeepList(t *testing.T) {
	filtered, err := stopwords.FilterTokens([]string{"ve", "ama"}, stopwords.FilterOptions{
		Base: []string{"ve", "ama"},
		Keep: []string{"ama"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ama"}, filtered)
}

func TestFilterTokens_EmptyInput(t *testing.T) {
	filtered, err := stopwords.FilterTokens(nil, stopwords.FilterOptions{})
	require.NoError(t, err)
	assert.Empty(t, filtered)
}

func TestIsStopword_DefaultResource(t *testing.T) {
	found, err := stopwords.IsStopword("ve", stopwords.QueryOptions{})
	require.NoError(t, err)
	assert.True(t, found)

	found, err = stopwords.IsStopword("durak", stopwords.QueryOptions{})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestIsStopword_EmptyTokenNeverMatches(t *testing.T) {
	found, err := stopwords.IsStopword("", stopwords.QueryOptions{})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestIsStopword_CustomMetadata(t *testing.T) {
	metadata := writeBundle(t, map[string]string{
		"metadata.json": `{"sets": {"only": {"file": "only.txt"}}}`,
		"only.txt":      "özel\n",
	})

	found, err := stopwords.IsStopword("özel", stopwords.QueryOptions{
		Resources: []string{"only"},
		Metadata:  metadata,
	})
	require.NoError(t, err)
	assert.True(t, found)
}

func TestIsStopword_UnknownResourcePropagates(t *testing.T) {
	metadata := writeBundle(t, map[string]string{
		"metadata.json": `{"sets": {"a": {"file": "a.txt"}}}`,
		"a.txt":         "ve\n",
	})

	_, err := stopwords.IsStopword("ve", stopwords.QueryOptions{
		Resources: []string{"missing"},
		Metadata:  metadata,
	})
	assert.ErrorIs(t, err, stopwords.ErrUnknownResource)
}

func TestListStopwords_ReturnsSortedWords(t *testing.T) {
	words, err := stopwords.ListStopwords(stopwords.QueryOptions{})
	require.NoError(t, err)
	assert.IsNonDecreasing(t, words)
	assert.Contains(t, words, "ve")
	assert.Contains(t, words, "ama")
}

func TestListStopwords_MergesResources(t *testing.T) {
	metadata := writeBundle(t, map[string]string{
		"metadata.json": `{"sets": {
			"a": {"file": "a.txt"},
			"b": {"file": "b.txt"}
		}}`,
		"a.txt": "bir\n",
		"b.txt": "iki\n",
	})

	words, err := stopwords.ListStopwords(stopwords.QueryOptions{
		Resources: []string{"a", "b"},
		Metadata:  metadata,
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"bir", "iki"}, words)
}
