package list_test

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/durak-nlp/durak/cmd/list"
)

func runList(t *testing.T, args ...string) string {
	t.Helper()
	// ListCmd is package-level; restore flag defaults so runs stay
	// independent of each other.
	list.ListCmd.Flags().Visit(func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	})
	buf := &bytes.Buffer{}
	list.ListCmd.SetOut(buf)
	list.ListCmd.SetArgs(args)
	require.NoError(t, list.ListCmd.Execute())
	return buf.String()
}

func TestListCmd_PrintsSortedBaseWords(t *testing.T) {
	output := runList(t)

	words := strings.Split(strings.TrimSpace(output), "\n")
	assert.True(t, sort.StringsAreSorted(words))
	assert.Contains(t, words, "ve")
	assert.Contains(t, words, "ama")
}

func TestListCmd_JSONOutput(t *testing.T) {
	output := runList(t, "domains/social_media", "--json")

	var words []string
	require.NoError(t, json.Unmarshal([]byte(output), &words))
	assert.Contains(t, words, "rt")
	assert.Contains(t, words, "ve")
}

func TestListCmd_Names(t *testing.T) {
	output := runList(t, "--names")

	names := strings.Split(strings.TrimSpace(output), "\n")
	assert.Contains(t, names, "base/turkish")
	assert.Contains(t, names, "tr/base")
}
