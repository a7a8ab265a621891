package litmus

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/durak-nlp/durak/stopwords"
)

func TestEmbeddedBundleIsSetup(t *testing.T) {
	base, err := stopwords.BaseStopwords()
	require.NoError(t, err)

	assert.Greater(t, base.Len(), 0)
	assert.True(t, base.Contains("ve"))
}

func TestGoldieIsSetup(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, t.Name(), []byte("Goldie is setup!"))
}
