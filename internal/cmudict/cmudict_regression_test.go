package cmudict

import (
	"context"
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/kincaid/pkg/readability"
)

// mistakeBaseline is the number of CMU dictionary 0.7b words the rule tables
// get wrong. The count includes the header comment lines the line pattern
// turns into entries, and the estimator must reproduce it exactly.
const mistakeBaseline = 6842

// TestRegression_CMUDict runs the estimator over the full dictionary named
// by KINCAID_CMUDICT. The file must be UTF-8.
func TestRegression_CMUDict(t *testing.T) {
	path := os.Getenv("KINCAID_CMUDICT")
	if path == "" {
		t.Skip("KINCAID_CMUDICT not set")
	}

	dict, err := newTestParser().ParseFile(path)
	require.NoError(t, err)
	require.NotZero(t, dict.Len())

	res, err := Evaluate(context.Background(), dict, readability.Default(), runtime.GOMAXPROCS(0))
	require.NoError(t, err)

	t.Logf("words=%d mistakes=%d accuracy=%.4f", res.Words, res.Mistakes, res.Accuracy())
	require.Equal(t, mistakeBaseline, res.Mistakes)
}
