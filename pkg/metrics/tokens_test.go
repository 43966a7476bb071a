package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitIdentifier_CamelCase(t *testing.T) {
	assert.Equal(t, []string{"get", "payment"}, SplitIdentifier("getPayment"))
}

func TestSplitIdentifier_SplitsBeforeEveryUppercase(t *testing.T) {
	// Splitting before every uppercase letter (not just word boundaries)
	// breaks "HTTPServer" into "H","T","T","P","Server"; the single-letter
	// fragments are dropped as <= 2 chars, leaving only "server".
	assert.Equal(t, []string{"server"}, SplitIdentifier("HTTPServer"))
}

func TestSplitIdentifier_DropsShortFragments(t *testing.T) {
	// "id" and "a" are <= 2 chars and dropped; "get" survives.
	assert.Equal(t, []string{"get"}, SplitIdentifier("getIdA"))
}

func TestSplitIdentifier_SplitsOnNonWordRuns(t *testing.T) {
	assert.Equal(t, []string{"foo", "bar"}, SplitIdentifier("foo_bar"))
}

func TestSplitIdentifier_Empty(t *testing.T) {
	assert.Empty(t, SplitIdentifier(""))
}

func TestBuildTokenBag_DedupesAcrossSources(t *testing.T) {
	bag := BuildTokenBag("chargePayment", []string{"PaymentRequest"}, []string{"chargeCard"})
	assert.Contains(t, bag, "charge")
	assert.Contains(t, bag, "payment")
	assert.Contains(t, bag, "request")
	assert.Contains(t, bag, "card")

	seen := make(map[string]bool)
	for _, tok := range bag {
		assert.False(t, seen[tok], "token %q appeared twice", tok)
		seen[tok] = true
	}
}

func TestBuildTokenBag_PreservesFirstAppearanceOrder(t *testing.T) {
	bag := BuildTokenBag("runJob", []string{"JobConfig"}, nil)
	require := assert.New(t)
	require.Equal("run", bag[0])
	require.Equal("job", bag[1])
	require.Equal("config", bag[2])
}
