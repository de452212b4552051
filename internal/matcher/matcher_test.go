package matcher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ClusterCockpit/terms-of-interest/internal/matcher"
)

func buildAll(t *testing.T, terms []string) map[matcher.Algo]matcher.Matcher {
	t.Helper()
	out := make(map[matcher.Algo]matcher.Matcher)
	for _, algo := range []matcher.Algo{matcher.AlgoNaiveList, matcher.AlgoNaiveSet, matcher.AlgoTrie, matcher.AlgoAhoCorasick} {
		m, err := matcher.New(algo)
		require.NoError(t, err)
		for _, term := range terms {
			m.AddTerm(term)
		}
		m.Build()
		out[algo] = m
	}
	return out
}

func keys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// Scenario 1: basic match.
func TestBasicMatch(t *testing.T) {
	terms := []string{"reminder", "espn+"}
	text := "@haarrrisson You're all set! We'll send you a reminder on 4/13 to stream #UFC236 LIVE on ESPN+ #ItsBoutTime"
	for algo, m := range buildAll(t, terms) {
		assert.ElementsMatch(t, []string{"reminder", "espn+"}, keys(m.Query(text)), "algo=%s", algo)
	}
}

// Scenario 2: empty term set yields the empty set, never nil-panics.
func TestEmptyTermSet(t *testing.T) {
	for algo, m := range buildAll(t, nil) {
		for _, text := range []string{"", " ", "hello"} {
			assert.Empty(t, m.Query(text), "algo=%s text=%q", algo, text)
		}
	}
}

// Scenario 3: worst-case token overlap; "aa" never appears because
// matching is whole-word.
func TestWorstCaseOverlap(t *testing.T) {
	terms := []string{"a", "aa", "aaa", "aaaa", "a aaa aaaa"}
	text := "a aaa aaaa"
	want := []string{"a", "aaa", "aaaa", "a aaa aaaa"}
	for algo, m := range buildAll(t, terms) {
		assert.ElementsMatch(t, want, keys(m.Query(text)), "algo=%s", algo)
	}
}

// Scenario 4: multi-phrase overlap across the word-level matchers.
func TestMultiPhraseOverlap(t *testing.T) {
	terms := []string{
		"cell phones", "problematic cell phone", "tickets",
		"white sox", "red sox", "sox home opener", "home opener tickets",
	}
	text := "sox fan using a problematic cell phone to order home opener tickets for the red sox opener"
	want := []string{"problematic cell phone", "tickets", "red sox", "home opener tickets"}

	for _, algo := range []matcher.Algo{matcher.AlgoTrie, matcher.AlgoAhoCorasick} {
		m, err := matcher.New(algo)
		require.NoError(t, err)
		for _, term := range terms {
			m.AddTerm(term)
		}
		m.Build()
		assert.ElementsMatch(t, want, keys(m.Query(text)), "algo=%s", algo)
	}
}

// P2: cross-equivalence between NaiveSet and AhoCorasick when every term
// is already lowercased and whitespace-normalized.
func TestNaiveSetAndAhoCorasickAgree(t *testing.T) {
	terms := []string{"cell phones", "tickets", "red sox", "home opener tickets"}
	texts := []string{
		"sox fan using a problematic cell phone to order home opener tickets",
		"",
		"tickets tickets tickets",
		"no match here at all",
	}

	naive, _ := matcher.New(matcher.AlgoNaiveSet)
	ac, _ := matcher.New(matcher.AlgoAhoCorasick)
	for _, term := range terms {
		naive.AddTerm(term)
		ac.AddTerm(term)
	}
	naive.Build()
	ac.Build()

	for _, text := range texts {
		assert.ElementsMatch(t, keys(naive.Query(text)), keys(ac.Query(text)), "text=%q", text)
	}
}

// P3: idempotence across repeated queries on a frozen matcher.
func TestQueryIsIdempotent(t *testing.T) {
	for algo, m := range buildAll(t, []string{"tickets", "home opener tickets"}) {
		text := "home opener tickets go on sale"
		first := keys(m.Query(text))
		second := keys(m.Query(text))
		assert.ElementsMatch(t, first, second, "algo=%s", algo)
	}
}

// P4: monotonicity on terms - a superset dictionary never loses a match.
func TestMonotonicityOnTerms(t *testing.T) {
	small := []string{"tickets"}
	big := []string{"tickets", "home opener tickets", "red sox"}
	text := "home opener tickets for the red sox"

	for _, algo := range []matcher.Algo{matcher.AlgoNaiveSet, matcher.AlgoAhoCorasick, matcher.AlgoTrie} {
		ms, _ := matcher.New(algo)
		mb, _ := matcher.New(algo)
		for _, term := range small {
			ms.AddTerm(term)
		}
		for _, term := range big {
			mb.AddTerm(term)
		}
		ms.Build()
		mb.Build()

		smallResult := ms.Query(text)
		bigResult := mb.Query(text)
		for term := range smallResult {
			_, ok := bigResult[term]
			assert.True(t, ok, "algo=%s term=%q missing from superset result", algo, term)
		}
	}
}

// P5: A-C structural invariants after build.
func TestAhoCorasickStructuralInvariants(t *testing.T) {
	ac := matcher.NewAhoCorasick()
	for _, term := range []string{"red sox", "sox home opener", "home opener tickets"} {
		ac.AddTerm(term)
	}
	ac.Build()

	assert.True(t, ac.RootFailIsRoot())
	assert.NoError(t, ac.CheckFailInvariants())
}

func TestConstructionOrderPanics(t *testing.T) {
	ac := matcher.NewAhoCorasick()
	assert.Panics(t, func() { ac.Query("anything") })

	ac.AddTerm("tickets")
	ac.Build()
	assert.Panics(t, func() { ac.AddTerm("late") })
}

func TestUnknownAlgo(t *testing.T) {
	_, err := matcher.New("Bogus")
	require.Error(t, err)
	var unknown *matcher.ErrUnknownAlgo
	require.ErrorAs(t, err, &unknown)
}
