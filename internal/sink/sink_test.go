package sink_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ClusterCockpit/terms-of-interest/internal/pipeline"
	"github.com/ClusterCockpit/terms-of-interest/internal/sink"
)

func TestStdoutDefaultTemplate(t *testing.T) {
	var buf bytes.Buffer
	s, err := sink.NewStdout(&buf, "")
	require.NoError(t, err)

	require.NoError(t, s.Write(context.Background(), pipeline.MatchResult{Term: "reminder", MessageID: "m1"}))
	assert.Equal(t, "reminder, m1\n", buf.String())
}

func TestStdoutCustomTemplate(t *testing.T) {
	var buf bytes.Buffer
	s, err := sink.NewStdout(&buf, "term={term} id={message_id}")
	require.NoError(t, err)

	require.NoError(t, s.Write(context.Background(), pipeline.MatchResult{Term: "espn+", MessageID: "m2"}))
	assert.Equal(t, "term=espn+ id=m2\n", buf.String())
}

func TestSQLSinkWritesAndCounts(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "results.db")
	s, err := sink.OpenSQLite(dbPath)
	require.NoError(t, err)
	defer s.Close()

	// Real pipelines key results by whatever message_id the input carries;
	// a generated uuid stands in for that here so this fixture doesn't
	// depend on any particular upstream id scheme.
	m1, m2 := uuid.NewString(), uuid.NewString()

	ctx := context.Background()
	require.NoError(t, s.Write(ctx, pipeline.MatchResult{Term: "reminder", MessageID: m1}))
	require.NoError(t, s.Write(ctx, pipeline.MatchResult{Term: "reminder", MessageID: m2}))
	require.NoError(t, s.Write(ctx, pipeline.MatchResult{Term: "espn+", MessageID: m1}))

	count, err := s.CountByTerm("reminder", "")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = s.CountByTerm("reminder", m1)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = s.CountByTerm("nonexistent", "")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
