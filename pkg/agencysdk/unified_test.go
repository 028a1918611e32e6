package agencysdk

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func unifiedFixtureHandler(t *testing.T, benchDown bool) http.Handler {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/candidates", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Page[Candidate]{Content: []Candidate{
			{ID: 1, FullName: "Priya Raman", Status: StatusInterview, VisaStatus: VisaH1B,
				PrimarySkill: "Java", City: "Austin", State: "TX"},
		}})
	})
	mux.HandleFunc("/bench-candidates", func(w http.ResponseWriter, r *http.Request) {
		if benchDown {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(Page[BenchCandidate]{Content: []BenchCandidate{
			{ID: 2, FullName: "Omar Haddad", VisaStatus: VisaOPT, PrimarySkill: "React",
				City: "Plano", State: "TX"},
		}})
	})
	mux.HandleFunc("/working-candidates", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Page[WorkingCandidate]{Content: []WorkingCandidate{
			{ID: 3, FullName: "Mei Chen", VisaStatus: VisaGC, JobRole: "DevOps Engineer",
				WorkingLocation: "Seattle, WA"},
		}})
	})
	return mux
}

func TestUnifiedCandidatesMergesAndTags(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client, _, _ := newTestClient(t, unifiedFixtureHandler(t, false))

	rows, err := client.UnifiedCandidates(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	bySource := map[CandidateSource]UnifiedCandidate{}
	for _, row := range rows {
		bySource[row.Source] = row
	}

	// Every row keeps its source tag.
	require.Contains(t, bySource, SourceOriginal)
	require.Contains(t, bySource, SourceBench)
	require.Contains(t, bySource, SourceWorking)

	// Original rows keep their own pipeline status.
	require.Equal(t, StatusInterview, bySource[SourceOriginal].Status)
	require.Equal(t, "Austin, TX", bySource[SourceOriginal].Location)

	// Bench rows are implicitly BENCH.
	require.Equal(t, StatusBench, bySource[SourceBench].Status)

	// Working rows are implicitly WORKING and remap jobRole and
	// workingLocation into the shared columns.
	working := bySource[SourceWorking]
	require.Equal(t, StatusWorking, working.Status)
	require.Equal(t, "DevOps Engineer", working.PrimarySkill)
	require.Equal(t, "Seattle, WA", working.Location)
}

func TestUnifiedCandidatesDegradesPerSource(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client, _, _ := newTestClient(t, unifiedFixtureHandler(t, true))

	// The bench source is down; the view still renders the other two.
	rows, err := client.UnifiedCandidates(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		require.NotEqual(t, SourceBench, row.Source)
	}
}

func TestUnifiedCandidatesSessionExpiryWins(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client, store, nav := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	require.NoError(t, store.SetToken(ctx, "a.b.c"))

	_, err := client.UnifiedCandidates(ctx)
	require.Error(t, err)
	require.True(t, IsSessionExpired(err))

	// Three concurrent 401s → up to three redirects; at least one fired
	// and the session is gone.
	require.GreaterOrEqual(t, nav.redirects.Load(), int64(1))
	_, ok := store.Token(ctx)
	require.False(t, ok)
}

func TestFilterUnified(t *testing.T) {
	t.Parallel()

	rows := []UnifiedCandidate{
		{FullName: "Priya Raman", VisaStatus: VisaH1B, PrimarySkill: "Java", State: "TX"},
		{FullName: "Omar Haddad", VisaStatus: VisaOPT, PrimarySkill: "React", State: "TX"},
		{FullName: "Mei Chen", VisaStatus: VisaGC, PrimarySkill: "DevOps Engineer", State: "WA"},
	}

	// Name filtering is case-insensitive substring match.
	require.Len(t, FilterUnified(rows, UnifiedFilter{FullName: "priya"}), 1)

	// Visa status matches exactly.
	require.Len(t, FilterUnified(rows, UnifiedFilter{VisaStatus: VisaOPT}), 1)

	// Filters compose.
	require.Len(t, FilterUnified(rows, UnifiedFilter{State: "tx", PrimarySkill: "jav"}), 1)

	// Empty filter passes everything through.
	require.Len(t, FilterUnified(rows, UnifiedFilter{}), 3)
}
