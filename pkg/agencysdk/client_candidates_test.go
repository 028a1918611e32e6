package agencysdk

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateCandidateMultipart(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	var gotForm map[string]string
	var gotResumeName string
	var gotResume []byte
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/candidates", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		gotForm = map[string]string{}
		for key, vals := range r.MultipartForm.Value {
			gotForm[key] = vals[0]
		}

		file, header, err := r.FormFile("resume")
		require.NoError(t, err)
		defer file.Close()
		gotResumeName = header.Filename
		gotResume, err = io.ReadAll(file)
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Candidate{ID: 42, FullName: "Priya Raman"})
	}))

	created, err := client.CreateCandidate(ctx, CandidateRequest{
		FullName:     "Priya Raman",
		VisaStatus:   VisaH1B,
		PrimarySkill: "Java",
		State:        "TX",
		TargetRate:   85.5,
	}, "resume.pdf", strings.NewReader("%PDF-1.4 fake"))
	require.NoError(t, err)
	require.Equal(t, int64(42), created.ID)

	require.Equal(t, "Priya Raman", gotForm["fullName"])
	require.Equal(t, "H1B", gotForm["visaStatus"])
	require.Equal(t, "Java", gotForm["primarySkill"])
	require.Equal(t, "TX", gotForm["state"])
	require.Equal(t, "85.5", gotForm["targetRate"])

	// Empty optional fields stay off the wire entirely.
	_, sent := gotForm["city"]
	require.False(t, sent)

	require.Equal(t, "resume.pdf", gotResumeName)
	require.Equal(t, "%PDF-1.4 fake", string(gotResume))
}

func TestCreateCandidateWithoutResume(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		// No resume part when no file was given.
		_, _, err := r.FormFile("resume")
		require.ErrorIs(t, err, http.ErrMissingFile)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Candidate{ID: 7})
	}))

	created, err := client.CreateCandidate(ctx, CandidateRequest{FullName: "Omar Haddad"}, "", nil)
	require.NoError(t, err)
	require.Equal(t, int64(7), created.ID)
}

func TestDownloadResume(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/candidates/42/resume", r.URL.Path)
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Content-Disposition", `attachment; filename="priya_raman.pdf"`)
		w.Write([]byte("resume-bytes"))
	}))

	data, name, err := client.DownloadResume(ctx, 42)
	require.NoError(t, err)
	require.Equal(t, "priya_raman.pdf", name)
	require.Equal(t, "resume-bytes", string(data))
}

func TestSearchCandidatesQuery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	var gotQuery map[string]string
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/candidates/search", r.URL.Path)
		gotQuery = map[string]string{}
		for key, vals := range r.URL.Query() {
			gotQuery[key] = vals[0]
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[]}`))
	}))

	_, err := client.SearchCandidates(ctx, CandidateSearch{
		FullName:   "priya",
		VisaStatus: VisaH1B,
		Status:     StatusInterview,
		Page:       PageRequest{Page: 2, Size: 25, SortBy: "createdAt", SortDir: "desc"},
	})
	require.NoError(t, err)

	require.Equal(t, map[string]string{
		"fullName":   "priya",
		"visaStatus": "H1B",
		"status":     "INTERVIEW",
		"page":       "2",
		"size":       "25",
		"sortBy":     "createdAt",
		"sortDir":    "desc",
	}, gotQuery)
}
