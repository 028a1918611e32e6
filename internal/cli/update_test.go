package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// The backend's update endpoints replace the whole record, so the CLI
// fetches the current values and sends them alongside whatever flags
// the operator changed. These tests pin the wire bodies.

func signinHandler(t *testing.T, w http.ResponseWriter) {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "admin"}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"accessToken": token,
		"id":          7,
		"username":    "admin",
		"firstName":   "Ada",
		"lastName":    "Santos",
	})
}

func TestUpdateCandidateKeepsUnsetFields(t *testing.T) {
	t.Setenv("CONSULTANCY_CONFIG_DIR", t.TempDir())

	current := map[string]any{
		"id":                     int64(5),
		"fullName":               "Priya Raman",
		"visaStatus":             "H1B",
		"city":                   "Austin",
		"state":                  "TX",
		"primarySkill":           "Java",
		"experienceYears":        6,
		"contactInfo":            "priya@example.com",
		"notes":                  "Strong backend profile",
		"status":                 "BENCH",
		"assignedConsultantName": "Dev Kapoor",
		"targetRate":             85.5,
	}

	var sent map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/auth/signin":
			signinHandler(t, w)
		case r.Method == http.MethodGet && r.URL.Path == "/candidates/5":
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(current)
		case r.Method == http.MethodPut && r.URL.Path == "/candidates/5":
			require.NoError(t, r.ParseMultipartForm(1<<20))
			sent = map[string]string{}
			for key, vals := range r.MultipartForm.Value {
				sent[key] = vals[0]
			}
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(current)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	_, _, err := runCommand(t, "login", "-u", "admin", "-p", "pw", "--base-url", srv.URL)
	require.NoError(t, err)

	_, _, err = runCommand(t, "candidates", "update", "5", "--status", "INTERVIEW", "--base-url", srv.URL)
	require.NoError(t, err)

	// The one changed flag went out changed; everything else carried
	// the record's current values instead of going out blank.
	require.Equal(t, "INTERVIEW", sent["status"])
	require.Equal(t, "Priya Raman", sent["fullName"])
	require.Equal(t, "H1B", sent["visaStatus"])
	require.Equal(t, "Austin", sent["city"])
	require.Equal(t, "TX", sent["state"])
	require.Equal(t, "Java", sent["primarySkill"])
	require.Equal(t, "6", sent["experienceYears"])
	require.Equal(t, "priya@example.com", sent["contactInfo"])
	require.Equal(t, "Strong backend profile", sent["notes"])
	require.Equal(t, "Dev Kapoor", sent["assignedConsultantName"])
	require.Equal(t, "85.5", sent["targetRate"])
}

func TestUpdateVendorKeepsUnsetFields(t *testing.T) {
	t.Setenv("CONSULTANCY_CONFIG_DIR", t.TempDir())

	current := map[string]any{
		"id":                  int64(3),
		"companyName":         "Apex Systems",
		"primaryContactName":  "Lena Ortiz",
		"primaryContactEmail": "lena@apex.example",
		"city":                "Dallas",
		"state":               "TX",
		"preferredSkills":     "Java, AWS",
		"rateRangeMin":        60.0,
		"rateRangeMax":        95.0,
		"notes":               "Pays net 30",
		"status":              "PREFERRED",
	}

	var sent map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/auth/signin":
			signinHandler(t, w)
		case r.Method == http.MethodGet && r.URL.Path == "/vendors/3":
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(current)
		case r.Method == http.MethodPut && r.URL.Path == "/vendors/3":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(current)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	_, _, err := runCommand(t, "login", "-u", "admin", "-p", "pw", "--base-url", srv.URL)
	require.NoError(t, err)

	_, _, err = runCommand(t, "vendors", "update", "3", "--status", "SUSPENDED", "--base-url", srv.URL)
	require.NoError(t, err)

	require.Equal(t, "SUSPENDED", sent["status"])
	require.Equal(t, "Apex Systems", sent["companyName"])
	require.Equal(t, "Lena Ortiz", sent["primaryContactName"])
	require.Equal(t, "lena@apex.example", sent["primaryContactEmail"])
	require.Equal(t, "Dallas", sent["city"])
	require.Equal(t, "Java, AWS", sent["preferredSkills"])
	require.Equal(t, 60.0, sent["rateRangeMin"])
	require.Equal(t, 95.0, sent["rateRangeMax"])
	require.Equal(t, "Pays net 30", sent["notes"])
}

func TestUpdateEmployeeExplicitZeroClearsField(t *testing.T) {
	t.Setenv("CONSULTANCY_CONFIG_DIR", t.TempDir())

	current := map[string]any{
		"id":          int64(9),
		"fullName":    "Dev Kapoor",
		"email":       "dev@staffhive.example",
		"phoneNumber": "555-0100",
		"role":        "RECRUITER",
		"notes":       "Covers the Austin bench",
	}

	var sent map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/auth/signin":
			signinHandler(t, w)
		case r.Method == http.MethodGet && r.URL.Path == "/employees/9":
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(current)
		case r.Method == http.MethodPut && r.URL.Path == "/employees/9":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(current)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	_, _, err := runCommand(t, "login", "-u", "admin", "-p", "pw", "--base-url", srv.URL)
	require.NoError(t, err)

	// --notes "" is a deliberate clear, not an unset flag; it must not
	// be backfilled from the current record.
	_, _, err = runCommand(t, "employees", "update", "9", "--notes", "", "--base-url", srv.URL)
	require.NoError(t, err)

	require.Equal(t, "Dev Kapoor", sent["fullName"])
	require.Equal(t, "RECRUITER", sent["role"])
	_, notesSent := sent["notes"]
	require.False(t, notesSent)
}