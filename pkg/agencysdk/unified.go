package agencysdk

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/staffhive/benchctl/pkg/slogx"
)

// CandidateSource tags which record set a unified row came from.
type CandidateSource string

const (
	SourceOriginal CandidateSource = "original"
	SourceBench    CandidateSource = "bench"
	SourceWorking  CandidateSource = "working"
)

// UnifiedCandidate is one row of the combined candidate view: the three
// record sets flattened to the columns the list screen shows, each row
// keeping its source tag so detail/edit actions route to the right
// resource.
type UnifiedCandidate struct {
	Source          CandidateSource
	ID              int64
	FullName        string
	VisaStatus      VisaStatus
	Status          CandidateStatus
	PrimarySkill    string
	Location        string
	City            string
	State           string
	ExperienceYears int
}

// UnifiedFilter narrows the combined view client-side, matching the list
// screen's filter row: substring, case-insensitive, except visa status
// which matches exactly.
type UnifiedFilter struct {
	FullName     string
	VisaStatus   VisaStatus
	PrimarySkill string
	State        string
}

// UnifiedCandidates fetches the three candidate sources concurrently and
// merges them into one display set. A source that fails contributes
// nothing rather than failing the whole view; the screen is usable as
// long as any source answers. A failing credential is the exception: the
// 401 interceptor has already torn the session down by the time the
// fetch returns, so there is nothing sensible to display.
func (c *Client) UnifiedCandidates(ctx context.Context) ([]UnifiedCandidate, error) {
	var (
		wg       sync.WaitGroup
		original []Candidate
		bench    []BenchCandidate
		working  []WorkingCandidate
		errs     [3]error
	)

	logger := slogx.FromContext(ctx)

	wg.Add(3)
	go func() {
		defer wg.Done()
		page, err := c.ListCandidates(ctx, PageRequest{})
		if err != nil {
			errs[0] = err
			logger.Debug("candidate source unavailable", "source", SourceOriginal, "error", err)
			return
		}
		original = page.Content
	}()
	go func() {
		defer wg.Done()
		page, err := c.ListBenchCandidates(ctx, PageRequest{})
		if err != nil {
			errs[1] = err
			logger.Debug("candidate source unavailable", "source", SourceBench, "error", err)
			return
		}
		bench = page.Content
	}()
	go func() {
		defer wg.Done()
		page, err := c.ListWorkingCandidates(ctx, PageRequest{})
		if err != nil {
			errs[2] = err
			logger.Debug("candidate source unavailable", "source", SourceWorking, "error", err)
			return
		}
		working = page.Content
	}()
	wg.Wait()

	for _, err := range errs {
		if IsSessionExpired(err) {
			return nil, err
		}
	}

	return mergeCandidates(original, bench, working), nil
}

// mergeCandidates flattens the three record sets, tagging each row and
// normalizing the columns that differ per source: bench and working rows
// get their implied status, and working rows map jobRole into the skill
// column and workingLocation into the location column.
func mergeCandidates(
	original []Candidate,
	bench []BenchCandidate,
	working []WorkingCandidate,
) []UnifiedCandidate {
	combined := make([]UnifiedCandidate, 0, len(original)+len(bench)+len(working))

	for _, cand := range original {
		combined = append(combined, UnifiedCandidate{
			Source:          SourceOriginal,
			ID:              cand.ID,
			FullName:        cand.FullName,
			VisaStatus:      cand.VisaStatus,
			Status:          cand.Status,
			PrimarySkill:    cand.PrimarySkill,
			Location:        joinLocation(cand.City, cand.State),
			City:            cand.City,
			State:           cand.State,
			ExperienceYears: cand.ExperienceYears,
		})
	}

	for _, cand := range bench {
		combined = append(combined, UnifiedCandidate{
			Source:          SourceBench,
			ID:              cand.ID,
			FullName:        cand.FullName,
			VisaStatus:      cand.VisaStatus,
			Status:          StatusBench,
			PrimarySkill:    cand.PrimarySkill,
			Location:        joinLocation(cand.City, cand.State),
			City:            cand.City,
			State:           cand.State,
			ExperienceYears: cand.ExperienceYears,
		})
	}

	for _, cand := range working {
		skill := cand.JobRole
		location := cand.WorkingLocation
		combined = append(combined, UnifiedCandidate{
			Source:          SourceWorking,
			ID:              cand.ID,
			FullName:        cand.FullName,
			VisaStatus:      cand.VisaStatus,
			Status:          StatusWorking,
			PrimarySkill:    skill,
			Location:        location,
			ExperienceYears: cand.ExperienceYears,
		})
	}

	return combined
}

// Match reports whether the row passes the filter.
func (f UnifiedFilter) Match(cand UnifiedCandidate) bool {
	if f.FullName != "" && !containsFold(cand.FullName, f.FullName) {
		return false
	}
	if f.VisaStatus != "" && cand.VisaStatus != f.VisaStatus {
		return false
	}
	if f.PrimarySkill != "" && !containsFold(cand.PrimarySkill, f.PrimarySkill) {
		return false
	}
	if f.State != "" && !containsFold(cand.State, f.State) {
		return false
	}
	return true
}

// FilterUnified returns the rows passing the filter, preserving order.
func FilterUnified(candidates []UnifiedCandidate, filter UnifiedFilter) []UnifiedCandidate {
	filtered := make([]UnifiedCandidate, 0, len(candidates))
	for _, cand := range candidates {
		if filter.Match(cand) {
			filtered = append(filtered, cand)
		}
	}
	return filtered
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func joinLocation(city, state string) string {
	switch {
	case city == "":
		return state
	case state == "":
		return city
	default:
		return fmt.Sprintf("%s, %s", city, state)
	}
}
