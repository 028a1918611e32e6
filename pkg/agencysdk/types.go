package agencysdk

import (
	"net/url"
	"strconv"
)

// Enumerations mirror the backend's wire values exactly; display
// strings live with the front end.

// VisaStatus is a candidate's work-authorization class.
type VisaStatus string

const (
	VisaH1B     VisaStatus = "H1B"
	VisaOPT     VisaStatus = "OPT"
	VisaGC      VisaStatus = "GC"
	VisaCitizen VisaStatus = "CITIZEN"
	VisaF1      VisaStatus = "F1"
	VisaL1      VisaStatus = "L1"
	VisaOther   VisaStatus = "OTHER"
)

// CandidateStatus tracks where a candidate sits in the placement pipeline.
type CandidateStatus string

const (
	StatusBench     CandidateStatus = "BENCH"
	StatusInterview CandidateStatus = "INTERVIEW"
	StatusWorking   CandidateStatus = "WORKING"
	StatusPlaced    CandidateStatus = "PLACED"
	StatusInactive  CandidateStatus = "INACTIVE"
)

// VendorStatus classifies a vendor relationship.
type VendorStatus string

const (
	VendorActive    VendorStatus = "ACTIVE"
	VendorInactive  VendorStatus = "INACTIVE"
	VendorPreferred VendorStatus = "PREFERRED"
	VendorSuspended VendorStatus = "SUSPENDED"
)

// ActivityType is a kind of candidate-placement event.
type ActivityType string

const (
	ActivityApplied            ActivityType = "APPLIED"
	ActivitySubmitted          ActivityType = "SUBMITTED"
	ActivityInterviewScheduled ActivityType = "INTERVIEW_SCHEDULED"
	ActivityInterviewCompleted ActivityType = "INTERVIEW_COMPLETED"
	ActivityFeedbackReceived   ActivityType = "FEEDBACK_RECEIVED"
	ActivityRejected           ActivityType = "REJECTED"
	ActivityOnHold             ActivityType = "ON_HOLD"
)

// Page is the backend's Spring-style page envelope.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

// PageRequest selects a page of a listing. Zero values fall back to the
// backend defaults (page 0, size 10, createdAt descending).
type PageRequest struct {
	Page    int
	Size    int
	SortBy  string
	SortDir string
}

func (p PageRequest) query() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Size > 0 {
		q.Set("size", strconv.Itoa(p.Size))
	}
	if p.SortBy != "" {
		q.Set("sortBy", p.SortBy)
	}
	if p.SortDir != "" {
		q.Set("sortDir", p.SortDir)
	}
	return q
}

// Timestamps come back in the backend's LocalDateTime form
// ("2024-05-01T09:30:00"), which is not RFC 3339; the client treats all
// date fields as opaque display strings rather than parsing them.

// Candidate is a record from the legacy unified candidates table.
type Candidate struct {
	ID                     int64           `json:"id"`
	FullName               string          `json:"fullName"`
	VisaStatus             VisaStatus      `json:"visaStatus"`
	City                   string          `json:"city"`
	State                  string          `json:"state"`
	PrimarySkill           string          `json:"primarySkill"`
	ExperienceYears        int             `json:"experienceYears"`
	ContactInfo            string          `json:"contactInfo"`
	Notes                  string          `json:"notes"`
	ResumeFilename         string          `json:"resumeFilename"`
	Status                 CandidateStatus `json:"status"`
	CreatedAt              string          `json:"createdAt"`
	UpdatedAt              string          `json:"updatedAt"`
	CreatedByName          string          `json:"createdByName"`
	AssignedConsultantName string          `json:"assignedConsultantName"`
	TotalSubmissions       int             `json:"totalSubmissions"`
	TargetRate             float64         `json:"targetRate"`
	InterviewCompany       string          `json:"interviewCompany"`
	InterviewPosition      string          `json:"interviewPosition"`
	FirstInterviewDate     string          `json:"firstInterviewDate"`
	VendorContactName      string          `json:"vendorContactName"`
	VendorContactEmail     string          `json:"vendorContactEmail"`
	VendorContactPhone     string          `json:"vendorContactPhone"`
	ClientCompany          string          `json:"clientCompany"`
	ProjectName            string          `json:"projectName"`
	HourlyRate             float64         `json:"hourlyRate"`
	StartDate              string          `json:"startDate"`
	EndDate                string          `json:"endDate"`
	ConsultantNotes        string          `json:"consultantNotes"`
}

// CandidateRequest is the form side of candidate create/update. Fields
// are sent as multipart form values alongside the optional resume file.
type CandidateRequest struct {
	FullName               string
	VisaStatus             VisaStatus
	City                   string
	State                  string
	PrimarySkill           string
	ExperienceYears        int
	ContactInfo            string
	Notes                  string
	Status                 CandidateStatus
	AssignedConsultantName string
	TargetRate             float64
}

// BenchCandidate is an available-for-placement profile.
type BenchCandidate struct {
	ID                     int64      `json:"id"`
	FullName               string     `json:"fullName"`
	VisaStatus             VisaStatus `json:"visaStatus"`
	City                   string     `json:"city"`
	State                  string     `json:"state"`
	PrimarySkill           string     `json:"primarySkill"`
	ExperienceYears        int        `json:"experienceYears"`
	PhoneNumber            string     `json:"phoneNumber"`
	Email                  string     `json:"email"`
	TargetRate             float64    `json:"targetRate"`
	AssignedConsultantID   int64      `json:"assignedConsultantId"`
	AssignedConsultantName string     `json:"assignedConsultantName"`
	Notes                  string     `json:"notes"`
	ResumeFilename         string     `json:"resumeFilename"`
	CreatedAt              string     `json:"createdAt"`
	UpdatedAt              string     `json:"updatedAt"`
	CreatedByName          string     `json:"createdByName"`
}

// BenchCandidateRequest is the form side of bench-candidate create/update.
type BenchCandidateRequest struct {
	FullName             string
	VisaStatus           VisaStatus
	City                 string
	State                string
	PrimarySkill         string
	ExperienceYears      int
	PhoneNumber          string
	Email                string
	TargetRate           float64
	AssignedConsultantID int64
	Notes                string
}

// WorkingCandidate is a candidate currently placed at a client.
type WorkingCandidate struct {
	ID              int64      `json:"id"`
	FullName        string     `json:"fullName"`
	VisaStatus      VisaStatus `json:"visaStatus"`
	WorkingLocation string     `json:"workingLocation"`
	JobRole         string     `json:"jobRole"`
	ExperienceYears int        `json:"experienceYears"`
	Email           string     `json:"email"`
	PhoneNumber     string     `json:"phoneNumber"`
	HourlyRate      float64    `json:"hourlyRate"`
	ProjectDuration string     `json:"projectDuration"`
	ClientName      string     `json:"clientName"`
	PlacedByID      int64      `json:"placedById"`
	PlacedByName    string     `json:"placedByName"`
	Notes           string     `json:"notes"`
	CreatedAt       string     `json:"createdAt"`
	UpdatedAt       string     `json:"updatedAt"`
	CreatedByName   string     `json:"createdByName"`
}

// WorkingCandidateRequest is the JSON body for working-candidate writes.
type WorkingCandidateRequest struct {
	FullName        string     `json:"fullName"`
	VisaStatus      VisaStatus `json:"visaStatus,omitempty"`
	WorkingLocation string     `json:"workingLocation,omitempty"`
	JobRole         string     `json:"jobRole,omitempty"`
	ExperienceYears int        `json:"experienceYears,omitempty"`
	Email           string     `json:"email,omitempty"`
	PhoneNumber     string     `json:"phoneNumber,omitempty"`
	HourlyRate      float64    `json:"hourlyRate,omitempty"`
	ProjectDuration string     `json:"projectDuration,omitempty"`
	ClientName      string     `json:"clientName,omitempty"`
	PlacedByID      int64      `json:"placedById,omitempty"`
	Notes           string     `json:"notes,omitempty"`
}

// Employee is an internal consultant or staff member.
type Employee struct {
	ID            int64  `json:"id"`
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phoneNumber"`
	Role          string `json:"role"`
	Notes         string `json:"notes"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
	CreatedByName string `json:"createdByName"`
}

// EmployeeRequest is the JSON body for employee writes.
type EmployeeRequest struct {
	FullName    string `json:"fullName"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Role        string `json:"role,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// Vendor is a partner company that sources placement requirements.
type Vendor struct {
	ID                   int64        `json:"id"`
	CompanyName          string       `json:"companyName"`
	PrimaryContactName   string       `json:"primaryContactName"`
	PrimaryContactEmail  string       `json:"primaryContactEmail"`
	PrimaryContactPhone  string       `json:"primaryContactPhone"`
	Address              string       `json:"address"`
	City                 string       `json:"city"`
	State                string       `json:"state"`
	PreferredSkills      string       `json:"preferredSkills"`
	RateRangeMin         float64      `json:"rateRangeMin"`
	RateRangeMax         float64      `json:"rateRangeMax"`
	TotalSubmissions     int          `json:"totalSubmissions"`
	SuccessfulPlacements int          `json:"successfulPlacements"`
	Notes                string       `json:"notes"`
	Status               VendorStatus `json:"status"`
	CreatedAt            string       `json:"createdAt"`
	UpdatedAt            string       `json:"updatedAt"`
	CreatedByName        string       `json:"createdByName"`
}

// VendorRequest is the JSON body for vendor writes.
type VendorRequest struct {
	CompanyName         string       `json:"companyName"`
	PrimaryContactName  string       `json:"primaryContactName,omitempty"`
	PrimaryContactEmail string       `json:"primaryContactEmail,omitempty"`
	PrimaryContactPhone string       `json:"primaryContactPhone,omitempty"`
	Address             string       `json:"address,omitempty"`
	City                string       `json:"city,omitempty"`
	State               string       `json:"state,omitempty"`
	PreferredSkills     string       `json:"preferredSkills,omitempty"`
	RateRangeMin        float64      `json:"rateRangeMin,omitempty"`
	RateRangeMax        float64      `json:"rateRangeMax,omitempty"`
	Notes               string       `json:"notes,omitempty"`
	Status              VendorStatus `json:"status,omitempty"`
}

// Activity is one placement-pipeline event against a bench candidate.
type Activity struct {
	ID            int64        `json:"id"`
	CandidateID   int64        `json:"candidateId"`
	ActivityType  ActivityType `json:"activityType"`
	ClientName    string       `json:"clientName"`
	ContactPerson string       `json:"contactPerson"`
	ContactPhone  string       `json:"contactPhone"`
	ContactEmail  string       `json:"contactEmail"`
	SubmittedRate float64      `json:"submittedRate"`
	Notes         string       `json:"notes"`
	ActivityDate  string       `json:"activityDate"`
	CreatedAt     string       `json:"createdAt"`
	UpdatedAt     string       `json:"updatedAt"`
	CreatedByName string       `json:"createdByName"`
}

// ActivityRequest is the JSON body for activity writes.
type ActivityRequest struct {
	CandidateID   int64        `json:"candidateId"`
	ActivityType  ActivityType `json:"activityType"`
	ClientName    string       `json:"clientName,omitempty"`
	ContactPerson string       `json:"contactPerson,omitempty"`
	ContactPhone  string       `json:"contactPhone,omitempty"`
	ContactEmail  string       `json:"contactEmail,omitempty"`
	SubmittedRate float64      `json:"submittedRate,omitempty"`
	Notes         string       `json:"notes,omitempty"`
	ActivityDate  string       `json:"activityDate,omitempty"`
}

// Document is a stored candidate document's metadata.
type Document struct {
	ID                int64  `json:"id"`
	Filename          string `json:"filename"`
	OriginalFilename  string `json:"originalFilename"`
	FileSize          int64  `json:"fileSize"`
	FormattedFileSize string `json:"formattedFileSize"`
	ContentType       string `json:"contentType"`
	DocumentType      string `json:"documentType"`
	UploadedAt        string `json:"uploadedAt"`
	UploadedByName    string `json:"uploadedByName"`
	FileExtension     string `json:"fileExtension"`
}

// DashboardStats is the headline numbers screen.
type DashboardStats struct {
	BenchProfiles     int64       `json:"benchProfiles"`
	WorkingCandidates int64       `json:"workingCandidates"`
	InInterview       int64       `json:"inInterview"`
	Placed            int64       `json:"placed"`
	TotalCandidates   int64       `json:"totalCandidates"`
	TotalEmployees    int64       `json:"totalEmployees"`
	TotalVendors      int64       `json:"totalVendors"`
	RecentCandidates  []Candidate `json:"recentCandidates"`
}

// AnalyticsReport is a loosely-typed analytics document. The analytics
// endpoints are display-only and their shapes shift server-side, so the
// client passes them through instead of pinning structs.
type AnalyticsReport map[string]any
