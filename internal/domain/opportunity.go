package domain

import (
	"time"

	"github.com/lib/pq"
)

// Kind names the store an opportunity lives in.
type Kind string

const (
	KindWork  Kind = "work"
	KindEvent Kind = "event"
)

type OpportunityType string

const (
	TypeInternship  OpportunityType = "internship"
	TypeJob         OpportunityType = "job"
	TypeHackathon   OpportunityType = "hackathon"
	TypeLearning    OpportunityType = "learning"
	TypeScholarship OpportunityType = "scholarship"
)

// KindOf reports which store family a type belongs to.
func KindOf(t OpportunityType) (Kind, bool) {
	switch t {
	case TypeInternship, TypeJob:
		return KindWork, true
	case TypeHackathon, TypeLearning, TypeScholarship:
		return KindEvent, true
	}
	return "", false
}

type Status string

const (
	StatusActive   Status = "active"
	StatusExpired  Status = "expired"
	StatusArchived Status = "archived"
)

// Action tells whether an upsert inserted a new row or refreshed an existing one.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
)

// WorkOpportunity is a row of work_opportunities (internships and jobs).
type WorkOpportunity struct {
	ID           string          `db:"id" json:"id"`
	Type         OpportunityType `db:"type" json:"type" validate:"required,oneof=internship job"`
	Title        string          `db:"title" json:"title" validate:"notblank,max=500"`
	ApplyURL     string          `db:"apply_url" json:"apply_url" validate:"required,safeurl"`
	City         *string         `db:"city" json:"city,omitempty" validate:"omitempty,max=200"`
	Country      *string         `db:"country" json:"country,omitempty" validate:"omitempty,max=200"`
	WorkStyle    *string         `db:"work_style" json:"work_style,omitempty" validate:"omitempty,oneof=remote hybrid onsite"`
	Organization *string         `db:"organization" json:"organization,omitempty" validate:"omitempty,max=300"`
	Company      *string         `db:"company" json:"company,omitempty" validate:"omitempty,max=300"`
	ImageURL     *string         `db:"image_url" json:"image_url,omitempty" validate:"omitempty,safeurl"`
	Stipend      *string         `db:"stipend" json:"stipend,omitempty"`
	Duration     *string         `db:"duration" json:"duration,omitempty"`
	Salary       *string         `db:"salary" json:"salary,omitempty"`
	Experience   *string         `db:"experience" json:"experience,omitempty"`
	Skills       pq.StringArray  `db:"skills" json:"skills" validate:"max=20,dive,max=100"`
	Tags         pq.StringArray  `db:"tags" json:"tags" validate:"max=10,dive,max=100"`
	Eligibility  *string         `db:"eligibility" json:"eligibility,omitempty"`
	Deadline     *time.Time      `db:"deadline" json:"deadline,omitempty"`
	Status       Status          `db:"status" json:"status" validate:"omitempty,oneof=active expired"`
	IsVerified   bool            `db:"is_verified" json:"is_verified"`
	IsFeatured   bool            `db:"is_featured" json:"is_featured"`
	ViewCount    int64           `db:"view_count" json:"view_count"`
	Source       *string         `db:"source" json:"source,omitempty" validate:"omitempty,max=100"`
	ExternalID   *string         `db:"external_id" json:"external_id,omitempty" validate:"omitempty,max=200"`
	PostedAt     time.Time       `db:"posted_at" json:"posted_at"`
	LastSeenAt   time.Time       `db:"last_seen_at" json:"last_seen_at"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at" json:"updated_at"`

	// Inserted is only populated by an upsert's RETURNING clause.
	Inserted bool `db:"inserted" json:"-"`
}

// EventOpportunity is a row of event_opportunities (hackathons, learning, scholarships).
type EventOpportunity struct {
	ID           string          `db:"id" json:"id"`
	Type         OpportunityType `db:"type" json:"type" validate:"required,oneof=hackathon learning scholarship"`
	Title        string          `db:"title" json:"title" validate:"notblank,max=500"`
	ApplyURL     string          `db:"apply_url" json:"apply_url" validate:"required,safeurl"`
	City         *string         `db:"city" json:"city,omitempty" validate:"omitempty,max=200"`
	Country      *string         `db:"country" json:"country,omitempty" validate:"omitempty,max=200"`
	Organization *string         `db:"organization" json:"organization,omitempty" validate:"omitempty,max=300"`
	ImageURL     *string         `db:"image_url" json:"image_url,omitempty" validate:"omitempty,safeurl"`
	TeamSize     *string         `db:"team_size" json:"team_size,omitempty" validate:"omitempty,max=100"`
	Fees         *string         `db:"fees" json:"fees,omitempty" validate:"omitempty,oneof=paid unpaid"`
	Perks        *string         `db:"perks" json:"perks,omitempty"`
	EventDate    *time.Time      `db:"event_date" json:"event_date,omitempty"`
	LearningType *string         `db:"learning_type" json:"learning_type,omitempty" validate:"omitempty,oneof=workshop course bootcamp mentorship"`
	Tags         pq.StringArray  `db:"tags" json:"tags" validate:"max=10,dive,max=100"`
	Domain       pq.StringArray  `db:"domain" json:"domain" validate:"max=10,dive,max=100"`
	Deadline     *time.Time      `db:"deadline" json:"deadline,omitempty"`
	Status       Status          `db:"status" json:"status" validate:"omitempty,oneof=active expired archived"`
	IsVerified   bool            `db:"is_verified" json:"is_verified"`
	IsFeatured   bool            `db:"is_featured" json:"is_featured"`
	ViewCount    int64           `db:"view_count" json:"view_count"`
	Source       *string         `db:"source" json:"source,omitempty" validate:"omitempty,max=100"`
	ExternalID   *string         `db:"external_id" json:"external_id,omitempty" validate:"omitempty,max=200"`
	PostedAt     time.Time       `db:"posted_at" json:"posted_at"`
	LastSeenAt   time.Time       `db:"last_seen_at" json:"last_seen_at"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at" json:"updated_at"`

	Inserted bool `db:"inserted" json:"-"`
}

// Normalize fills ingestion defaults before a row is written.
func (w *WorkOpportunity) Normalize(now time.Time) {
	if w.Status == "" {
		w.Status = StatusActive
	}
	if w.PostedAt.IsZero() {
		w.PostedAt = now
	}
	if w.Skills == nil {
		w.Skills = pq.StringArray{}
	}
	if w.Tags == nil {
		w.Tags = pq.StringArray{}
	}
	// stipend/duration belong to internships, salary/experience to jobs
	if w.Type != TypeInternship {
		w.Stipend, w.Duration = nil, nil
	}
	if w.Type != TypeJob {
		w.Salary, w.Experience = nil, nil
	}
}

func (e *EventOpportunity) Normalize(now time.Time) {
	if e.Status == "" {
		e.Status = StatusActive
	}
	if e.PostedAt.IsZero() {
		e.PostedAt = now
	}
	if e.Tags == nil {
		e.Tags = pq.StringArray{}
	}
	if e.Domain == nil {
		e.Domain = pq.StringArray{}
	}
	if e.Type != TypeLearning {
		e.LearningType = nil
	}
}

// Resolved is an opportunity located by identifier alone, tagged with its store.
type Resolved struct {
	Kind        Kind `json:"kind"`
	Opportunity any  `json:"data"`
}

const (
	EventCreate = "create"
	EventUpdate = "update"
	EventDelete = "delete"
)

// EventName maps an upsert outcome to the event announced for it.
func (a Action) EventName() string {
	if a == ActionCreated {
		return EventCreate
	}
	return EventUpdate
}

// OpportunityEvent is announced to downstream consumers after a write.
type OpportunityEvent struct {
	Action      string          `json:"action"` // "create", "update" or "delete"
	Kind        Kind            `json:"kind"`
	Type        OpportunityType `json:"type,omitempty"`
	ID          string          `json:"id"`
	Opportunity any             `json:"opportunity,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
}
