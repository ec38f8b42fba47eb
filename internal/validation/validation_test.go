package validation

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus_connect/internal/domain"
)

func TestIsSafeURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://good.example/a", true},
		{"http://careers.example.com/jobs?id=1", true},
		{"https://8.8.8.8/x", true},
		{"  https://good.example/padded  ", true},
		{"ftp://good.example/a", false},
		{"javascript:alert(1)", false},
		{"//good.example/a", false},
		{"https://", false},
		{"http://localhost:8080/", false},
		{"http://api.localhost/", false},
		{"http://printer.local/", false},
		{"http://127.0.0.1/", false},
		{"http://10.1.2.3/", false},
		{"http://192.168.0.10/", false},
		{"http://172.16.5.4/", false},
		{"http://169.254.169.254/latest/meta-data", false},
		{"http://[::1]/", false},
		{"http://[::ffff:127.0.0.1]/", false},
		{"http://0.0.0.0/", false},
		{"http://bad_host.example/", false},
		{"https://good.example./a", true},
		{"http://localhost./", false},
		{"http://127.0.0.1./", false},
		{"http://2130706433/", false},
		{"http://127.1/", false},
		{"http://0x7f.0.0.1/", false},
		{"http://0177.0.0.1/", false},
		{"http://0x7f000001/", false},
		{"http://10.0x10203/", false},
		{"http://134744072/", true},
		{"http://0x08.0x08.0x08.0x08/", true},
		{"http://999.0.0.1/", false},
		{"http://1.2.3.4.5/", false},
		{"http://4294967296/", false},
		{"http://jobs.2024/", false},
		{"http://1.2.3.09/", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSafeURL(tt.url))
		})
	}
}

func fields(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr), "expected *domain.ValidationError, got %v", err)
	out := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func TestStruct_Work(t *testing.T) {
	valid := domain.WorkOpportunity{
		Type:     domain.TypeInternship,
		Title:    "Backend Intern",
		ApplyURL: "https://good.example/a",
		Status:   domain.StatusActive,
	}
	require.NoError(t, Struct(&valid))

	bad := valid
	bad.Title = "   "
	bad.ApplyURL = "http://127.0.0.1/a"
	style := "spaceship"
	bad.WorkStyle = &style
	bad.Tags = pq.StringArray(strings.Split("a,b,c,d,e,f,g,h,i,j,k", ","))
	bad.Status = domain.StatusArchived

	got := fields(t, Struct(&bad))
	assert.Equal(t, "must not be blank", got["title"])
	assert.Equal(t, "must be a public http or https URL", got["apply_url"])
	assert.Equal(t, "must be one of: remote hybrid onsite", got["work_style"])
	assert.Equal(t, "must have at most 10 items", got["tags"])
	assert.Contains(t, got, "status")
}

func TestStruct_Event(t *testing.T) {
	e := domain.EventOpportunity{
		Type:     domain.TypeScholarship,
		Title:    strings.Repeat("x", 501),
		ApplyURL: "https://good.example/s",
	}

	got := fields(t, Struct(&e))
	assert.Equal(t, "must be at most 500 characters", got["title"])
	assert.NotContains(t, got, "apply_url")
}

func TestStruct_MissingType(t *testing.T) {
	w := domain.WorkOpportunity{Title: "t", ApplyURL: "https://good.example/a"}

	got := fields(t, Struct(&w))
	assert.Equal(t, "is required", got["type"])
}

func TestPatch_ConvertsValues(t *testing.T) {
	out, err := Patch(domain.KindWork, map[string]any{
		"title":       "New title",
		"city":        "",
		"skills":      "go, sql ,",
		"tags":        []any{"a", " b "},
		"deadline":    "2025-06-30",
		"is_featured": true,
		"view_count":  99,
	})
	require.NoError(t, err)

	assert.Equal(t, "New title", out["title"])
	assert.Nil(t, out["city"])
	assert.Contains(t, out, "city")
	assert.Equal(t, pq.StringArray{"go", "sql"}, out["skills"])
	assert.Equal(t, pq.StringArray{"a", "b"}, out["tags"])
	assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), out["deadline"])
	assert.Equal(t, true, out["is_featured"])
	assert.NotContains(t, out, "view_count")
}

func TestPatch_PerKindFields(t *testing.T) {
	_, err := Patch(domain.KindEvent, map[string]any{"salary": "100k"})
	assert.Equal(t, "no updatable fields", fields(t, err)["body"])

	out, err := Patch(domain.KindEvent, map[string]any{"status": "archived", "fees": "unpaid"})
	require.NoError(t, err)
	assert.Equal(t, "archived", out["status"])

	_, err = Patch(domain.KindWork, map[string]any{"status": "archived"})
	assert.Contains(t, fields(t, err), "status")
}

func TestPatch_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		body  map[string]any
		field string
	}{
		{"type change", map[string]any{"type": "job"}, "type"},
		{"blank title", map[string]any{"title": " "}, "title"},
		{"title not string", map[string]any{"title": 5}, "title"},
		{"private image url", map[string]any{"image_url": "http://10.0.0.1/i.png"}, "image_url"},
		{"bad work style", map[string]any{"work_style": "moon"}, "work_style"},
		{"bad deadline", map[string]any{"deadline": "tomorrow"}, "deadline"},
		{"flag not bool", map[string]any{"is_verified": "yes"}, "is_verified"},
		{"array of numbers", map[string]any{"tags": []any{1, 2}}, "tags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Patch(domain.KindWork, tt.body)
			require.Error(t, err)
			assert.Contains(t, fields(t, err), tt.field)
		})
	}
}

func TestPatchFields(t *testing.T) {
	work := PatchFields(domain.KindWork)
	assert.Contains(t, work, "salary")
	assert.NotContains(t, work, "fees")
	assert.IsNonDecreasing(t, work)

	events := PatchFields(domain.KindEvent)
	assert.Contains(t, events, "event_date")
	assert.NotContains(t, events, "type")
}
