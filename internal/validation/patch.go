package validation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/lib/pq"

	"campus_connect/internal/domain"
)

type fieldKind int

const (
	textField fieldKind = iota
	nullableTextField
	arrayField
	timeField
	boolField
)

type rule struct {
	kind fieldKind
	tag  string
}

var sharedPatchRules = map[string]rule{
	"title":        {textField, "notblank,max=500"},
	"city":         {nullableTextField, "max=200"},
	"country":      {nullableTextField, "max=200"},
	"organization": {nullableTextField, "max=300"},
	"image_url":    {nullableTextField, "safeurl"},
	"tags":         {arrayField, "max=10,dive,max=100"},
	"deadline":     {timeField, ""},
	"is_verified":  {boolField, ""},
	"is_featured":  {boolField, ""},
}

var patchRules = map[domain.Kind]map[string]rule{
	domain.KindWork: merge(sharedPatchRules, map[string]rule{
		"work_style":  {nullableTextField, "oneof=remote hybrid onsite"},
		"company":     {nullableTextField, "max=300"},
		"stipend":     {nullableTextField, ""},
		"duration":    {nullableTextField, ""},
		"salary":      {nullableTextField, ""},
		"experience":  {nullableTextField, ""},
		"skills":      {arrayField, "max=20,dive,max=100"},
		"eligibility": {nullableTextField, ""},
		"status":      {textField, "oneof=active expired"},
	}),
	domain.KindEvent: merge(sharedPatchRules, map[string]rule{
		"team_size":     {nullableTextField, "max=100"},
		"fees":          {nullableTextField, "oneof=paid unpaid"},
		"perks":         {nullableTextField, ""},
		"event_date":    {timeField, ""},
		"learning_type": {nullableTextField, "oneof=workshop course bootcamp mentorship"},
		"domain":        {arrayField, "max=10,dive,max=100"},
		"status":        {textField, "oneof=active expired archived"},
	}),
}

func merge(a, b map[string]rule) map[string]rule {
	out := make(map[string]rule, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// PatchFields returns the names of the fields a patch may change on kind.
func PatchFields(kind domain.Kind) []string {
	names := make([]string, 0, len(patchRules[kind]))
	for name := range patchRules[kind] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RejectTypeChange fails when a patch body tries to touch the discriminator.
func RejectTypeChange(fields map[string]any) error {
	if _, ok := fields["type"]; ok {
		return domain.NewValidationError("type", "cannot be changed")
	}
	return nil
}

// Patch checks a decoded JSON patch body against the writable fields of kind
// and converts the values to what the store binds. Keys that are not writable
// are ignored.
func Patch(kind domain.Kind, fields map[string]any) (map[string]any, error) {
	if err := RejectTypeChange(fields); err != nil {
		return nil, err
	}
	rules, ok := patchRules[kind]
	if !ok {
		return nil, fmt.Errorf("no patch rules for kind %q", kind)
	}

	out := make(map[string]any)
	verr := &domain.ValidationError{}
	for name, raw := range fields {
		r, ok := rules[name]
		if !ok {
			continue
		}
		v, err := convert(r.kind, raw)
		if err != nil {
			verr.Add(name, err.Error())
			continue
		}
		if r.tag != "" && v != nil {
			if err := instance().Var(v, r.tag); err != nil {
				verr.Add(name, "failed "+r.tag+" check")
				continue
			}
		}
		out[name] = v
	}

	if len(verr.Fields) > 0 {
		return nil, verr
	}
	if len(out) == 0 {
		return nil, domain.NewValidationError("body", "no updatable fields")
	}
	return out, nil
}

func convert(kind fieldKind, raw any) (any, error) {
	switch kind {
	case textField:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("must be a string")
		}
		return s, nil

	case nullableTextField:
		if raw == nil {
			return nil, nil
		}
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("must be a string or null")
		}
		if strings.TrimSpace(s) == "" {
			return nil, nil
		}
		return s, nil

	case arrayField:
		switch v := raw.(type) {
		case nil:
			return pq.StringArray{}, nil
		case string:
			return splitList(v), nil
		case []any:
			arr := make(pq.StringArray, 0, len(v))
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("must contain only strings")
				}
				if s = strings.TrimSpace(s); s != "" {
					arr = append(arr, s)
				}
			}
			return arr, nil
		}
		return nil, fmt.Errorf("must be a list of strings")

	case timeField:
		if raw == nil {
			return nil, nil
		}
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("must be a timestamp or null")
		}
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return nil, fmt.Errorf("must be an RFC 3339 timestamp or a date")

	case boolField:
		b, ok := raw.(bool)
		if !ok {
			return nil, fmt.Errorf("must be a boolean")
		}
		return b, nil
	}
	return nil, fmt.Errorf("unsupported field")
}

func splitList(s string) pq.StringArray {
	out := pq.StringArray{}
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
