package person

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/haldenworks/contact-manager/internal/httperr"
	"github.com/haldenworks/contact-manager/internal/models"
	"github.com/haldenworks/contact-manager/internal/validators"
)

// FieldInput is the wire shape of a dynamic field: the raw JSON value is
// checked against the declared type and stored in the matching column.
type FieldInput struct {
	FieldName string          `json:"field_name" binding:"required"`
	FieldType string          `json:"field_type" binding:"required"`
	Value     json.RawMessage `json:"value" binding:"required"`
}

// BuildDynamicFields validates every input against its declared type and
// assembles the storable rows. All violations are collected and returned
// together as a single ValidationError.
func BuildDynamicFields(inputs []FieldInput) ([]models.DynamicField, error) {
	fields := make([]models.DynamicField, 0, len(inputs))
	var violations []string

	for i, in := range inputs {
		name := strings.TrimSpace(in.FieldName)
		if name == "" {
			violations = append(violations, fmt.Sprintf("dynamic_fields[%d]: field_name is required", i))
			continue
		}

		if !IsValidFieldType(in.FieldType) {
			violations = append(violations, fmt.Sprintf("dynamic_fields[%d] %q: unknown field_type %q", i, name, in.FieldType))
			continue
		}

		f := models.DynamicField{
			FieldName: name,
			FieldType: in.FieldType,
		}

		if err := setValue(&f, FieldType(in.FieldType), in.Value); err != nil {
			violations = append(violations, fmt.Sprintf("dynamic_fields[%d] %q: %v", i, name, err))
			continue
		}

		fields = append(fields, f)
	}

	if len(violations) > 0 {
		return nil, httperr.ErrValidation(violations)
	}
	return fields, nil
}

func setValue(f *models.DynamicField, t FieldType, raw json.RawMessage) error {
	switch t {
	case FieldNumber:
		var n float64
		if err := json.Unmarshal(raw, &n); err != nil {
			return fmt.Errorf("value must be a number")
		}
		f.NumberValue = &n

	case FieldBoolean:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return fmt.Errorf("value must be a boolean")
		}
		f.BooleanValue = &b

	case FieldDate:
		s, err := rawString(raw)
		if err != nil {
			return fmt.Errorf("value must be a date string")
		}
		d, err := parseDate(s)
		if err != nil {
			return fmt.Errorf("value must be a date (2006-01-02 or RFC 3339)")
		}
		f.DateValue = &d

	case FieldString:
		s, err := rawString(raw)
		if err != nil {
			return fmt.Errorf("value must be a string")
		}
		f.StringValue = &s

	case FieldURL:
		s, err := rawString(raw)
		if err != nil {
			return fmt.Errorf("value must be a string")
		}
		u, err := url.ParseRequestURI(s)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("value must be an http(s) URL")
		}
		f.StringValue = &s

	case FieldEmail:
		s, err := rawString(raw)
		if err != nil {
			return fmt.Errorf("value must be a string")
		}
		if !validators.IsEmailShape(s) {
			return fmt.Errorf("value must be an email address")
		}
		f.StringValue = &s

	case FieldPhone:
		s, err := rawString(raw)
		if err != nil {
			return fmt.Errorf("value must be a string")
		}
		if !validators.IsPhoneShape(s) {
			return fmt.Errorf("value must be a phone number")
		}
		f.StringValue = &s
	}

	return nil
}

func rawString(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", err
	}
	return s, nil
}

func parseDate(s string) (time.Time, error) {
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, s)
}
