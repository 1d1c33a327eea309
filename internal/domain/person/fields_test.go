package person

import (
	"encoding/json"
	"testing"

	"github.com/haldenworks/contact-manager/internal/httperr"
)

func TestBuildDynamicFields_ValidValues(t *testing.T) {
	inputs := []FieldInput{
		{FieldName: "nickname", FieldType: "STRING", Value: json.RawMessage(`"Janie"`)},
		{FieldName: "deal_size", FieldType: "NUMBER", Value: json.RawMessage(`1250.5`)},
		{FieldName: "newsletter", FieldType: "BOOLEAN", Value: json.RawMessage(`true`)},
		{FieldName: "birthday", FieldType: "DATE", Value: json.RawMessage(`"1990-04-12"`)},
		{FieldName: "website", FieldType: "URL", Value: json.RawMessage(`"https://example.com/about"`)},
		{FieldName: "work_email", FieldType: "EMAIL", Value: json.RawMessage(`"jane@example.com"`)},
		{FieldName: "mobile", FieldType: "PHONE", Value: json.RawMessage(`"+1 415 555 0100"`)},
	}

	fields, err := BuildDynamicFields(inputs)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(fields) != len(inputs) {
		t.Fatalf("expected %d fields, got %d", len(inputs), len(fields))
	}

	for _, f := range fields {
		populated := 0
		if f.StringValue != nil {
			populated++
		}
		if f.NumberValue != nil {
			populated++
		}
		if f.BooleanValue != nil {
			populated++
		}
		if f.DateValue != nil {
			populated++
		}
		if populated != 1 {
			t.Fatalf("field %q: expected exactly one value column, got %d", f.FieldName, populated)
		}
	}

	if *fields[1].NumberValue != 1250.5 {
		t.Fatalf("number value mismatch: %v", *fields[1].NumberValue)
	}
	if !*fields[2].BooleanValue {
		t.Fatalf("boolean value mismatch")
	}
	if fields[3].DateValue.Year() != 1990 {
		t.Fatalf("date value mismatch: %v", fields[3].DateValue)
	}
}

func TestBuildDynamicFields_CollectsAllViolations(t *testing.T) {
	inputs := []FieldInput{
		{FieldName: "deal_size", FieldType: "NUMBER", Value: json.RawMessage(`"not-a-number"`)},
		{FieldName: "work_email", FieldType: "EMAIL", Value: json.RawMessage(`"not-an-email"`)},
		{FieldName: "website", FieldType: "URL", Value: json.RawMessage(`"ftp://example.com"`)},
		{FieldName: "", FieldType: "STRING", Value: json.RawMessage(`"x"`)},
		{FieldName: "tagged", FieldType: "TAG", Value: json.RawMessage(`"x"`)},
	}

	_, err := BuildDynamicFields(inputs)
	if err == nil {
		t.Fatalf("expected validation error")
	}

	ve, ok := httperr.AsValidation(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(ve.Violations) != len(inputs) {
		t.Fatalf("expected %d violations, got %d: %v", len(inputs), len(ve.Violations), ve.Violations)
	}
}

func TestBuildDynamicFields_DateFormats(t *testing.T) {
	ok := []string{`"2024-02-29"`, `"2024-02-29T10:30:00Z"`}
	for _, v := range ok {
		_, err := BuildDynamicFields([]FieldInput{
			{FieldName: "met_on", FieldType: "DATE", Value: json.RawMessage(v)},
		})
		if err != nil {
			t.Fatalf("date %s: %v", v, err)
		}
	}

	if _, err := BuildDynamicFields([]FieldInput{
		{FieldName: "met_on", FieldType: "DATE", Value: json.RawMessage(`"29/02/2024"`)},
	}); err == nil {
		t.Fatalf("expected error for unsupported date format")
	}
}
