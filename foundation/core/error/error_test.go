// File: error_test.go
// Title: Error Module Tests
// Description: Tests for the error module covering error creation, wrapping,
//              codes, severity, and metadata.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation

package error

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("original error"),
			message: "wrapper message",
			wantMsg: "wrapper message: original error",
		},
		{
			name:    "wrap mBK error",
			err:     New("original mBK error").WithCode(CodeReadFailure),
			message: "wrapper message",
			wantMsg: "wrapper message: original mBK error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}

			if wrapped == nil {
				t.Fatal("Wrap() returned nil")
			}

			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}

			// Code and severity of a wrapped mBK error must be preserved
			if mbkErr, ok := tt.err.(*Error); ok {
				if wrapped.Code() != mbkErr.Code() {
					t.Errorf("Code() = %v, want %v", wrapped.Code(), mbkErr.Code())
				}
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	original := errors.New("root cause")
	middle := Wrap(original, "middle layer")
	top := Wrap(middle, "top layer")

	expected := "top layer: middle layer: root cause"
	if top.Error() != expected {
		t.Errorf("Error() = %q, want %q", top.Error(), expected)
	}

	if !errors.Is(top, middle) {
		t.Error("errors.Is(top, middle) should be true")
	}

	if top.RootCause() != original {
		t.Errorf("RootCause() = %v, want %v", top.RootCause(), original)
	}
}

func TestWithCode(t *testing.T) {
	err := New("resource missing").WithCode(CodeResourceNotFound)

	if err.Code() != CodeResourceNotFound {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeResourceNotFound)
	}

	// Severity is auto-derived from the code when not set explicitly
	if err.Severity() != SeverityHigh {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityHigh)
	}
}

func TestWithSeverityOverride(t *testing.T) {
	err := New("malformed").WithSeverity(SeverityCritical).WithCode(CodeMalformedRecord)

	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityCritical)
	}
}

func TestWithDetailsAndOperation(t *testing.T) {
	err := New("marker not found").
		WithCode(CodeMalformedRecord).
		WithOperation("parseRecord").
		WithContext("catalog").
		WithDetail("separator", "%").
		WithDetails(map[string]interface{}{"line": 3})

	if err.Operation() != "parseRecord" {
		t.Errorf("Operation() = %q, want %q", err.Operation(), "parseRecord")
	}

	if err.Context() != "catalog" {
		t.Errorf("Context() = %q, want %q", err.Context(), "catalog")
	}

	details := err.Details()
	if details["separator"] != "%" {
		t.Errorf("Details()[separator] = %v, want %q", details["separator"], "%")
	}
	if details["line"] != 3 {
		t.Errorf("Details()[line] = %v, want 3", details["line"])
	}
}

func TestChainTruncation(t *testing.T) {
	var err error = errors.New("root")
	for i := 0; i < MaxErrorChainDepth+5; i++ {
		err = Wrap(err, "layer")
	}

	mbkErr, ok := err.(*Error)
	if !ok {
		t.Fatal("expected *Error")
	}

	if !strings.Contains(mbkErr.Error(), "chain truncated") {
		t.Errorf("Error() = %q, want truncation marker", mbkErr.Error())
	}

	if mbkErr.Unwrap() != nil && chainDepth(mbkErr) > MaxErrorChainDepth+1 {
		t.Errorf("chain depth %d exceeds limit", chainDepth(mbkErr))
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("parse failed").
		WithCode(CodeMalformedRecord).
		WithOperation("parseRecord").
		WithDetail("separator", "|")

	data, jsonErr := json.Marshal(err)
	if jsonErr != nil {
		t.Fatalf("json.Marshal() error = %v", jsonErr)
	}

	var decoded map[string]interface{}
	if jsonErr := json.Unmarshal(data, &decoded); jsonErr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jsonErr)
	}

	if decoded["message"] != "parse failed" {
		t.Errorf("message = %v, want %q", decoded["message"], "parse failed")
	}
	if decoded["code"] != string(CodeMalformedRecord) {
		t.Errorf("code = %v, want %v", decoded["code"], CodeMalformedRecord)
	}
	if decoded["operation"] != "parseRecord" {
		t.Errorf("operation = %v, want %q", decoded["operation"], "parseRecord")
	}
}

func TestStringRepresentation(t *testing.T) {
	err := New("something failed").
		WithCode(CodeReadFailure).
		WithContext("loader")

	s := err.String()
	for _, want := range []string{"Error: something failed", "Code: READ_FAILURE", "Context: loader"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in %q", want, s)
		}
	}
}

func TestHelpers(t *testing.T) {
	mbkErr := New("not found").WithCode(CodeResourceNotFound)
	stdErr := errors.New("plain")

	if !HasCode(mbkErr, CodeResourceNotFound) {
		t.Error("HasCode() should be true for matching code")
	}
	if HasCode(stdErr, CodeResourceNotFound) {
		t.Error("HasCode() should be false for standard errors")
	}

	if GetCode(mbkErr) != CodeResourceNotFound {
		t.Errorf("GetCode() = %v, want %v", GetCode(mbkErr), CodeResourceNotFound)
	}
	if GetCode(stdErr) != CodeUnknown {
		t.Errorf("GetCode() = %v, want %v", GetCode(stdErr), CodeUnknown)
	}

	if GetSeverity(stdErr) != SeverityMedium {
		t.Errorf("GetSeverity() = %v, want %v", GetSeverity(stdErr), SeverityMedium)
	}
}
