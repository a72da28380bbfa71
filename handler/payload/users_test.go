package payload

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/skillpath/pkg/reconcile"
)

func TestExtractUserDetails(t *testing.T) {
	got, err := ExtractUserDetails([]byte(`{"success":true,"data":{"name":"Ada","age":30,"education":"PhD","dream":"Doctor"}}`))
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	want := &UserDetails{Name: "Ada", Age: 30, Education: "PhD", Dream: "Doctor"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("details mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractUserDetailsRejections(t *testing.T) {
	testCases := []struct {
		body    string
		message string
	}{
		{body: `{"success":false,"message":"User not found"}`, message: "User not found"},
		{body: `{"success":false}`, message: UserDetailsFailedMessage},
		{body: `{"success":false,"message":"   "}`, message: UserDetailsFailedMessage},
		{body: `{"success":true}`, message: UserDetailsFailedMessage},
		{body: `{}`, message: UserDetailsFailedMessage},
		{body: `[]`, message: UserDetailsFailedMessage},
		{body: `"ok"`, message: UserDetailsFailedMessage},
		{body: `{"success":false,"message":123}`, message: UserDetailsFailedMessage},
		{body: `{"success":"yes","message":"Try again later"}`, message: "Try again later"},
		{body: `{"success":true,"data":"Ada"}`, message: UserDetailsFailedMessage},
	}

	for _, tc := range testCases {
		got, err := ExtractUserDetails([]byte(tc.body))

		var shape *reconcile.ShapeError
		if !errors.As(err, &shape) || shape.Message != tc.message {
			t.Fatalf("%s: expected message %q, got %v", tc.body, tc.message, err)
		}

		if got != nil {
			t.Fatalf("%s: expected no details, got %+v", tc.body, got)
		}
	}
}

func TestExtractUserDetailsMalformedJSON(t *testing.T) {
	_, err := ExtractUserDetails([]byte(`<!doctype html>`))

	var shape *reconcile.ShapeError
	if !errors.Is(err, ErrInvalidJSON) || errors.As(err, &shape) {
		t.Fatalf("expected an invalid JSON error, got %v", err)
	}
}

func TestMakeUserDetailsRequest(t *testing.T) {
	anonymous, err := json.Marshal(MakeUserDetailsRequest(""))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if string(anonymous) != `{"user_id":null}` {
		t.Fatalf("unexpected anonymous body %s", anonymous)
	}

	signed, err := json.Marshal(MakeUserDetailsRequest("user-42"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if string(signed) != `{"user_id":"user-42"}` {
		t.Fatalf("unexpected body %s", signed)
	}
}
