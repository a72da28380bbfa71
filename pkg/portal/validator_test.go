package portal

import (
	"strings"
	"testing"
)

type login struct {
	UserID string `validate:"required,max=64"`
	Email  string `validate:"omitempty,email"`
	Code   string `validate:"len=3"`
}

func TestValidator_PassesAndRejects(t *testing.T) {
	v := GetDefaultValidator()

	ok, err := v.Passes(&login{
		UserID: "user-1",
		Email:  "a@b.com",
		Code:   "123",
	})

	if err != nil || !ok {
		t.Fatalf("expected pass got %v %v", ok, err)
	}

	invalid := &login{
		UserID: "",
		Email:  "bad",
		Code:   "1",
	}

	if ok, err := v.Passes(invalid); ok || err == nil {
		t.Fatalf("expected fail")
	}

	if len(v.GetErrors()) != 3 {
		t.Fatalf("expected 3 errors, got %v", v.GetErrors())
	}

	json := v.GetErrorsAsJson()

	if !strings.Contains(json, "login.UserID") {
		t.Fatalf("json missing field namespace: %s", json)
	}
}

func TestValidator_Rejects(t *testing.T) {
	v := GetDefaultValidator()

	reject, _ := v.Rejects(&login{Code: "1"})

	if !reject {
		t.Fatalf("expected reject")
	}
}

func TestValidator_ResetsErrorsBetweenRuns(t *testing.T) {
	v := GetDefaultValidator()

	_, _ = v.Passes(&login{})

	if ok, _ := v.Passes(&login{UserID: "u", Code: "abc"}); !ok {
		t.Fatalf("expected pass")
	}

	if len(v.GetErrors()) != 0 {
		t.Fatalf("expected errors to be reset, got %v", v.GetErrors())
	}
}

func TestValidator_InvalidTarget(t *testing.T) {
	v := GetDefaultValidator()

	if ok, err := v.Passes("not a struct"); ok || err == nil {
		t.Fatalf("expected invalid target error")
	}
}

func TestValidator_ForkKeepsErrorsApart(t *testing.T) {
	base := GetDefaultValidator()
	fork := base.Fork()

	if _, err := fork.Rejects(&login{Code: "1"}); err == nil {
		t.Fatalf("expected fork to reject")
	}

	if len(fork.GetErrors()) == 0 {
		t.Fatalf("expected errors on the fork")
	}

	if len(base.GetErrors()) != 0 {
		t.Fatalf("base validator must not see the fork's errors")
	}
}
