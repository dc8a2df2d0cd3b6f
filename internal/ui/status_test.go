package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/duet-tui/duet/internal/fambot"
)

func TestFailureTextKnownCodes(t *testing.T) {
	cases := []struct {
		name string
		code string
		want string
	}{
		{"bad_format", fambot.CodeBadFormat, "DD.MM.YYYY"},
		{"invalid_date", fambot.CodeInvalidDate, "does not exist"},
		{"invalid_url", fambot.CodeInvalidURL, "valid link"},
		{"title_required", fambot.CodeTitleRequired, "needs a title"},
		{"date_required", fambot.CodeDateRequired, "Enter a date"},
		{"no_pair", fambot.CodeNoPair, "not paired"},
		{"user_required", fambot.CodeUserRequired, "config"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := &fambot.CommandError{Kind: fambot.ErrApplication, Code: tc.code}
			got := failureText("save start date", err)
			if !strings.Contains(got, tc.want) {
				t.Fatalf("failureText(%s) = %q, want substring %q", tc.code, got, tc.want)
			}
		})
	}
}

func TestFailureTextUnknownCodeKeepsCode(t *testing.T) {
	err := &fambot.CommandError{Kind: fambot.ErrApplication, Code: "HTTP_502"}
	got := failureText("add wish", err)
	if !strings.Contains(got, "HTTP_502") || !strings.Contains(got, "add wish") {
		t.Fatalf("failureText unknown = %q, want op and raw code", got)
	}
}

func TestFailureTextTransport(t *testing.T) {
	err := &fambot.CommandError{Kind: fambot.ErrTransport, Err: errors.New("dial tcp: refused")}
	got := failureText("initialize", err)
	if !strings.Contains(got, "unreachable") {
		t.Fatalf("failureText transport = %q, want unreachable", got)
	}
	if strings.Contains(got, "dial tcp") {
		t.Fatalf("transport detail must not leak into the status line: %q", got)
	}
}

func TestFailureTextPlainError(t *testing.T) {
	got := failureText("open link", errors.New("exec: xdg-open not found"))
	if !strings.Contains(got, "open link") {
		t.Fatalf("failureText plain = %q, want op name", got)
	}
}
