package main

import (
	"bytes"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPageviewDryRun(t *testing.T) {
	out, err := execute(t, "pageview", "--dry-run", "--account", "UA-123-1", "--host", "example.com",
		"--path", "/home", "--title", "Home Page", "--session-id", "12345", "--locale", "en-GB,en;q=0.8")
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, out)
	}
	for _, want := range []string{
		"hit:     pageview",
		"dp=%2Fhome",
		"dt=Home%20Page",
		"tid=UA-123-1",
		"ul=en-gb",
		"cid=1d892a74-d740-3198-9c1f-db4f132ff577",
		"sent:    no (simulated)",
		"session: 60493049.1.10.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestEventRequiresCategoryAndAction(t *testing.T) {
	_, err := execute(t, "event", "--dry-run", "--account", "UA-1-1", "--category", "video")
	if err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestRejectsBadPath(t *testing.T) {
	_, err := execute(t, "pageview", "--dry-run", "--account", "UA-1-1", "--path", "home")
	if err == nil {
		t.Fatalf("expected path validation error")
	}
}

func TestRequiresAccount(t *testing.T) {
	_, err := execute(t, "pageview", "--dry-run")
	if err == nil {
		t.Fatalf("expected missing account error")
	}
}
