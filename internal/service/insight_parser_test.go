package service

import (
	"strings"
	"testing"
)

func TestParseValidBatch(t *testing.T) {
	top := testTop5(t)
	raw := batchInsightJSON(top)

	entries, err := InsightResponseParser{}.Parse(raw, top)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != len(top) {
		t.Fatalf("expected %d entries, got %d", len(top), len(entries))
	}
	for _, m := range top {
		if _, ok := entries[m.Career.ID]; !ok {
			t.Fatalf("missing entry for %s", m.Career.ID)
		}
	}
}

func TestParseToleratesMarkdownFences(t *testing.T) {
	top := testTop5(t)
	raw := "```json\n" + batchInsightJSON(top) + "\n```"

	if _, err := (InsightResponseParser{}).Parse(raw, top); err != nil {
		t.Fatalf("parser should extract json from fenced response: %v", err)
	}
}

func TestParseRejectsMissingCareer(t *testing.T) {
	top := testTop5(t)
	raw := batchInsightJSON(top[:4])

	if _, err := (InsightResponseParser{}).Parse(raw, top); err == nil {
		t.Fatal("a response missing one career must fail the whole batch")
	}
}

func TestParseRejectsIncompleteEntries(t *testing.T) {
	top := testTop5(t)

	tests := []struct {
		name    string
		mutate  func(string) string
	}{
		{name: "too few skills", mutate: func(s string) string {
			return strings.Replace(s, `["s1","s2","s3"]`, `["s1","s2"]`, 1)
		}},
		{name: "too few growth paths", mutate: func(s string) string {
			return strings.Replace(s, `["g1","g2"]`, `["g1"]`, 1)
		}},
		{name: "empty explanation", mutate: func(s string) string {
			return strings.Replace(s, "fits your analytical profile", "", 1)
		}},
		{name: "empty salary", mutate: func(s string) string {
			return strings.Replace(s, "$50,000 - $100,000", " ", 1)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := tt.mutate(batchInsightJSON(top))
			if _, err := (InsightResponseParser{}).Parse(raw, top); err == nil {
				t.Fatal("incomplete entry must fail the whole batch")
			}
		})
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	top := testTop5(t)
	for _, raw := range []string{"", "not json at all", "{broken", "[]"} {
		if _, err := (InsightResponseParser{}).Parse(raw, top); err == nil {
			t.Fatalf("garbage response %q should fail", raw)
		}
	}
}

func TestExtractFirstJSONObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain object", input: `{"a":1}`, want: `{"a":1}`},
		{name: "surrounded by text", input: "sure! {\"a\":1} hope it helps", want: `{"a":1}`},
		{name: "nested objects", input: `{"a":{"b":2}}`, want: `{"a":{"b":2}}`},
		{name: "braces inside strings", input: `{"a":"{not a brace}"}`, want: `{"a":"{not a brace}"}`},
		{name: "no object", input: "nothing here", want: ""},
		{name: "unbalanced", input: `{"a":1`, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractFirstJSONObject(tt.input); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
