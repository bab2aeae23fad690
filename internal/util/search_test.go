package util

import (
	"reflect"
	"testing"
)

func TestParseSearchQuery(t *testing.T) {
	query := "date:2026-10-19 is:important weekly report"
	got := ParseSearchQuery(query)

	if !reflect.DeepEqual(got.Dates, []string{"2026-10-19"}) {
		t.Fatalf("Dates = %v, want %v", got.Dates, []string{"2026-10-19"})
	}
	if !got.Important {
		t.Fatalf("Important = false, want true")
	}
	if !reflect.DeepEqual(got.Text, []string{"weekly", "report"}) {
		t.Fatalf("Text = %v, want %v", got.Text, []string{"weekly", "report"})
	}
}

func TestParseSearchQueryVariants(t *testing.T) {
	cases := []struct {
		query     string
		important bool
		dates     int
		text      []string
	}{
		{"", false, 0, nil},
		{"   ", false, 0, nil},
		{"plain words", false, 0, []string{"plain", "words"}},
		{"! call", true, 0, []string{"call"}},
		{"important:yes", true, 0, nil},
		{"date:2026-10-19 date:2026-10-20", false, 2, nil},
		{"date:19-10-2026", false, 0, []string{"date:19-10-2026"}},
	}
	for _, tc := range cases {
		got := ParseSearchQuery(tc.query)
		if got.Important != tc.important {
			t.Fatalf("%q: Important = %v, want %v", tc.query, got.Important, tc.important)
		}
		if len(got.Dates) != tc.dates {
			t.Fatalf("%q: Dates = %v, want %d", tc.query, got.Dates, tc.dates)
		}
		if !reflect.DeepEqual(got.Text, tc.text) {
			t.Fatalf("%q: Text = %#v, want %#v", tc.query, got.Text, tc.text)
		}
	}
}

func TestSearchQueryEmpty(t *testing.T) {
	if !ParseSearchQuery("   ").Empty() {
		t.Fatalf("expected blank query to be empty")
	}
	if ParseSearchQuery("x").Empty() {
		t.Fatalf("expected text query not to be empty")
	}
}
