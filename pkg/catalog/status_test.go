package catalog

import "testing"

func TestValidStatus(t *testing.T) {
	for _, s := range []Status{StatusDraft, StatusReview, StatusPublished} {
		if !ValidStatus(s) {
			t.Fatalf("expected %q to be valid", s)
		}
	}
	if ValidStatus(Status("archived")) {
		t.Fatal("expected unknown status to be invalid")
	}
	if ValidStatus(Status("")) {
		t.Fatal("expected empty status to be invalid")
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{name: "submit draft for review", from: StatusDraft, to: StatusReview, allowed: true},
		{name: "publish reviewed asset", from: StatusReview, to: StatusPublished, allowed: true},
		{name: "reject back to draft", from: StatusReview, to: StatusDraft, allowed: true},
		{name: "publish draft directly", from: StatusDraft, to: StatusPublished, allowed: false},
		{name: "unpublish", from: StatusPublished, to: StatusDraft, allowed: false},
		{name: "re-review published", from: StatusPublished, to: StatusReview, allowed: false},
		{name: "draft to draft", from: StatusDraft, to: StatusDraft, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.allowed {
				t.Fatalf("CanTransition(%q, %q) = %v, expected %v", tt.from, tt.to, got, tt.allowed)
			}
		})
	}
}
