package main

import "testing"

func TestFeedbackCSSClassUsesMaxSeverity(t *testing.T) {
	tests := []struct {
		name  string
		items []FeedbackItem
		want  string
	}{
		{
			name: "empty defaults to info",
			want: "feedback-info",
		},
		{
			name:  "single success",
			items: []FeedbackItem{{Type: FBSuccess}},
			want:  "feedback-success",
		},
		{
			name:  "error wins over success",
			items: []FeedbackItem{{Type: FBSuccess}, {Type: FBError}, {Type: FBInfo}},
			want:  "feedback-error",
		},
		{
			name:  "warning wins over info",
			items: []FeedbackItem{{Type: FBInfo}, {Type: FBWarning}},
			want:  "feedback-warning",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := Feedback{Items: tt.items}
			if got := fb.CSSClass(); got != tt.want {
				t.Errorf("CSSClass() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommonDataFeedbackHelpers(t *testing.T) {
	cd := &CommonData{}
	cd.Info("one %d", 1)
	cd.Success("two")
	cd.Warning("three")
	cd.Error("four")

	if len(cd.Feedback.Items) != 4 {
		t.Fatalf("got %d feedback items, want 4", len(cd.Feedback.Items))
	}
	if cd.Feedback.Items[0].Message != "one 1" {
		t.Errorf("first message = %q", cd.Feedback.Items[0].Message)
	}
	wantTypes := []FeedbackType{FBInfo, FBSuccess, FBWarning, FBError}
	for i, want := range wantTypes {
		if cd.Feedback.Items[i].Type != want {
			t.Errorf("item %d has type %s, want %s", i, cd.Feedback.Items[i].Type, want)
		}
	}
}
