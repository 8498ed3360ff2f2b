package domain

import "testing"

func TestStarMilestones(t *testing.T) {
	t.Parallel()

	tests := []struct {
		stars      int
		wantDesc   bool
		wantExampl bool
	}{
		{0, false, false},
		{1, false, false},
		{4, false, false},
		{5, true, false},
		{9, false, false},
		{10, true, true},
		{11, false, false},
		{15, true, false},
		{20, true, true},
		{21, false, false},
		{30, false, true},
		{40, false, true},
		{50, false, false},
	}

	for _, tt := range tests {
		got := StarMilestones(tt.stars)
		if got.PromptDescription != tt.wantDesc {
			t.Errorf("StarMilestones(%d).PromptDescription = %v, want %v", tt.stars, got.PromptDescription, tt.wantDesc)
		}
		if got.PromptExample != tt.wantExampl {
			t.Errorf("StarMilestones(%d).PromptExample = %v, want %v", tt.stars, got.PromptExample, tt.wantExampl)
		}
	}
}

func TestSearchKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Apple", "apple"},
		{"  Apple  ", "apple"},
		{"ÉCLAIR", "éclair"},
		{"well-known", "well-known"},
		{"Two Words", "two words"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := SearchKey(tt.in); got != tt.want {
			t.Errorf("SearchKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
