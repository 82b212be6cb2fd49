package history

import "testing"

func strPtr(s string) *string { return &s }

func TestMaxPages(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 0},
		{1, 1},
		{10, 1},
		{11, 2},
		{12, 2},
		{25, 3},
		{30, 3},
		{-4, 0},
	}

	for _, tt := range tests {
		if got := MaxPages(tt.count, EntriesPerPage); got != tt.want {
			t.Errorf("MaxPages(%d, %d) = %d, want %d", tt.count, EntriesPerPage, got, tt.want)
		}
	}
}

func TestParsePageToken(t *testing.T) {
	tests := []struct {
		name  string
		token *string
		want  PageSelection
	}{
		{"absent", nil, LastPage()},
		{"numeric", strPtr("2"), ExplicitPage(2)},
		{"zero", strPtr("0"), ExplicitPage(0)},
		{"negative", strPtr("-3"), ExplicitPage(-3)},
		{"not a number", strPtr("two"), InvalidPage()},
		{"empty", strPtr(""), InvalidPage()},
		{"overflow", strPtr("99999999999999999999"), InvalidPage()},
		{"beyond 32 bits", strPtr("3000000000"), InvalidPage()},
		{"largest 32 bit page", strPtr("2147483647"), ExplicitPage(2147483647)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParsePageToken(tt.token); got != tt.want {
				t.Errorf("ParsePageToken() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSelectPage(t *testing.T) {
	tests := []struct {
		name        string
		sel         PageSelection
		maxPage     int
		wantOutcome Outcome
		wantPage    int
		wantMax     int
	}{
		{
			name:        "last page is selected by default",
			sel:         LastPage(),
			maxPage:     3,
			wantOutcome: PageAllowed,
			wantPage:    3,
			wantMax:     3,
		},
		{
			name:        "explicit first page",
			sel:         ExplicitPage(1),
			maxPage:     3,
			wantOutcome: PageAllowed,
			wantPage:    1,
			wantMax:     3,
		},
		{
			name:        "page zero is out of range",
			sel:         ExplicitPage(0),
			maxPage:     3,
			wantOutcome: OutOfRange,
			wantMax:     3,
		},
		{
			name:        "page past the end is out of range",
			sel:         ExplicitPage(4),
			maxPage:     3,
			wantOutcome: OutOfRange,
			wantMax:     3,
		},
		{
			name:        "forced invalid is out of range",
			sel:         InvalidPage(),
			maxPage:     3,
			wantOutcome: OutOfRange,
			wantMax:     3,
		},
		{
			name:        "no entries wins over explicit page",
			sel:         ExplicitPage(4),
			maxPage:     0,
			wantOutcome: NoEntries,
		},
		{
			name:        "no entries wins over forced invalid",
			sel:         InvalidPage(),
			maxPage:     0,
			wantOutcome: NoEntries,
		},
		{
			name:        "no entries with default selection",
			sel:         LastPage(),
			maxPage:     0,
			wantOutcome: NoEntries,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectPage(tt.sel, tt.maxPage)
			if got.Outcome != tt.wantOutcome {
				t.Fatalf("SelectPage() outcome = %v, want %v", got.Outcome, tt.wantOutcome)
			}
			if got.Page != tt.wantPage {
				t.Errorf("SelectPage() page = %d, want %d", got.Page, tt.wantPage)
			}
			if got.MaxPage != tt.wantMax {
				t.Errorf("SelectPage() maxPage = %d, want %d", got.MaxPage, tt.wantMax)
			}
		})
	}
}
