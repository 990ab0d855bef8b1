package pagination

import "testing"

func TestOrderClauseWhitelist(t *testing.T) {
	sortable := map[string]bool{"name": true, "qty": true, "created_at": true}

	tests := []struct {
		sortBy    string
		sortOrder string
		want      string
	}{
		{"name", "asc", "name ASC"},
		{"qty", "desc", "qty DESC"},
		{"qty", "descend", "qty DESC"},
		{"", "", "created_at ASC"},
		{"", "desc", "created_at DESC"},
		{"password", "asc", "created_at ASC"},
		{"name; DROP TABLE items", "desc", "created_at DESC"},
	}
	for _, tt := range tests {
		p := &Params{SortBy: tt.sortBy, SortOrder: tt.sortOrder}
		if got := p.OrderClause(sortable); got != tt.want {
			t.Errorf("OrderClause(%q, %q) = %q, want %q", tt.sortBy, tt.sortOrder, got, tt.want)
		}
	}
}
