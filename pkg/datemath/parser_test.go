package datemath_test

import (
	"testing"
	"time"

	"github.com/Aashutosh2004011/TaskManagement-Backend/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Europe/Berlin")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestResolve(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{
			name: "RFC3339",
			raw:  "2024-06-15T09:30:00Z",
			want: time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC),
		},
		{
			name: "Date Only",
			raw:  "2024-06-15",
			want: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Date With Time",
			raw:  "2024-06-15 14:00",
			want: time.Date(2024, 6, 15, 14, 0, 0, 0, time.UTC),
		},
		{
			name: "Today",
			raw:  "today",
			want: startOfBase,
		},
		{
			name: "Tomorrow Case Insensitive",
			raw:  "Tomorrow",
			want: startOfBase.AddDate(0, 0, 1),
		},
		{
			name: "In 3 Days",
			raw:  "in 3 days",
			want: startOfBase.AddDate(0, 0, 3),
		},
		{
			name: "In 2 Weeks",
			raw:  "in 2 weeks",
			want: startOfBase.AddDate(0, 0, 14),
		},
		{
			name: "In 1 Month",
			raw:  "in 1 month",
			want: startOfBase.AddDate(0, 1, 0),
		},
		{
			name: "Next Friday",
			raw:  "next friday",
			want: startOfBase.AddDate(0, 0, 2), // base is Wednesday
		},
		{
			name: "Next Wednesday Skips A Full Week",
			raw:  "next wednesday",
			want: startOfBase.AddDate(0, 0, 7),
		},
		{
			name:    "Empty",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "Garbage",
			raw:     "whenever",
			wantErr: true,
		},
		{
			name:    "Unknown Weekday",
			raw:     "next someday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Resolve(tt.raw, baseTime)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
