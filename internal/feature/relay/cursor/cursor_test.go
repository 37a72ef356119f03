package cursor

import (
	"context"
	"errors"
	"testing"

	"relay_backend/internal/feature/relay/domain"
)

// TestNextStart verifies the +1 second advance computation.
func TestNextStart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		highestSeen string
		want        string
		wantErr     error
	}{
		{
			name:        "plain timestamp",
			highestSeen: "2016-01-01T00:00:00",
			want:        "2016-01-01T00:00:01",
		},
		{
			name:        "sub-second fraction is discarded before adding",
			highestSeen: "2016-01-02T10:00:00.123",
			want:        "2016-01-02T10:00:01",
		},
		{
			name:        "minute rollover",
			highestSeen: "2016-01-01T00:00:59",
			want:        "2016-01-01T00:01:00",
		},
		{
			name:        "day rollover",
			highestSeen: "2016-12-31T23:59:59.999999",
			want:        "2017-01-01T00:00:00",
		},
		{
			name:        "timezone suffix rejected",
			highestSeen: "2016-01-01T00:00:00Z",
			wantErr:     domain.ErrMalformedTimestamp,
		},
		{
			name:        "offset rejected",
			highestSeen: "2016-01-01T00:00:00+09:00",
			wantErr:     domain.ErrMalformedTimestamp,
		},
		{
			name:        "garbage rejected",
			highestSeen: "not-a-timestamp",
			wantErr:     domain.ErrMalformedTimestamp,
		},
		{
			name:        "empty rejected",
			highestSeen: "",
			wantErr:     domain.ErrMalformedTimestamp,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NextStart(tt.highestSeen)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("NextStart(%q) = %q, want %q", tt.highestSeen, got, tt.want)
			}
		})
	}
}

// TestMemory_CurrentDefaultsToEpoch verifies an untouched symbol starts at
// the fixed historical epoch.
func TestMemory_CurrentDefaultsToEpoch(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	got, err := m.Current(context.Background(), "BTC")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != Epoch {
		t.Errorf("expected %q, got %q", Epoch, got)
	}
}

// TestMemory_Advance verifies the cursor moves to highest+1s and that
// symbols are partitioned.
func TestMemory_Advance(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMemory()

	if err := m.Advance(ctx, "BTC", "2016-01-02T10:00:00.123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := m.Current(ctx, "BTC")
	if got != "2016-01-02T10:00:01" {
		t.Errorf("BTC cursor = %q, want %q", got, "2016-01-02T10:00:01")
	}

	// Other symbols are unaffected.
	other, _ := m.Current(ctx, "ETH")
	if other != Epoch {
		t.Errorf("ETH cursor = %q, want epoch %q", other, Epoch)
	}
}

// TestMemory_AdvanceIsMonotonic verifies an older highest never rewinds the
// cursor and that re-running the same advance is idempotent.
func TestMemory_AdvanceIsMonotonic(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMemory()

	if err := m.Advance(ctx, "BTC", "2020-06-01T12:00:00"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "2020-06-01T12:00:01"

	// Stale advance is a no-op.
	if err := m.Advance(ctx, "BTC", "2019-01-01T00:00:00"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := m.Current(ctx, "BTC"); got != want {
		t.Errorf("cursor rewound: got %q, want %q", got, want)
	}

	// Same advance twice yields the same value.
	if err := m.Advance(ctx, "BTC", "2020-06-01T12:00:00"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := m.Current(ctx, "BTC"); got != want {
		t.Errorf("advance not idempotent: got %q, want %q", got, want)
	}
}

// TestMemory_AdvanceMalformed verifies a malformed highest leaves the
// cursor untouched.
func TestMemory_AdvanceMalformed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := NewMemory()

	err := m.Advance(ctx, "BTC", "2016-01-01T00:00:00Z")
	if !errors.Is(err, domain.ErrMalformedTimestamp) {
		t.Fatalf("expected ErrMalformedTimestamp, got %v", err)
	}
	if got, _ := m.Current(ctx, "BTC"); got != Epoch {
		t.Errorf("cursor moved on malformed input: %q", got)
	}
}
