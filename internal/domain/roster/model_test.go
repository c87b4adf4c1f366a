package roster

import (
	"errors"
	"fmt"
	"testing"
)

func members(total, figc int) []Member {
	out := make([]Member, 0, total)
	for i := 0; i < total; i++ {
		out = append(out, Member{
			Entry:  Entry{ID: fmt.Sprintf("e%d", i), TeamID: "t1", PlayerID: fmt.Sprintf("p%d", i)},
			Player: Player{ID: fmt.Sprintf("p%d", i), Name: fmt.Sprintf("Player %d", i), IsFIGC: i < figc},
		})
	}
	return out
}

func TestValidateAddition(t *testing.T) {
	t.Parallel()

	rules := DefaultRules()
	cases := []struct {
		name     string
		current  []Member
		wantFIGC bool
		wantErr  error
	}{
		{name: "empty roster", current: nil, wantFIGC: true},
		{name: "ninth to tenth", current: members(9, 0)},
		{name: "eleventh player", current: members(10, 0), wantErr: ErrRosterFull},
		{name: "full roster wins over figc quota", current: members(10, 3), wantFIGC: true, wantErr: ErrRosterFull},
		{name: "fourth figc", current: members(5, 3), wantFIGC: true, wantErr: ErrFIGCQuotaExceeded},
		{name: "non figc with figc quota used", current: members(5, 3), wantFIGC: false},
		{name: "third figc", current: members(5, 2), wantFIGC: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAddition(tc.current, tc.wantFIGC, rules)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestPlayerValidate_FIGCNeedsCategory(t *testing.T) {
	t.Parallel()

	p := Player{ID: "p1", Name: "Rossi", IsFIGC: true}
	if err := p.Validate(); !errors.Is(err, ErrFIGCCategoryRequired) {
		t.Fatalf("expected ErrFIGCCategoryRequired, got %v", err)
	}
	p.FIGCCategory = "C"
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
