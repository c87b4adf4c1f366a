package scorer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  []Entry
	}{
		{
			name:  "empty input",
			input: "",
			want:  []Entry{},
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  []Entry{},
		},
		{
			name:  "two scorers with padding",
			input: " Rossi - 2 ; Verdi-1 ",
			want: []Entry{
				{TeamID: "t1", PlayerName: "Rossi", Goals: 2},
				{TeamID: "t1", PlayerName: "Verdi", Goals: 1},
			},
		},
		{
			name:  "non positive goals dropped",
			input: "Rossi-0;Verdi-1;Bianchi--2",
			want: []Entry{
				{TeamID: "t1", PlayerName: "Verdi", Goals: 1},
			},
		},
		{
			name:  "non numeric goals dropped",
			input: "Rossi-two;Verdi-",
			want:  []Entry{},
		},
		{
			name:  "splits on first dash only",
			input: "De Rossi-Jr-3",
			want:  []Entry{},
		},
		{
			name:  "trailing separator",
			input: "Neri-4;",
			want: []Entry{
				{TeamID: "t1", PlayerName: "Neri", Goals: 4},
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(tc.input, "t1")
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParse_TokenWithoutDashFails(t *testing.T) {
	t.Parallel()

	_, err := Parse("Rossi-2;Verdi-1;BadToken", "t1")
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestParse_TokenWithoutNameFails(t *testing.T) {
	t.Parallel()

	_, err := Parse("-2", "t1")
	require.ErrorIs(t, err, ErrParse)
}

func TestTotalGoals(t *testing.T) {
	t.Parallel()

	entries, err := Parse("Rossi-2;Verdi-1", "t1")
	require.NoError(t, err)
	require.Equal(t, 3, TotalGoals(entries))
}
