package game

import (
	"testing"

	"github.com/matryer/is"
)

func TestParseVariant(t *testing.T) {
	is := is.New(t)
	for _, tc := range []struct {
		in      string
		want    Variant
		wantErr bool
	}{
		{"standard", Standard, false},
		{"misere", Misere, false},
		{"Standard", 0, true},
		{"misère", 0, true},
		{"", 0, true},
	} {
		got, err := ParseVariant(tc.in)
		is.Equal(err != nil, tc.wantErr)
		if !tc.wantErr {
			is.Equal(got, tc.want)
			is.Equal(got.String(), tc.in)
		}
	}
}

func TestParseRole(t *testing.T) {
	is := is.New(t)
	for _, tc := range []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"human", Human, false},
		{"computer", Computer, false},
		{"robot", 0, true},
	} {
		got, err := ParseRole(tc.in)
		is.Equal(err != nil, tc.wantErr)
		if !tc.wantErr {
			is.Equal(got, tc.want)
			is.Equal(got.String(), tc.in)
		}
	}
}

func TestOpponent(t *testing.T) {
	is := is.New(t)
	is.Equal(Human.Opponent(), Computer)
	is.Equal(Computer.Opponent(), Human)
}
