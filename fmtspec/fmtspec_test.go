package fmtspec

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type scanTest struct {
	Src  string
	Segs []*Segment
	Err  error
}

func TestScanner(t *testing.T) {
	tests := []scanTest{
		{
			Src: "DROP TABLE",
			Segs: []*Segment{
				{Literal: "DROP TABLE"},
			},
		},
		{
			Src: "DROP %{objtype}s %{name}D",
			Segs: []*Segment{
				{Literal: "DROP "},
				{Placeholder: &Placeholder{Name: "objtype", Conv: ConvRaw, Raw: "%{objtype}s"}},
				{Literal: " "},
				{Placeholder: &Placeholder{Name: "name", Conv: ConvDottedName, Raw: "%{name}D"}},
			},
		},
		{
			Src: "%{items:, }s",
			Segs: []*Segment{
				{Placeholder: &Placeholder{Name: "items", Sep: ", ", HasSep: true, Conv: ConvRaw, Raw: "%{items:, }s"}},
			},
		},
		{
			Src: "100%% sure",
			Segs: []*Segment{
				{Literal: "100"},
				{Literal: "%"},
				{Literal: " sure"},
			},
		},
		{
			Src: "50% off",
			Segs: []*Segment{
				{Literal: "50"},
				{Literal: "% off"},
			},
		},
		{
			Src: "%{}s",
			Err: ErrMalformed,
		},
		{
			Src: "%{name",
			Err: ErrMalformed,
		},
		{
			Src: "%{name}",
			Err: ErrMalformed,
		},
		{
			Src: "%{name}Q",
			Err: ErrUnknownConversion,
		},
	}
	for _, tc := range tests {
		segs, err := scanAll(tc.Src)
		if tc.Err != nil {
			if !errors.Is(err, tc.Err) {
				t.Errorf("%q: got error %v, want %v", tc.Src, err, tc.Err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tc.Src, err)
			continue
		}
		if d := cmp.Diff(tc.Segs, segs); d != "" {
			t.Errorf("%q: segments differ:\n%s", tc.Src, d)
		}
	}
}

func scanAll(src string) ([]*Segment, error) {
	sc := NewScanner(src)
	var segs []*Segment
	for {
		seg, err := sc.Next()
		if err != nil {
			return nil, err
		}
		if seg == nil {
			return segs, nil
		}
		segs = append(segs, seg)
	}
}

func TestFieldName(t *testing.T) {
	tests := []struct {
		Src  string
		Name string
		Err  error
	}{
		{Src: "%{cache}s", Name: "cache"},
		{Src: "%{definition: }s", Name: "definition"},
		{Src: "%{name}I", Name: "name"},
		{Src: "no placeholder", Err: ErrMalformed},
		{Src: "%{}s", Err: ErrMalformed},
		{Src: "%{open", Err: ErrMalformed},
	}
	for _, tc := range tests {
		name, err := FieldName(tc.Src)
		if tc.Err != nil {
			if !errors.Is(err, tc.Err) {
				t.Errorf("%q: got error %v, want %v", tc.Src, err, tc.Err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error: %v", tc.Src, err)
			continue
		}
		if name != tc.Name {
			t.Errorf("%q: got %q, want %q", tc.Src, name, tc.Name)
		}
	}
}
