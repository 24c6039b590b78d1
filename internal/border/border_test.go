package border

import (
	"errors"
	"testing"
)

var (
	yuv420 = Layout{NumPlanes: 3, Subsampled: true, SubW: 1, SubH: 1}
	yuva   = Layout{NumPlanes: 4, Subsampled: true, SubW: 1, SubH: 0}
	gray   = Layout{NumPlanes: 1}
	rgb    = Layout{NumPlanes: 3}
)

func TestValue(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		plane  int
		layout Layout
		shift  int
		want   int
	}{
		{"none", nil, 0, yuv420, 1, 0},
		{"one luma", []int{8}, 0, yuv420, 1, 8},
		{"one chroma shifted", []int{8}, 1, yuv420, 1, 4},
		{"one chroma v shifted", []int{9}, 2, yuv420, 1, 4},
		{"one alpha unshifted", []int{8}, 3, yuva, 1, 8},
		{"one rgb unshifted", []int{8}, 2, rgb, 0, 8},
		{"two luma", []int{6, 2}, 0, yuv420, 1, 6},
		{"two chroma explicit", []int{6, 2}, 2, yuv420, 1, 2},
		{"two alpha takes luma", []int{6, 2}, 3, yuva, 1, 6},
		{"three u", []int{6, 2, 3}, 1, yuv420, 1, 2},
		{"three v", []int{6, 2, 3}, 2, yuv420, 1, 3},
		{"three alpha takes luma", []int{6, 2, 3}, 3, yuva, 1, 6},
		{"four alpha explicit", []int{6, 2, 3, 1}, 3, yuva, 1, 1},
		{"gray single", []int{5}, 0, gray, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Value(tt.values, tt.plane, tt.layout, tt.shift)
			if err != nil {
				t.Fatalf("Value() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Value() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValueErrors(t *testing.T) {
	tests := []struct {
		name    string
		values  []int
		plane   int
		layout  Layout
		wantErr error
	}{
		{"two values on gray", []int{1, 2}, 0, gray, ErrTooManyValues},
		{"four values on yuv", []int{1, 2, 3, 4}, 0, yuv420, ErrTooManyValues},
		{"negative single", []int{-1}, 0, yuv420, ErrNegative},
		{"negative chroma", []int{4, -2}, 1, yuv420, ErrNegative},
		{"negative chroma after shift", []int{-1}, 1, yuv420, ErrNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Value(tt.values, tt.plane, tt.layout, 1)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Value() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolveUsesAxisShift(t *testing.T) {
	l := Layout{NumPlanes: 3, Subsampled: true, SubW: 1, SubH: 0}
	got, err := Resolve(Uniform(8, 8, 6, 6), 1, l)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	want := Set{Left: 4, Top: 8, Right: 3, Bottom: 6}
	if got != want {
		t.Errorf("Resolve() = %v, want %v", got, want)
	}
}

func TestResolveReportsSide(t *testing.T) {
	s := Sides{Bottom: []int{-3}}
	if _, err := Resolve(s, 0, gray); !errors.Is(err, ErrNegative) {
		t.Errorf("Resolve() error = %v, want ErrNegative", err)
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		set  Set
		w, h int
		rule Fit
		ok   bool
	}{
		{"zero", Set{}, 0, 0, FitAdditive, true},
		{"additive exact", Set{4, 2, 4, 2}, 8, 4, FitAdditive, true},
		{"additive too wide", Set{5, 0, 4, 0}, 8, 4, FitAdditive, false},
		{"additive too tall", Set{0, 3, 0, 2}, 8, 4, FitAdditive, false},
		{"symmetric half", Set{4, 2, 4, 2}, 8, 4, FitSymmetric, true},
		{"symmetric over half", Set{5, 0, 0, 0}, 8, 4, FitSymmetric, false},
		{"strict half rejected", Set{4, 0, 0, 0}, 8, 4, FitSymmetricStrict, false},
		{"strict below half", Set{3, 1, 3, 1}, 8, 4, FitSymmetricStrict, true},
		{"strict zero side", Set{0, 0, 0, 0}, 1, 1, FitSymmetricStrict, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.set.Check(tt.w, tt.h, tt.rule)
			if tt.ok && err != nil {
				t.Errorf("Check() error = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrTooBig) {
				t.Errorf("Check() error = %v, want ErrTooBig", err)
			}
		})
	}
}

func TestCheckNegative(t *testing.T) {
	err := Set{Left: -1}.Check(10, 10, FitAdditive)
	if !errors.Is(err, ErrNegative) {
		t.Errorf("Check() error = %v, want ErrNegative", err)
	}
}

func TestField(t *testing.T) {
	tests := []struct {
		name   string
		set    Set
		height int
		parity int
		want   Set
	}{
		{"even top", Set{Top: 3, Bottom: 2, Left: 1, Right: 1}, 10, 0, Set{Top: 2, Bottom: 1, Left: 1, Right: 1}},
		{"odd top", Set{Top: 3, Bottom: 2, Left: 1, Right: 1}, 10, 1, Set{Top: 1, Bottom: 1, Left: 1, Right: 1}},
		{"odd height bottom even", Set{Bottom: 1}, 9, 0, Set{Bottom: 1}},
		{"odd height bottom odd", Set{Bottom: 1}, 9, 1, Set{Bottom: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.Field(tt.height, tt.parity); got != tt.want {
				t.Errorf("Field() = %v, want %v", got, tt.want)
			}
		})
	}
}
