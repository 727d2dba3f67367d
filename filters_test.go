package convolve

import "testing"

func TestBuiltinKernels(t *testing.T) {
	tests := []struct {
		name    string
		filter  *Convolution
		size    int
		divisor int
		center  int
	}{
		{"mean", NewMean(), 3, 9, 1},
		{"blur", NewBlur(), 5, 74, 6},
		{"sharpen", NewSharpen(), 3, 1, 5},
		{"edges", NewEdges(), 3, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := tt.filter.Kernel()
			if len(k) != tt.size {
				t.Fatalf("kernel size = %d, want %d", len(k), tt.size)
			}
			if c := k[tt.size/2][tt.size/2]; c != tt.center {
				t.Errorf("center = %d, want %d", c, tt.center)
			}
			if d := tt.filter.Divisor(); d != tt.divisor {
				t.Errorf("Divisor() = %d, want %d", d, tt.divisor)
			}
			if !tt.filter.DynamicDivisorForEdges() {
				t.Error("built-in filters must default to dynamic edges")
			}
		})
	}
}

func TestBuiltinFilters_Independent(t *testing.T) {
	a, b := NewMean(), NewMean()
	if err := a.SetDivisor(2); err != nil {
		t.Fatal(err)
	}
	if b.Divisor() != 9 {
		t.Error("built-in filters share configuration")
	}
}

func TestBuiltinFilters_Uniform(t *testing.T) {
	for _, f := range []*Convolution{NewMean(), NewBlur(), NewSharpen()} {
		t.Run(f.name, func(t *testing.T) {
			src := filled(t, FormatRGB8, 9, 7, 123)
			got, err := f.Apply(src)
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			for c := range 3 {
				if rows := rowsOf(got, c); !equalMatrix(rows, constant(9, 7, 123)) {
					t.Fatalf("channel %d = %v", c, rows)
				}
			}
		})
	}
}

func TestEdges_FlatAreasGoBlack(t *testing.T) {
	got, err := NewEdges().Apply(filled(t, FormatGray16, 6, 6, 30000))
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	for y := 1; y < 5; y++ {
		for x := 1; x < 5; x++ {
			if v := got.Channel(x, y, 0); v != 0 {
				t.Fatalf("(%d,%d) = %d, want 0", x, y, v)
			}
		}
	}
}

func TestSharpen_IncreasesContrast(t *testing.T) {
	img := gray8(t, [][]int{
		{100, 100, 150, 150},
		{100, 100, 150, 150},
		{100, 100, 150, 150},
		{100, 100, 150, 150},
	})
	got, err := NewSharpen().Apply(img)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	// 5*100 - 3*100 - 150 and 5*150 - 3*150 - 100
	if v := got.Channel(1, 1, 0); v != 50 {
		t.Errorf("dark side = %d, want 50", v)
	}
	if v := got.Channel(2, 1, 0); v != 200 {
		t.Errorf("bright side = %d, want 200", v)
	}
}
