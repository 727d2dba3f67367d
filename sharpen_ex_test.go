package convolve

import "testing"

func TestSharpenEx_Defaults(t *testing.T) {
	s := DefaultSharpenEx()
	if s.Sigma() != DefaultSigma || s.Size() != DefaultSize {
		t.Errorf("defaults = (%v, %d), want (%v, %d)", s.Sigma(), s.Size(), DefaultSigma, DefaultSize)
	}
	if s.Divisor() != 155 {
		t.Errorf("Divisor() = %d, want 155", s.Divisor())
	}

	want := [][]int{
		{-2, -4, -5, -4, -2},
		{-4, -9, -11, -9, -4},
		{-5, -11, 295, -11, -5},
		{-4, -9, -11, -9, -4},
		{-2, -4, -5, -4, -2},
	}
	if got := s.Kernel(); !equalMatrix(got, want) {
		t.Errorf("Kernel() = %v, want %v", got, want)
	}
}

func TestSharpenEx_BuildsForEveryParameter(t *testing.T) {
	// The divisor is the Gaussian sum, so it is never zero and the filter
	// always builds.
	for s := 5; s <= 50; s++ {
		sigma := float64(s) / 10
		for size := MinGaussianSize; size <= MaxGaussianSize; size += 2 {
			f := NewSharpenEx(sigma, size)
			if f.Divisor() < 1 {
				t.Fatalf("NewSharpenEx(%v, %d).Divisor() = %d, want >= 1", sigma, size, f.Divisor())
			}
			if _, err := f.Apply(filled(t, FormatGray8, 3, 3, 10)); err != nil {
				t.Fatalf("NewSharpenEx(%v, %d).Apply() error = %v", sigma, size, err)
			}
		}
	}
}

func TestSharpenEx_KernelRelation(t *testing.T) {
	for _, sigma := range []float64{0.5, 1, 1.4, 2.5, 5} {
		for _, size := range []int{3, 5, 7, 11, 21} {
			s := NewSharpenEx(sigma, size)
			g := GaussianKernel(sigma, size)

			sum := 0
			for _, row := range g {
				for _, w := range row {
					sum += w
				}
			}
			if s.Divisor() != sum {
				t.Errorf("(%v, %d): Divisor() = %d, want %d", sigma, size, s.Divisor(), sum)
			}

			k := s.Kernel()
			c := size / 2
			for i := range size {
				for j := range size {
					want := -g[i][j]
					if i == c && j == c {
						want = 2*sum - g[i][j]
					}
					if k[i][j] != want {
						t.Fatalf("(%v, %d): k[%d][%d] = %d, want %d", sigma, size, i, j, k[i][j], want)
					}
				}
			}
		}
	}
}

func TestSharpenEx_Setters(t *testing.T) {
	s := DefaultSharpenEx()

	s.SetSize(8)
	if s.Size() != 9 || len(s.Kernel()) != 9 {
		t.Errorf("SetSize(8): Size() = %d, len(Kernel()) = %d, want 9", s.Size(), len(s.Kernel()))
	}
	s.SetSigma(0)
	if s.Sigma() != MinSigma {
		t.Errorf("SetSigma(0): Sigma() = %v, want %v", s.Sigma(), MinSigma)
	}
	if want := NewSharpenEx(MinSigma, 9).Kernel(); !equalMatrix(s.Kernel(), want) {
		t.Error("setters did not regenerate the kernel")
	}
}

func TestSharpenEx_UniformUnchanged(t *testing.T) {
	for _, format := range []Format{FormatGray8, FormatRGB16, FormatBGRA8} {
		t.Run(format.String(), func(t *testing.T) {
			v := 120
			if format.BitsPerChannel() == 16 {
				v = 30000
			}
			got, err := DefaultSharpenEx().Apply(filled(t, format, 8, 8, v))
			if err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			info := format.Info()
			if rows := rowsOf(got, info.Red); !equalMatrix(rows, constant(8, 8, v)) {
				t.Errorf("uniform image changed: %v", rows)
			}
		})
	}
}

func TestSharpenEx_StepEdge(t *testing.T) {
	img := mustImage(t, FormatGray8, 12, 12)
	for y := range 12 {
		for x := range 12 {
			v := 100
			if x >= 6 {
				v = 150
			}
			_ = img.SetChannel(x, y, 0, v)
		}
	}

	got, err := DefaultSharpenEx().Apply(img)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	// The two columns across the step carry 54 of the 155 Gaussian weight.
	// (46500 - 20550) / 155 and (31000 - 18200) / 155
	if v := got.Channel(6, 6, 0); v != 167 {
		t.Errorf("bright side = %d, want 167", v)
	}
	if v := got.Channel(5, 6, 0); v != 82 {
		t.Errorf("dark side = %d, want 82", v)
	}
}
