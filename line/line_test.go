package line

import (
	"math"
	"math/cmplx"
	"sync"
	"testing"

	"temline/material"
)

var (
	copper = material.Conductor{Name: "Cobre", Conductivity: 5.80e7, Permeability: 1.0}
	air    = material.Dielectric{Name: "Aire", LossTangent: 0, Permeability: 1.0, Permittivity: 1.0005}
	snow   = material.Dielectric{Name: "Nieve", LossTangent: 500.00e-3, Permeability: 1.0, Permittivity: 3.3}
	ideal  = material.Conductor{Name: "ideal", Conductivity: math.Inf(1), Permeability: 1.0}
	geom   = Geometry{Separation: 0.005, Width: 0.1, Length: 10}
)

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol*math.Max(math.Abs(a), math.Abs(b))
}

func TestCopperAirScenario(t *testing.T) {
	res := Solve(copper, air, geom, 6e9)

	if a := res.Alpha(); a <= 0 || a > 0.05 {
		t.Errorf("衰减常数不正确: %v", a)
	}
	lossless := Omega(6e9) * math.Sqrt(res.L*res.C)
	if !near(res.Beta(), lossless, 1e-3) {
		t.Errorf("相位常数 β = %v, 期望约 %v", res.Beta(), lossless)
	}
	if z := res.Z0Magnitude(); z < 18 || z > 20 {
		t.Errorf("|Z0| = %v, 期望 18~20 Ω", z)
	}
	// Rs = √(πfμ0/σ), R = 2Rs/W
	rs := math.Sqrt(math.Pi * 6e9 * Mu0 / 5.80e7)
	if !near(res.R, 2*rs/0.1, 1e-12) {
		t.Errorf("R = %v, 期望 %v", res.R, 2*rs/0.1)
	}
	if !near(res.C, Eps0*1.0005*0.1/0.005, 1e-12) {
		t.Errorf("C = %v", res.C)
	}
	if res.G != 0 {
		t.Errorf("无损介质 G 应为 0, 实际 %v", res.G)
	}
}

func TestProfileShape(t *testing.T) {
	res := Solve(copper, snow, geom, 1e9)
	if len(res.Z) != Points || len(res.V) != Points || len(res.I) != Points {
		t.Fatalf("长度不一致: z=%d V=%d I=%d", len(res.Z), len(res.V), len(res.I))
	}
	if res.Z[0] != 0 || !near(res.Z[Points-1], geom.Length, 1e-12) {
		t.Errorf("位置范围错误: [%v, %v]", res.Z[0], res.Z[Points-1])
	}
	for k := 1; k < Points; k++ {
		if res.Z[k] <= res.Z[k-1] {
			t.Fatalf("位置非递增: z[%d]=%v z[%d]=%v", k-1, res.Z[k-1], k, res.Z[k])
		}
	}
	if res.V[0] != complex(1, 0) {
		t.Errorf("V(0) = %v, 期望 1+0i", res.V[0])
	}
	for k := range res.V {
		if res.I[k] != res.V[k]/res.Z0 {
			t.Fatalf("I[%d] != V[%d]/Z0", k, k)
		}
	}
}

func TestAttenuationNonNegative(t *testing.T) {
	freqs := []float64{1e6, 1e7, 1e8, 1e9, 6e9, 10e9}
	for _, c := range material.Conductors() {
		for _, d := range material.Dielectrics() {
			for _, f := range freqs {
				res := Solve(c, d, geom, f)
				if res.Alpha() < 0 {
					t.Errorf("%s/%s f=%g: α = %v < 0", c.Name, d.Name, f, res.Alpha())
				}
				if math.IsNaN(real(res.Gamma)) || math.IsNaN(real(res.Z0)) {
					t.Errorf("%s/%s f=%g: NaN 结果", c.Name, d.Name, f)
				}
			}
		}
	}
}

func TestEnvelopeMonotonic(t *testing.T) {
	for _, d := range []material.Dielectric{air, snow} {
		for _, c := range []material.Conductor{copper, ideal} {
			res := Solve(c, d, geom, 6e9)
			env, _ := res.Envelope()
			for k := 1; k < len(env); k++ {
				if env[k] > env[k-1]*(1+1e-12) {
					t.Fatalf("%s/%s: |V| 在 z[%d] 增大: %v > %v", c.Name, d.Name, k, env[k], env[k-1])
				}
			}
		}
	}
}

func TestLosslessLimit(t *testing.T) {
	res := Solve(ideal, air, geom, 6e9)
	if res.R != 0 || res.G != 0 {
		t.Fatalf("理想导体/无损介质 R=%v G=%v", res.R, res.G)
	}
	if real(res.Gamma) != 0 {
		t.Errorf("γ 应为纯虚数, 实际 %v", res.Gamma)
	}
	if imag(res.Z0) != 0 {
		t.Errorf("Z0 应为纯实数, 实际 %v", res.Z0)
	}
	if want := math.Sqrt(res.L / res.C); !near(res.Z0Magnitude(), want, 1e-12) {
		t.Errorf("|Z0| = %v, 期望 √(L/C) = %v", res.Z0Magnitude(), want)
	}
	// 无损线包络恒为输入幅值
	env, _ := res.Envelope()
	for k, v := range env {
		if math.Abs(v-1) > 1e-12 {
			t.Fatalf("|V(z[%d])| = %v, 期望 1", k, v)
		}
	}
}

func TestFinite(t *testing.T) {
	if res := Solve(copper, snow, geom, 6e9); !res.Finite() {
		t.Errorf("常规输入结果应为有限值: γ=%v Z0=%v", res.Gamma, res.Z0)
	}
	// ω 上溢与下溢
	for _, f := range []float64{1e300, 1e-320} {
		if res := Solve(copper, air, geom, f); res.Finite() {
			t.Errorf("f=%v 结果应含 Inf 或 NaN: γ=%v Z0=%v", f, res.Gamma, res.Z0)
		}
	}
}

func TestZeroResistancePerUnit(t *testing.T) {
	pu := Derive(copper, air, geom, 6e9)
	pu.R = 0
	gamma, z0 := pu.Propagation(Omega(6e9))
	if real(gamma) != 0 || imag(z0) != 0 {
		t.Errorf("γ=%v Z0=%v", gamma, z0)
	}
	if !near(cmplx.Abs(z0), math.Sqrt(pu.L/pu.C), 1e-12) {
		t.Errorf("|Z0| = %v, 期望 %v", cmplx.Abs(z0), math.Sqrt(pu.L/pu.C))
	}
}

func TestWidthScaling(t *testing.T) {
	lossy := material.Dielectric{Name: "Vidrio", LossTangent: 2.00e-3, Permeability: 1.0, Permittivity: 4.0}
	wide := geom
	wide.Width *= 2
	a := Derive(copper, lossy, geom, 6e9)
	b := Derive(copper, lossy, wide, 6e9)
	checks := []struct {
		name      string
		got, want float64
	}{
		{"R", b.R, a.R / 2},
		{"L", b.L, a.L / 2},
		{"C", b.C, 2 * a.C},
		{"G", b.G, 2 * a.G},
	}
	for _, c := range checks {
		if !near(c.got, c.want, 1e-12) {
			t.Errorf("%s(2W) = %v, 期望 %v", c.name, c.got, c.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	res := Solve(copper, snow, geom, 2.4e9)
	pu := PerUnit{R: res.R, L: res.L, C: res.C, G: res.G}
	gamma, z0 := pu.Propagation(Omega(res.Frequency))
	if gamma != res.Gamma || z0 != res.Z0 {
		t.Errorf("重算结果不一致: γ %v/%v Z0 %v/%v", gamma, res.Gamma, z0, res.Z0)
	}
}

func TestInstantaneousBoundedByEnvelope(t *testing.T) {
	res := Solve(copper, snow, geom, 1e9)
	envV, envI := res.Envelope()
	for _, phase := range []float64{0, 0.7, math.Pi / 2, math.Pi, 5.5} {
		v, i := res.Instantaneous(phase)
		for k := range v {
			if math.Abs(v[k]) > envV[k]*(1+1e-12) || math.Abs(i[k]) > envI[k]*(1+1e-12) {
				t.Fatalf("φ=%v z[%d]: 瞬时值超出包络", phase, k)
			}
		}
	}
	v, _ := res.Instantaneous(0)
	if v[0] != 1 {
		t.Errorf("v(0, 0) = %v, 期望 1", v[0])
	}
}

func TestWavelength(t *testing.T) {
	res := Solve(ideal, air, geom, 6e9)
	c := 1 / math.Sqrt(Mu0*Eps0*1.0005)
	if !near(res.PhaseVelocity(), c, 1e-9) {
		t.Errorf("相速度 %v, 期望 %v", res.PhaseVelocity(), c)
	}
	if !near(res.Wavelength(), c/6e9, 1e-9) {
		t.Errorf("波长 %v, 期望 %v", res.Wavelength(), c/6e9)
	}
	if w := (Result{}).Wavelength(); !math.IsInf(w, 1) {
		t.Errorf("β=0 时波长应为 +Inf, 实际 %v", w)
	}
}

func TestSolveConcurrent(t *testing.T) {
	want := Solve(copper, snow, geom, 3e9)
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := Solve(copper, snow, geom, 3e9)
			if got.Gamma != want.Gamma || got.Z0 != want.Z0 || got.V[Points-1] != want.V[Points-1] {
				t.Errorf("并发求解结果不一致")
			}
		}()
	}
	wg.Wait()
}
