package line

import (
	"math"
	"math/cmplx"

	"temline/maths"
)

// Result 一次求解的完整结果
type Result struct {
	Frequency float64      // 激励频率 (Hz)
	Gamma     complex128   // 传播常数 γ = α + jβ (1/m)
	Z0        complex128   // 特性阻抗 (Ω)
	PerUnit                // 单位长度 RLCG
	Z         []float64    // 位置 (m)
	V         []complex128 // 电压相量 V(z)
	I         []complex128 // 电流相量 I(z)
}

// Alpha 衰减常数 (Np/m)
func (r Result) Alpha() float64 { return real(r.Gamma) }

// Beta 相位常数 (rad/m)
func (r Result) Beta() float64 { return imag(r.Gamma) }

// Z0Magnitude 特性阻抗模值 (Ω)
func (r Result) Z0Magnitude() float64 { return cmplx.Abs(r.Z0) }

// Wavelength 导波波长 2π/β，β 为 0 时返回 +Inf
func (r Result) Wavelength() float64 {
	if r.Beta() == 0 {
		return math.Inf(1)
	}
	return 2 * math.Pi / r.Beta()
}

// PhaseVelocity 相速度 ω/β，β 为 0 时返回 +Inf
func (r Result) PhaseVelocity() float64 {
	if r.Beta() == 0 {
		return math.Inf(1)
	}
	return Omega(r.Frequency) / r.Beta()
}

// Instantaneous 观察相位 φ 下的瞬时波形 Re(V·e^{jφ}), Re(I·e^{jφ})
func (r Result) Instantaneous(phase float64) (v, i []float64) {
	return maths.Rotate(r.V, phase), maths.Rotate(r.I, phase)
}

// Envelope 包络 |V(z)|, |I(z)|
func (r Result) Envelope() (v, i []float64) {
	return maths.Abs(r.V), maths.Abs(r.I)
}

// Finite γ、Z0 与全部相量均为有限值时返回 true。
// 极端频率下 ω 上溢或下溢，结果会出现 Inf 或 NaN。
func (r Result) Finite() bool {
	if !finite(r.Gamma) || !finite(r.Z0) {
		return false
	}
	for k := range r.V {
		if !finite(r.V[k]) || !finite(r.I[k]) {
			return false
		}
	}
	return true
}

func finite(c complex128) bool {
	return !cmplx.IsNaN(c) && !cmplx.IsInf(c)
}
