package maths

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

// Linspace 返回 [a, b] 上均匀分布的 n 个点，两端点包含在内。
func Linspace(n int, a, b float64) []float64 {
	return floats.Span(make([]float64, n), a, b)
}

// Abs 逐点取模 |s[i]|。
func Abs(s []complex128) []float64 {
	dst := make([]float64, len(s))
	for i, v := range s {
		dst[i] = cmplx.Abs(v)
	}
	return dst
}

// Rotate 逐点计算 Re(s[i]·exp(jφ))，即相位 φ 时刻的瞬时值。
func Rotate(s []complex128, phase float64) []float64 {
	sin, cos := math.Sincos(phase)
	rot := complex(cos, sin)
	dst := make([]float64, len(s))
	for i, v := range s {
		dst[i] = real(v * rot)
	}
	return dst
}

// Peak 返回切片最大值，空切片返回 0。
func Peak(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	return floats.Max(s)
}
