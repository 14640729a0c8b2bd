package maths

import (
	"math/cmplx"
)

// Sqrt 复数主值平方根。
// 返回值实部恒非负：负实数输入得到纯虚数结果而不是 NaN，
// 衰减常数 Re(γ) 因此不会为负。
func Sqrt(x complex128) complex128 {
	r := cmplx.Sqrt(x)
	if real(r) < 0 {
		return -r
	}
	return r
}

// SqrtReal 实数输入的复数域平方根。
func SqrtReal(x float64) complex128 { return Sqrt(complex(x, 0)) }

// Exp 计算 dst[i] = amplitude·exp(-gamma·z[i])。
// dst 为 nil 时重新分配。
func Exp(dst []complex128, amplitude, gamma complex128, z []float64) []complex128 {
	if dst == nil {
		dst = make([]complex128, len(z))
	}
	if len(dst) != len(z) {
		panic("maths: 长度不匹配")
	}
	for i, x := range z {
		dst[i] = amplitude * cmplx.Exp(-gamma*complex(x, 0))
	}
	return dst
}

// Div 计算 dst[i] = s[i] / d。
func Div(dst, s []complex128, d complex128) []complex128 {
	if dst == nil {
		dst = make([]complex128, len(s))
	}
	if len(dst) != len(s) {
		panic("maths: 长度不匹配")
	}
	for i, v := range s {
		dst[i] = v / d
	}
	return dst
}
