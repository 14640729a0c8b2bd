// Package line 平行板传输线 TEM 模式求解。
//
// 给定频率、几何尺寸和材料参数，计算单位长度 RLCG、传播常数 γ、
// 特性阻抗 Z0 以及匹配线上的电压电流相量分布。
// 所有函数无状态，可被任意多个 goroutine 并发调用。
package line

import (
	"math"

	"temline/material"
	"temline/maths"
)

// Geometry 平行板几何尺寸 (m)
type Geometry struct {
	Separation float64 `json:"separation"` // 板间距 d
	Width      float64 `json:"width"`      // 板宽 W
	Length     float64 `json:"length"`     // 线长 L
}

// PerUnit 单位长度分布参数
type PerUnit struct {
	R float64 `json:"r"` // 电阻 (Ω/m)
	L float64 `json:"l"` // 电感 (H/m)
	C float64 `json:"c"` // 电容 (F/m)
	G float64 `json:"g"` // 电导 (S/m)
}

// Omega 角频率 ω = 2πf
func Omega(f float64) float64 { return 2 * math.Pi * f }

// Derive 由材料和几何参数得到单位长度 RLCG。
// 电感使用导体的相对磁导率。
func Derive(cond material.Conductor, diel material.Dielectric, geom Geometry, f float64) PerUnit {
	w := Omega(f)
	// 表面电阻 Rs
	rs := real(maths.SqrtReal((math.Pi * f * Mu0 * cond.Permeability) / cond.Conductivity))
	c := Eps0 * diel.Permittivity * geom.Width / geom.Separation
	return PerUnit{
		R: (2 * rs) / geom.Width, // 两块板
		L: Mu0 * cond.Permeability * geom.Separation / geom.Width,
		C: c,
		G: w * c * diel.LossTangent,
	}
}

// Series 串联阻抗 Z = R + jωL
func (p PerUnit) Series(omega float64) complex128 { return complex(p.R, omega*p.L) }

// Shunt 并联导纳 Y = G + jωC
func (p PerUnit) Shunt(omega float64) complex128 { return complex(p.G, omega*p.C) }

// Propagation 传播常数 γ = √(ZY) 与特性阻抗 Z0 = √(Z/Y)，均取主值。
func (p PerUnit) Propagation(omega float64) (gamma, z0 complex128) {
	z, y := p.Series(omega), p.Shunt(omega)
	return maths.Sqrt(z * y), maths.Sqrt(z / y)
}

// Solve 求解一组输入。输入合法性由调用方保证，函数本身不返回错误。
func Solve(cond material.Conductor, diel material.Dielectric, geom Geometry, f float64) Result {
	pu := Derive(cond, diel, geom, f)
	gamma, z0 := pu.Propagation(Omega(f))
	z := maths.Linspace(Points, 0, geom.Length)
	v := maths.Exp(nil, InputVoltage, gamma, z)
	return Result{
		Frequency: f,
		Gamma:     gamma,
		Z0:        z0,
		PerUnit:   pu,
		Z:         z,
		V:         v,
		I:         maths.Div(nil, v, z0),
	}
}
