// Package temline 平行板传输线 TEM 波传播计算。
//
// 调用方提交一组 Input，Evaluate 在边界处完成校验和材料解析，
// 再调用 line.Solve 得到传播常数、特性阻抗和电压电流分布，
// 并附带界面展示所需的衍生量（α、β、|Z0|、瞬时波形与包络）。
package temline

import (
	"temline/line"
	"temline/material"
)

// Input 用户输入
type Input struct {
	Frequency  float64 `json:"frequency"`  // 频率 (Hz)
	Separation float64 `json:"separation"` // 板间距 d (m)
	Width      float64 `json:"width"`      // 板宽 W (m)
	Length     float64 `json:"length"`     // 线长 L (m)
	Conductor  string  `json:"conductor"`  // 导体名称
	Dielectric string  `json:"dielectric"` // 介质名称
	Phase      float64 `json:"phase"`      // 观察相位 ωt (rad)，仅用于瞬时波形
}

// DefaultInput 界面初始值
func DefaultInput() Input {
	return Input{
		Frequency:  6e9,
		Separation: 0.005,
		Width:      0.1,
		Length:     10.0,
		Conductor:  material.Conductors()[0].Name,
		Dielectric: material.Dielectrics()[0].Name,
		Phase:      0,
	}
}

// Geometry 几何参数
func (in Input) Geometry() line.Geometry {
	return line.Geometry{Separation: in.Separation, Width: in.Width, Length: in.Length}
}

// Evaluation 一次计算的结果及展示量
type Evaluation struct {
	Input      Input
	Conductor  material.Conductor
	Dielectric material.Dielectric
	line.Result

	VInstant  []float64 // v(z, φ)
	IInstant  []float64 // i(z, φ)
	VEnvelope []float64 // |V(z)|
	IEnvelope []float64 // |I(z)|
}

// Evaluate 校验输入、解析材料并求解
func Evaluate(in Input) (*Evaluation, error) {
	cond, diel, err := in.resolve()
	if err != nil {
		return nil, err
	}
	ev := &Evaluation{
		Input:      in,
		Conductor:  cond,
		Dielectric: diel,
		Result:     line.Solve(cond, diel, in.Geometry(), in.Frequency),
	}
	ev.VInstant, ev.IInstant = ev.Instantaneous(in.Phase)
	ev.VEnvelope, ev.IEnvelope = ev.Envelope()
	return ev, nil
}
