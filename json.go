package temline

import (
	"encoding/json"
	"math"

	"temline/line"
	"temline/material"
)

// Complex 复数的 JSON 表示
type Complex struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

// NewComplex 拆分实部虚部
func NewComplex(c complex128) Complex { return Complex{Re: real(c), Im: imag(c)} }

// ComplexSlice 复数序列的 JSON 表示，实部虚部分列
type ComplexSlice struct {
	Re []float64 `json:"re"`
	Im []float64 `json:"im"`
}

func newComplexSlice(s []complex128) ComplexSlice {
	cs := ComplexSlice{Re: make([]float64, len(s)), Im: make([]float64, len(s))}
	for i, v := range s {
		cs.Re[i], cs.Im[i] = real(v), imag(v)
	}
	return cs
}

// Report 对外输出结构
type Report struct {
	Input         Input               `json:"input"`
	Conductor     material.Conductor  `json:"conductor"`
	Dielectric    material.Dielectric `json:"dielectric"`
	Gamma         Complex             `json:"gamma"`
	Z0            Complex             `json:"z0"`
	Alpha         float64             `json:"alpha"`
	Beta          float64             `json:"beta"`
	Z0Magnitude   float64             `json:"z0Magnitude"`
	Wavelength    *float64            `json:"wavelength"`    // β = 0 时为 null
	PhaseVelocity *float64            `json:"phaseVelocity"` // β = 0 时为 null
	PerUnit       line.PerUnit        `json:"perUnit"`
	Z             []float64           `json:"z"`
	V             ComplexSlice        `json:"v"`
	I             ComplexSlice        `json:"i"`
	VInstant      []float64           `json:"vInstant"`
	IInstant      []float64           `json:"iInstant"`
	VEnvelope     []float64           `json:"vEnvelope"`
	IEnvelope     []float64           `json:"iEnvelope"`
	Warnings      []string            `json:"warnings,omitempty"`
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

// Report 转换为输出结构
func (ev *Evaluation) Report() Report {
	return Report{
		Input:         ev.Input,
		Conductor:     ev.Conductor,
		Dielectric:    ev.Dielectric,
		Gamma:         NewComplex(ev.Gamma),
		Z0:            NewComplex(ev.Z0),
		Alpha:         ev.Alpha(),
		Beta:          ev.Beta(),
		Z0Magnitude:   ev.Z0Magnitude(),
		Wavelength:    finite(ev.Wavelength()),
		PhaseVelocity: finite(ev.PhaseVelocity()),
		PerUnit:       ev.PerUnit,
		Z:             ev.Z,
		V:             newComplexSlice(ev.V),
		I:             newComplexSlice(ev.I),
		VInstant:      ev.VInstant,
		IInstant:      ev.IInstant,
		VEnvelope:     ev.VEnvelope,
		IEnvelope:     ev.IEnvelope,
		Warnings:      ev.Input.CheckRange(),
	}
}

// MarshalJSON 实现 json.Marshaler
func (ev *Evaluation) MarshalJSON() ([]byte, error) { return json.Marshal(ev.Report()) }
