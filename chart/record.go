package chart

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"temline"
)

// Record 电压电流分布列
type Record struct {
	Title     string    // 图表副标题
	Z         []float64 // 位置列
	Voltage   []float64 // 瞬时电压 v(z, φ)
	VEnvelope []float64 // |V(z)|
	Current   []float64 // 瞬时电流 i(z, φ)
	IEnvelope []float64 // |I(z)|
}

// NewRecord 由计算结果生成记录
func NewRecord(ev *temline.Evaluation) *Record {
	return &Record{
		Title: fmt.Sprintf("%s / %s, f = %.3g Hz, φ = %.2f rad, α = %.4e Np/m, β = %.4e rad/m, |Z0| = %.2f Ω",
			ev.Conductor.Name, ev.Dielectric.Name, ev.Frequency, ev.Input.Phase, ev.Alpha(), ev.Beta(), ev.Z0Magnitude()),
		Z:         ev.Z,
		Voltage:   ev.VInstant,
		VEnvelope: ev.VEnvelope,
		Current:   ev.IInstant,
		IEnvelope: ev.IEnvelope,
	}
}

// Render 格式和输出内容
func (list *Record) Render(w io.Writer) error { return json.NewEncoder(w).Encode(list) }

func (list *Record) Error(err error) { log.Println(err) }
