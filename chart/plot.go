package chart

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"temline/maths"
)

// Kind 绘图类型
type Kind string

const (
	KindVoltage Kind = "voltage"
	KindCurrent Kind = "current"
)

// ParseKind 解析绘图类型
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindVoltage, KindCurrent:
		return k, nil
	}
	return "", fmt.Errorf("未知绘图类型: %s", s)
}

// 图像尺寸与原界面一致 (10 x 4 英寸)
var (
	PlotWidth  = 10 * vg.Inch
	PlotHeight = 4 * vg.Inch
	PlotDPI    = 100
)

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts
}

// Plot 生成电压或电流分布图：瞬时波形、±包络和零轴
func (list *Record) Plot(kind Kind) (*plot.Plot, error) {
	var (
		inst, env         []float64
		instName, envName string
		yLabel, title     string
		instCol, envCol   color.RGBA
	)
	switch kind {
	case KindVoltage:
		inst, env = list.Voltage, list.VEnvelope
		instName, envName, yLabel = "v(z, t0)", "|V(z)|", "V"
		instCol, envCol = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}, color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0x99}
		title = "Voltage profile"
	case KindCurrent:
		inst, env = list.Current, list.IEnvelope
		instName, envName, yLabel = "i(z, t0)", "|I(z)|", "A"
		instCol, envCol = color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}, color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0x99}
		title = "Current profile"
	default:
		return nil, fmt.Errorf("未知绘图类型: %s", kind)
	}
	if len(list.Z) < 2 || len(inst) != len(list.Z) || len(env) != len(list.Z) {
		return nil, fmt.Errorf("绘图数据无效")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "z (m)"
	p.Y.Label.Text = yLabel
	grid := plotter.NewGrid()
	grid.Vertical.Dashes = []vg.Length{vg.Points(1), vg.Points(2)}
	grid.Horizontal.Dashes = []vg.Length{vg.Points(1), vg.Points(2)}
	p.Add(grid)

	wave, err := plotter.NewLine(xys(list.Z, inst))
	if err != nil {
		return nil, err
	}
	wave.LineStyle.Width = vg.Points(2)
	wave.LineStyle.Color = instCol

	upper, err := plotter.NewLine(xys(list.Z, env))
	if err != nil {
		return nil, err
	}
	lower, err := plotter.NewLine(xys(list.Z, negate(env)))
	if err != nil {
		return nil, err
	}
	for _, l := range []*plotter.Line{upper, lower} {
		l.LineStyle.Width = vg.Points(1.5)
		l.LineStyle.Color = envCol
		l.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	}

	last := len(list.Z) - 1
	axis, err := plotter.NewLine(plotter.XYs{{X: list.Z[0], Y: 0}, {X: list.Z[last], Y: 0}})
	if err != nil {
		return nil, err
	}
	axis.LineStyle.Width = vg.Points(0.5)
	axis.LineStyle.Color = color.Black

	p.Add(wave, upper, lower, axis)
	p.Legend.Add(instName, wave)
	p.Legend.Add(envName, upper)
	p.Legend.Top = true

	limit := maths.Peak(env) * 1.05
	if limit == 0 {
		limit = 1
	}
	p.Y.Min, p.Y.Max = -limit, limit
	p.X.Min, p.X.Max = list.Z[0], list.Z[last]
	return p, nil
}

// WritePNG 输出 PNG 图像
func (list *Record) WritePNG(w io.Writer, kind Kind) error {
	p, err := list.Plot(kind)
	if err != nil {
		return err
	}
	c := vgimg.NewWith(
		vgimg.UseWH(PlotWidth, PlotHeight),
		vgimg.UseDPI(PlotDPI),
	)
	p.Draw(draw.New(c))
	_, err = vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	return err
}
