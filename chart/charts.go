package chart

import (
	"io"
	"net/http"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Charts 曲线绘制
type Charts struct {
	*Record
}

// series 一条曲线
type series struct {
	name   string
	data   []float64
	color  string
	dashed bool
}

func negate(s []float64) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = -v
	}
	return out
}

// newLine 构建带包络的单张折线图
func (c *Charts) newLine(title, unit string, list []series) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: c.Title,
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:        "z (m)",
			SplitNumber: 20,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  unit,
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithAnimation(true),
	)
	axis := make([]string, len(c.Z))
	for i, z := range c.Z {
		axis[i] = strconv.FormatFloat(z, 'f', 3, 64)
	}
	line.SetXAxis(axis)
	for _, s := range list {
		items := make([]opts.LineData, len(s.data))
		for i, v := range s.data {
			items[i] = opts.LineData{Value: v}
		}
		style := opts.LineStyle{Color: s.color, Width: 2}
		if s.dashed {
			style.Type = "dashed"
			style.Width = 1.5
		}
		line.AddSeries(s.name, items,
			charts.WithLineStyleOpts(style),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.color}),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		)
	}
	return line
}

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	lineV := c.newLine("电压分布 - 瞬时波形与衰减包络", "V", []series{
		{name: "v(z, t0)", data: c.Voltage, color: "#1f77b4"},
		{name: "|V(z)|", data: c.VEnvelope, color: "#d62728", dashed: true},
		{name: "-|V(z)|", data: negate(c.VEnvelope), color: "#d62728", dashed: true},
	})
	lineI := c.newLine("电流分布 - 瞬时波形与衰减包络", "A", []series{
		{name: "i(z, t0)", data: c.Current, color: "#2ca02c"},
		{name: "|I(z)|", data: c.IEnvelope, color: "#9467bd", dashed: true},
		{name: "-|I(z)|", data: negate(c.IEnvelope), color: "#9467bd", dashed: true},
	})
	// 构建界面
	page := components.NewPage()
	page.PageTitle = "TEM 平行板传输线"
	page.AddCharts(
		lineV,
		lineI,
	)
	return page.Render(w)
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(w); err != nil {
		c.Error(err)
	}
}
