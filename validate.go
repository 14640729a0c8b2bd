package temline

import (
	"errors"
	"fmt"
	"math"

	"temline/material"
)

// ErrInvalidInput 输入参数不合法
var ErrInvalidInput = errors.New("输入参数无效")

// 界面推荐范围，超出时仅提示
const (
	MinFrequency  = 1e6
	MaxFrequency  = 10e9
	MinSeparation = 1e-6
	MinWidth      = 1e-3
	MinLength     = 0.001
	MaxPhase      = 2 * math.Pi
)

func positive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %s 必须为有限正数, 实际 %v", ErrInvalidInput, name, v)
	}
	return nil
}

// Validate 校验数值参数和材料名称
func (in Input) Validate() error {
	_, _, err := in.resolve()
	return err
}

func (in Input) resolve() (material.Conductor, material.Dielectric, error) {
	var (
		cond material.Conductor
		diel material.Dielectric
	)
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"frequency", in.Frequency},
		{"separation", in.Separation},
		{"width", in.Width},
		{"length", in.Length},
	} {
		if err := positive(f.name, f.v); err != nil {
			return cond, diel, err
		}
	}
	if math.IsNaN(in.Phase) || math.IsInf(in.Phase, 0) {
		return cond, diel, fmt.Errorf("%w: phase 必须为有限实数, 实际 %v", ErrInvalidInput, in.Phase)
	}
	cond, err := material.LookupConductor(in.Conductor)
	if err != nil {
		return cond, diel, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	diel, err = material.LookupDielectric(in.Dielectric)
	if err != nil {
		return cond, diel, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return cond, diel, nil
}

// CheckRange 返回超出推荐范围的提示，不影响计算
func (in Input) CheckRange() []string {
	var warn []string
	if in.Frequency < MinFrequency || in.Frequency > MaxFrequency {
		warn = append(warn, fmt.Sprintf("频率 %g Hz 超出推荐范围 [%g, %g]", in.Frequency, MinFrequency, MaxFrequency))
	}
	if in.Separation < MinSeparation {
		warn = append(warn, fmt.Sprintf("板间距 %g m 小于 %g m", in.Separation, MinSeparation))
	}
	if in.Width < MinWidth {
		warn = append(warn, fmt.Sprintf("板宽 %g m 小于 %g m", in.Width, MinWidth))
	}
	if in.Length < MinLength {
		warn = append(warn, fmt.Sprintf("线长 %g m 小于 %g m", in.Length, MinLength))
	}
	if in.Phase < 0 || in.Phase > MaxPhase {
		warn = append(warn, fmt.Sprintf("观察相位 %g rad 超出 [0, 2π]", in.Phase))
	}
	return warn
}
