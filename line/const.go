package line

import "math"

// 物理常量
const (
	Mu0  = 4 * math.Pi * 1e-7 // 真空磁导率 (H/m)
	Eps0 = 8.854e-12          // 真空介电常数 (F/m)
)

// 默认参数常量定义
const (
	Points       = 500 // 沿线采样点数
	InputVoltage = 1.0 // 输入端激励幅值 (V)，零相位
)
