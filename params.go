package temline

import (
	"fmt"

	"temline/utils"
)

// 参数键及其简写
var paramKeys = map[string]string{
	"frequency":  "frequency",
	"f":          "frequency",
	"separation": "separation",
	"d":          "separation",
	"width":      "width",
	"w":          "width",
	"length":     "length",
	"l":          "length",
	"conductor":  "conductor",
	"dielectric": "dielectric",
	"phase":      "phase",
	"t":          "phase",
}

// CanonicalKey 返回参数的规范键名
func CanonicalKey(key string) (string, bool) {
	k, ok := paramKeys[key]
	return k, ok
}

// InputFromParams 以 base 为初值，用参数表覆盖对应字段。
// 未知键被忽略；同一字段同时给出全名和简写时以全名为准。
func InputFromParams(base Input, p utils.Params) (Input, error) {
	canon := utils.Params{}
	for _, k := range p.Keys() {
		c, ok := CanonicalKey(k)
		if !ok {
			continue
		}
		if _, dup := canon[c]; dup && k != c {
			continue
		}
		canon[c] = p[k]
	}
	in := base
	var err error
	for _, f := range []struct {
		key string
		dst *float64
	}{
		{"frequency", &in.Frequency},
		{"separation", &in.Separation},
		{"width", &in.Width},
		{"length", &in.Length},
		{"phase", &in.Phase},
	} {
		if *f.dst, err = canon.ParseFloat64(f.key, *f.dst); err != nil {
			return base, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}
	in.Conductor = canon.ParseString("conductor", in.Conductor)
	in.Dielectric = canon.ParseString("dielectric", in.Dielectric)
	return in, nil
}
