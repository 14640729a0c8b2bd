package utils

import (
	"net/url"
	"testing"
)

func TestFromValues(t *testing.T) {
	p := FromValues(url.Values{"Frequency": {"6e9", "1"}, "conductor": {" Cobre "}, "empty": {}})
	if p["frequency"] != "6e9" {
		t.Errorf("frequency = %q", p["frequency"])
	}
	if p["conductor"] != "Cobre" {
		t.Errorf("conductor = %q", p["conductor"])
	}
	if _, ok := p["empty"]; ok {
		t.Errorf("空参数不应写入")
	}
	if keys := p.Keys(); len(keys) != 2 || keys[0] != "conductor" {
		t.Errorf("Keys() = %v", keys)
	}
}

func TestParseFloat64(t *testing.T) {
	p := Params{"f": "6e9", "d": "", "w": "abc"}
	if v, err := p.ParseFloat64("f", 1); err != nil || v != 6e9 {
		t.Errorf("f = %v, %v", v, err)
	}
	if v, err := p.ParseFloat64("d", 0.005); err != nil || v != 0.005 {
		t.Errorf("空值应返回默认值: %v, %v", v, err)
	}
	if v, err := p.ParseFloat64("l", 10); err != nil || v != 10 {
		t.Errorf("缺省值应返回默认值: %v, %v", v, err)
	}
	if _, err := p.ParseFloat64("w", 0.1); err == nil {
		t.Errorf("非数值应返回错误")
	}
	if s := p.ParseString("x", "Aire"); s != "Aire" {
		t.Errorf("ParseString 默认值 = %q", s)
	}
}
