package load

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"temline"
)

func TestDeck(t *testing.T) {
	in, err := DeckString(`
# 铜板空气线
frequency  6e9
d = 0.005      # 板间距
W 0.1
length 10
conductor  Copper
dielectric Alcohol etílico
`)
	if err != nil {
		t.Fatal(err)
	}
	want := temline.DefaultInput()
	want.Conductor, want.Dielectric = "Copper", "Alcohol etílico"
	if in != want {
		t.Errorf("解析结果 %+v, 期望 %+v", in, want)
	}
	if err := in.Validate(); err != nil {
		t.Errorf("材料名称应能解析: %v", err)
	}
}

func TestDeckDefaults(t *testing.T) {
	in, err := DeckString("f 1e9\n")
	if err != nil {
		t.Fatal(err)
	}
	if in.Frequency != 1e9 || in.Length != temline.DefaultInput().Length {
		t.Errorf("缺省参数未取默认值: %+v", in)
	}
}

func TestDeckErrors(t *testing.T) {
	tests := []struct {
		name, deck, want string
	}{
		{"unknown key", "f 1e9\nvoltage 5\n", "第 2 行"},
		{"missing value", "frequency\n", "缺少值"},
		{"duplicate", "f 1e9\nfrequency 2e9\n", "重复定义"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeckString(tt.deck)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("期望包含 %q 的错误, 实际 %v", tt.want, err)
			}
		})
	}
	if _, err := DeckString("width abc\n"); !errors.Is(err, temline.ErrInvalidInput) {
		t.Errorf("非数值应返回 ErrInvalidInput, 实际 %v", err)
	}
}

func TestDeckFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "line.deck")
	if err := os.WriteFile(name, []byte("conductor Plata\nphase 1.57\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	in, err := DeckFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if in.Conductor != "Plata" || in.Phase != 1.57 {
		t.Errorf("解析结果 %+v", in)
	}
	if _, err := DeckFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Errorf("文件不存在应返回错误")
	}
}
