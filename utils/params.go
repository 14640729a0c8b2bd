package utils

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Params 参数表，键统一为小写
type Params map[string]string

// FromValues 由查询参数构建，每个键只取首个值
func FromValues(values url.Values) Params {
	p := make(Params, len(values))
	for k, v := range values {
		if len(v) > 0 {
			p.Set(k, v[0])
		}
	}
	return p
}

// Set 设置参数值
func (p Params) Set(key, value string) {
	p[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
}

// Keys 返回排序后的键列表
func (p Params) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ParseFloat64 解析64位浮点数，键不存在或为空时返回默认值
func (p Params) ParseFloat64(key string, defaultValue float64) (float64, error) {
	s, ok := p[key]
	if !ok || s == "" {
		return defaultValue, nil
	}
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return defaultValue, fmt.Errorf("参数 %s 不是有效数值: '%s'", key, s)
	}
	return val, nil
}

// ParseString 安全获取字符串
func (p Params) ParseString(key string, defaultValue string) string {
	if s, ok := p[key]; ok && s != "" {
		return s
	}
	return defaultValue
}
