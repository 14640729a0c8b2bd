package load

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"temline"
	"temline/utils"
)

// Deck 读取参数文件。
//
// 每行一个参数，格式为 "键 值" 或 "键 = 值"，# 之后为注释：
//
//	# 铜板空气线
//	frequency  6e9
//	d = 0.005
//	conductor  Cobre
//
// 未出现的参数取 temline.DefaultInput 中的值。
func Deck(r io.Reader) (temline.Input, error) {
	params := utils.Params{}
	line := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		var key, value string
		if i := strings.IndexByte(text, '='); i >= 0 {
			key, value = text[:i], text[i+1:]
		} else {
			fields := strings.Fields(text)
			key, value = fields[0], strings.Join(fields[1:], " ")
		}
		key, value = strings.ToLower(strings.TrimSpace(key)), strings.TrimSpace(value)
		canon, ok := temline.CanonicalKey(key)
		if !ok {
			return temline.Input{}, fmt.Errorf("第 %d 行: 未知参数 '%s'", line, key)
		}
		if value == "" {
			return temline.Input{}, fmt.Errorf("第 %d 行: 参数 '%s' 缺少值", line, key)
		}
		if _, dup := params[canon]; dup {
			return temline.Input{}, fmt.Errorf("第 %d 行: 参数 '%s' 重复定义", line, canon)
		}
		params.Set(canon, value)
	}
	if err := scanner.Err(); err != nil {
		return temline.Input{}, err
	}
	return temline.InputFromParams(temline.DefaultInput(), params)
}

// DeckString 从字符串读取参数
func DeckString(s string) (temline.Input, error) { return Deck(strings.NewReader(s)) }

// DeckFile 从文件读取参数
func DeckFile(filename string) (temline.Input, error) {
	file, err := os.Open(filename)
	if err != nil {
		return temline.Input{}, err
	}
	defer file.Close()
	return Deck(file)
}
