package material

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

// ErrUnknown 材料名称未在目录中登记
var ErrUnknown = errors.New("未知材料")

// Conductor 导体板材料
type Conductor struct {
	Name         string  `json:"name"`         // 目录名称
	Conductivity float64 `json:"conductivity"` // 电导率 σ (S/m)
	Permeability float64 `json:"permeability"` // 相对磁导率 μr
}

// Dielectric 板间介质材料
type Dielectric struct {
	Name         string  `json:"name"`         // 目录名称
	LossTangent  float64 `json:"lossTangent"`  // 损耗角正切 tanδ
	Permeability float64 `json:"permeability"` // 相对磁导率 μr
	Permittivity float64 `json:"permittivity"` // 相对介电常数 εr
}

// catalog 有序材料表，按名称和别名索引
type catalog[T any] struct {
	kind  string
	list  []T
	index map[string]int
}

func newCatalog[T any](kind string) *catalog[T] {
	return &catalog[T]{kind: kind, index: map[string]int{}}
}

// add 登记材料，名称或别名重复时终止程序
func (c *catalog[T]) add(name string, value T, alias ...string) {
	id := len(c.list)
	for _, n := range append([]string{name}, alias...) {
		key := normalize(n)
		if _, ok := c.index[key]; ok {
			log.Fatalf("%s重复注册: %s", c.kind, n)
		}
		c.index[key] = id
	}
	c.list = append(c.list, value)
}

func (c *catalog[T]) lookup(name string) (T, error) {
	if id, ok := c.index[normalize(name)]; ok {
		return c.list[id], nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %s '%s'", ErrUnknown, c.kind, name)
}

func (c *catalog[T]) all() []T { return append([]T(nil), c.list...) }

// normalize 名称比较忽略大小写、首尾空白，空格与下划线等价
func normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

var (
	conductors  = newCatalog[Conductor]("导体")
	dielectrics = newCatalog[Dielectric]("介质")
)

// addConductor 登记导体，σ 必须为正 (+Inf 为理想导体)
func addConductor(name string, sigma, mur float64, alias ...string) {
	if !(sigma > 0) {
		log.Fatalf("导体 %s 电导率必须为正: %v", name, sigma)
	}
	conductors.add(name, Conductor{Name: name, Conductivity: sigma, Permeability: mur}, alias...)
}

func addDielectric(name string, tanDelta, mur, er float64, alias ...string) {
	dielectrics.add(name, Dielectric{Name: name, LossTangent: tanDelta, Permeability: mur, Permittivity: er}, alias...)
}

// Conductors 按目录顺序返回全部导体
func Conductors() []Conductor { return conductors.all() }

// Dielectrics 按目录顺序返回全部介质
func Dielectrics() []Dielectric { return dielectrics.all() }

// LookupConductor 按名称或英文别名查找导体
func LookupConductor(name string) (Conductor, error) { return conductors.lookup(name) }

// LookupDielectric 按名称或英文别名查找介质
func LookupDielectric(name string) (Dielectric, error) { return dielectrics.lookup(name) }
