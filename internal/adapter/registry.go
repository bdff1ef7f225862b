package adapter

import (
	"fmt"
	"strconv"
	"strings"

	"MobyExport/internal/model"

	"golang.org/x/text/cases"
)

// SelectAll 选择全部平台的关键字（不区分大小写）
const SelectAll = "all"

// PlatformRegistry 一次运行内拉取到的平台表，构建后只读
type PlatformRegistry struct {
	platforms []model.Platform
	byID      map[int]model.Platform
	byName    map[string]model.Platform // key 为 case-fold 后的名称
}

// NewPlatformRegistry 按接口返回顺序构建平台表；重复的 ID/名称保留第一条
func NewPlatformRegistry(platforms []model.Platform) *PlatformRegistry {
	r := &PlatformRegistry{
		platforms: append([]model.Platform(nil), platforms...),
		byID:      make(map[int]model.Platform, len(platforms)),
		byName:    make(map[string]model.Platform, len(platforms)),
	}
	for _, p := range r.platforms {
		if _, ok := r.byID[p.ID]; !ok {
			r.byID[p.ID] = p
		}
		key := nameKey(p.Name)
		if _, ok := r.byName[key]; !ok {
			r.byName[key] = p
		}
	}
	return r
}

// All 返回全部平台（接口顺序的副本）
func (r *PlatformRegistry) All() []model.Platform {
	return append([]model.Platform(nil), r.platforms...)
}

// Len 平台数量
func (r *PlatformRegistry) Len() int {
	return len(r.platforms)
}

// ByID 按平台ID查找
func (r *PlatformRegistry) ByID(id int) (model.Platform, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// ByName 按平台名称查找（不区分大小写的完全匹配）
func (r *PlatformRegistry) ByName(name string) (model.Platform, bool) {
	p, ok := r.byName[nameKey(name)]
	return p, ok
}

// UnrecognizedPlatformError 无法识别的平台ID或名称，调用方提示后跳过
type UnrecognizedPlatformError struct {
	Token string
	IsID  bool
}

// Kind "ID" 或 "name"
func (e *UnrecognizedPlatformError) Kind() string {
	if e.IsID {
		return "ID"
	}
	return "name"
}

func (e *UnrecognizedPlatformError) Error() string {
	return fmt.Sprintf("unrecognized platform %s: %s", e.Kind(), e.Token)
}

// Selection 平台选择结果
type Selection struct {
	Platforms []model.Platform             // 按输入顺序，允许重复
	Skipped   []*UnrecognizedPlatformError // 被跳过的输入
}

// Resolve 解析 "all" 或逗号分隔的平台ID/名称列表。
// 纯数字按ID查找，否则按名称查找；无法识别的项记入 Skipped，不中断解析。
func (r *PlatformRegistry) Resolve(selector string) Selection {
	if strings.EqualFold(strings.TrimSpace(selector), SelectAll) {
		return Selection{Platforms: r.All()}
	}

	var sel Selection
	for _, token := range strings.Split(selector, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if id, err := strconv.Atoi(token); err == nil {
			if p, ok := r.ByID(id); ok {
				sel.Platforms = append(sel.Platforms, p)
			} else {
				sel.Skipped = append(sel.Skipped, &UnrecognizedPlatformError{Token: strconv.Itoa(id), IsID: true})
			}
			continue
		}

		if p, ok := r.ByName(token); ok {
			sel.Platforms = append(sel.Platforms, p)
		} else {
			sel.Skipped = append(sel.Skipped, &UnrecognizedPlatformError{Token: token})
		}
	}
	return sel
}

func nameKey(name string) string {
	return cases.Fold().String(name)
}
