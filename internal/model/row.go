package model

import "strconv"

// ExportHeader 导出文件的表头（列顺序与 ExportRow.Record 一致）
var ExportHeader = []string{
	"MobyID",
	"Title",
	"FirstReleaseDate",
	"MobyURL",
	"OfficialURL",
	"Genre",
}

// ExportRow 一款游戏在指定平台下的扁平导出行，创建后不再修改
type ExportRow struct {
	MobyID           int
	Title            string
	FirstReleaseDate string  // 解析出的年份，解析失败时为原始字符串
	MobyURL          string
	OfficialURL      string
	Genre            *string // 无类型时为 nil
}

// Record 转为 CSV 字段，nil 类型写空串
func (r ExportRow) Record() []string {
	genre := ""
	if r.Genre != nil {
		genre = *r.Genre
	}
	return []string{
		strconv.Itoa(r.MobyID),
		r.Title,
		r.FirstReleaseDate,
		r.MobyURL,
		r.OfficialURL,
		genre,
	}
}
