package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"MobyExport/internal/config"
	"MobyExport/internal/model"

	"github.com/sirupsen/logrus"
)

// Delimiter 导出文件的字段分隔符
const Delimiter = '|'

// invalidFileNameChars 任一常见文件系统中不能出现在文件名里的字符（控制字符另行处理）
const invalidFileNameChars = `<>:"/\|?*`

// Writer 把平台的导出行写成 <平台名>.csv
type Writer struct {
	dir     string
	useCRLF bool
	logger  logrus.FieldLogger
}

// Result 单个文件的写入结果
type Result struct {
	Path    string
	Created bool // false 表示覆盖了已有文件
	Rows    int
}

// Action "Created" 或 "Overwrote"
func (r Result) Action() string {
	if r.Created {
		return "Created"
	}
	return "Overwrote"
}

func NewWriter(cfg *config.ExportConfig, logger logrus.FieldLogger) *Writer {
	dir := cfg.OutputDir
	if dir == "" {
		dir = "."
	}
	return &Writer{dir: dir, useCRLF: cfg.UseCRLF, logger: logger}
}

// WritePlatform 写表头与全部行，已存在的文件直接覆盖；返回前关闭文件
func (w *Writer) WritePlatform(platform model.Platform, rows []model.ExportRow) (Result, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create output dir %s: %w", w.dir, err)
	}

	path := filepath.Join(w.dir, FileName(platform.Name))
	res := Result{Path: path, Rows: len(rows)}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		res.Created = true
	case err != nil:
		return Result{}, fmt.Errorf("stat %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return Result{}, fmt.Errorf("create %s: %w", path, err)
	}

	cw := csv.NewWriter(f)
	cw.Comma = Delimiter
	cw.UseCRLF = w.useCRLF

	if err := cw.Write(model.ExportHeader); err != nil {
		f.Close()
		return Result{}, fmt.Errorf("write header %s: %w", path, err)
	}
	for _, row := range rows {
		if err := cw.Write(row.Record()); err != nil {
			f.Close()
			return Result{}, fmt.Errorf("write row %s: %w", path, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return Result{}, fmt.Errorf("flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return Result{}, fmt.Errorf("close %s: %w", path, err)
	}

	w.logger.WithFields(logrus.Fields{
		"path":    path,
		"rows":    len(rows),
		"created": res.Created,
	}).Debug("导出文件写入完成")
	return res, nil
}

// FileName 平台名 + ".csv"，非法文件名字符替换为 '_'
func FileName(platformName string) string {
	return SanitizeFileName(platformName + ".csv")
}

// SanitizeFileName 把非法文件名字符与控制字符替换为 '_'
func SanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f || strings.ContainsRune(invalidFileNameChars, r) {
			return '_'
		}
		return r
	}, name)
}
