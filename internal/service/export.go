package service

import (
	"context"
	"fmt"
	"io"

	"MobyExport/internal/adapter"
	"MobyExport/internal/export"
	"MobyExport/internal/interfaces"
	"MobyExport/internal/model"

	"github.com/sirupsen/logrus"
)

// ExportService platforms / games 两个命令的业务编排
type ExportService struct {
	source interfaces.CatalogSource
	sync   *SyncService
	writer *export.Writer
	out    io.Writer
	logger logrus.FieldLogger
}

func NewExportService(source interfaces.CatalogSource, sync *SyncService, writer *export.Writer, out io.Writer, logger logrus.FieldLogger) *ExportService {
	return &ExportService{
		source: source,
		sync:   sync,
		writer: writer,
		out:    out,
		logger: logger,
	}
}

// LoadRegistry 拉取平台列表并构建平台表
func (s *ExportService) LoadRegistry(ctx context.Context) (*adapter.PlatformRegistry, error) {
	fmt.Fprintln(s.out, "Retrieving platforms...")
	platforms, err := s.source.FetchPlatforms(ctx)
	if err != nil {
		return nil, err
	}
	registry := adapter.NewPlatformRegistry(platforms)
	fmt.Fprintf(s.out, "Retrieved %d platforms.\n", registry.Len())
	return registry, nil
}

// ListPlatforms 逐行输出 "<id>: <name>"
func (s *ExportService) ListPlatforms(ctx context.Context) error {
	registry, err := s.LoadRegistry(ctx)
	if err != nil {
		return err
	}
	for _, p := range registry.All() {
		fmt.Fprintf(s.out, "%d: %s\n", p.ID, p.Name)
	}
	return nil
}

// ExportGames 解析平台选择，逐个平台 拉取 → 转换 → 写文件
func (s *ExportService) ExportGames(ctx context.Context, selector string) ([]export.Result, error) {
	registry, err := s.LoadRegistry(ctx)
	if err != nil {
		return nil, err
	}

	sel := registry.Resolve(selector)
	for _, skipped := range sel.Skipped {
		fmt.Fprintf(s.out, "Unrecognized platform %s: %s. Ignoring.\n", skipped.Kind(), skipped.Token)
		s.logger.WithField("token", skipped.Token).Warn("无法识别的平台，已跳过")
	}
	if len(sel.Platforms) == 0 {
		s.logger.WithField("platforms", selector).Warn("没有可导出的平台")
	}

	results := make([]export.Result, 0, len(sel.Platforms))
	for _, platform := range sel.Platforms {
		res, err := s.exportPlatform(ctx, platform)
		if err != nil {
			return results, fmt.Errorf("导出平台%d(%s)失败: %w", platform.ID, platform.Name, err)
		}
		results = append(results, res)
	}
	return results, nil
}

func (s *ExportService) exportPlatform(ctx context.Context, platform model.Platform) (export.Result, error) {
	games, err := s.sync.FetchPlatformGames(ctx, platform)
	if err != nil {
		return export.Result{}, err
	}

	rows, err := ProjectRows(games, platform)
	if err != nil {
		return export.Result{}, err
	}

	res, err := s.writer.WritePlatform(platform, rows)
	if err != nil {
		return export.Result{}, err
	}
	fmt.Fprintf(s.out, "%s %s\n", res.Action(), res.Path)
	return res, nil
}
