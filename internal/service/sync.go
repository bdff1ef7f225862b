package service

import (
	"MobyExport/internal/config"
	"context"
	"fmt"
	"io"

	"MobyExport/internal/interfaces"
	"MobyExport/internal/model"

	"github.com/sirupsen/logrus"
)

// SyncService 按平台分页拉取游戏
type SyncService struct {
	source   interfaces.CatalogSource
	limiter  interfaces.Limiter
	pageSize int
	out      io.Writer // 面向用户的进度输出
	logger   logrus.FieldLogger
}

func NewSyncService(source interfaces.CatalogSource, limiter interfaces.Limiter, pageSize int, out io.Writer, logger logrus.FieldLogger) *SyncService {
	if pageSize <= 0 {
		pageSize = config.DefaultPageSize
	}
	return &SyncService{
		source:   source,
		limiter:  limiter,
		pageSize: pageSize,
		out:      out,
		logger:   logger,
	}
}

// FetchPlatformGames 拉取平台全部游戏：每次请求前节流，offset 按页大小递增，
// 返回条数小于页大小（含 0 条）即视为最后一页。
func (s *SyncService) FetchPlatformGames(ctx context.Context, platform model.Platform) ([]model.Game, error) {
	fmt.Fprintf(s.out, "Retrieving games for platform ID %d: %s\n", platform.ID, platform.Name)

	var allGames []model.Game
	offset := 0
	for {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("等待请求间隔被中断: %w", err)
		}

		games, err := s.source.FetchGamesPage(ctx, platform.ID, s.pageSize, offset)
		if err != nil {
			return nil, err
		}
		allGames = append(allGames, games...)

		if len(games) > 0 {
			fmt.Fprintf(s.out, "Retrieved %d games (%d so far)...\n", len(games), len(allGames))
		}

		if len(games) < s.pageSize {
			break
		}
		offset += s.pageSize
	}

	s.logger.WithFields(logrus.Fields{
		"platform_id": platform.ID,
		"games":       len(allGames),
	}).Info("平台游戏拉取完成")
	fmt.Fprintf(s.out, "Done. Retrieved a total of %d games.\n", len(allGames))
	return allGames, nil
}
