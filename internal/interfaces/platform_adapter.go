package interfaces

import (
	"context"

	"MobyExport/internal/model"
)

// CatalogSource 游戏目录数据源（MobyGames API 实现）
type CatalogSource interface {
	// FetchPlatforms 拉取全部平台
	FetchPlatforms(ctx context.Context) ([]model.Platform, error)
	// FetchGamesPage 拉取某平台从 offset 开始的至多 limit 款游戏
	FetchGamesPage(ctx context.Context, platformID, limit, offset int) ([]model.Game, error)
}

// Limiter 请求节流：每次请求前调用 Wait，返回后才允许发出请求
type Limiter interface {
	Wait(ctx context.Context) error
}
