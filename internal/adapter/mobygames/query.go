package mobygames

const (
	endpointPlatforms = "/platforms"
	endpointGames     = "/games"

	// gamesFormatNormal 包含 genres 与 platforms 的返回格式
	gamesFormatNormal = "normal"
)

// PlatformsQuery GET /platforms 的查询参数
type PlatformsQuery struct {
	APIKey string `qs:"api_key"`
}

// GamesQuery GET /games 的查询参数
type GamesQuery struct {
	Format     string `qs:"format"`
	PlatformID int    `qs:"platform"`
	Limit      int    `qs:"limit"`
	Offset     int    `qs:"offset"`
	APIKey     string `qs:"api_key"`
}
