package model

// Genre 游戏类型条目，导出时只用第一条的 Name
type Genre struct {
	Category   string `json:"genre_category"`    // 类型分类（如 Basic Genres）
	CategoryID int    `json:"genre_category_id"` // 分类ID
	ID         int    `json:"genre_id"`          // 类型ID
	Name       string `json:"genre_name"`        // 类型名称
}

// PlatformRelease 游戏在某一平台上的发行信息
type PlatformRelease struct {
	PlatformID       int    `json:"platform_id"`
	PlatformName     string `json:"platform_name"`
	FirstReleaseDate string `json:"first_release_date"` // 自由文本，如 "1994"、"Mar, 1994"、"1994-03-15"
}

// Game GET /games?format=normal 返回的单条游戏
type Game struct {
	ID          int               `json:"game_id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	MobyScore   float64           `json:"moby_score"`
	MobyURL     string            `json:"moby_url"`
	OfficialURL string            `json:"official_url"`
	NumVotes    int               `json:"num_votes"`
	Genres      []Genre           `json:"genres"`
	Platforms   []PlatformRelease `json:"platforms"` // 每个发行平台一条
}

// GamesResponse GET /games 的根响应
type GamesResponse struct {
	Games []Game `json:"games"`
}
