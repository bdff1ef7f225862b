package model

// Platform MobyGames 平台（主机/操作系统等）
type Platform struct {
	ID   int    `json:"platform_id"`   // 平台ID
	Name string `json:"platform_name"` // 平台名称
}

// PlatformsResponse GET /platforms 的根响应
type PlatformsResponse struct {
	Platforms []Platform `json:"platforms"`
}
