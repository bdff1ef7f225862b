package service

import (
	"errors"
	"fmt"
	"regexp"

	"MobyExport/internal/model"
)

// ErrMissingReleaseEntry 游戏缺少目标平台的发行信息（接口数据不一致）
var ErrMissingReleaseEntry = errors.New("missing platform release entry")

// MissingReleaseError 带游戏与平台信息的 ErrMissingReleaseEntry
type MissingReleaseError struct {
	GameID     int
	PlatformID int
}

func (e *MissingReleaseError) Error() string {
	return fmt.Sprintf("game %d has no release entry for platform %d", e.GameID, e.PlatformID)
}

func (e *MissingReleaseError) Unwrap() error {
	return ErrMissingReleaseEntry
}

// yearPattern 19xx/20xx 四位年份
var yearPattern = regexp.MustCompile(`(19|20)\d{2}`)

// ExtractYear 取第一个 19xx/20xx 年份，找不到时原样返回
func ExtractYear(releaseDate string) string {
	if year := yearPattern.FindString(releaseDate); year != "" {
		return year
	}
	return releaseDate
}

// ProjectRow 把游戏转为目标平台下的导出行
func ProjectRow(game model.Game, platform model.Platform) (model.ExportRow, error) {
	release, ok := findRelease(game.Platforms, platform.ID)
	if !ok {
		return model.ExportRow{}, &MissingReleaseError{GameID: game.ID, PlatformID: platform.ID}
	}

	var genre *string
	if len(game.Genres) > 0 {
		name := game.Genres[0].Name
		genre = &name
	}

	return model.ExportRow{
		MobyID:           game.ID,
		Title:            game.Title,
		FirstReleaseDate: ExtractYear(release.FirstReleaseDate),
		MobyURL:          game.MobyURL,
		OfficialURL:      game.OfficialURL,
		Genre:            genre,
	}, nil
}

// ProjectRows 批量转换，任一游戏失败即返回
func ProjectRows(games []model.Game, platform model.Platform) ([]model.ExportRow, error) {
	rows := make([]model.ExportRow, 0, len(games))
	for _, g := range games {
		row, err := ProjectRow(g, platform)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func findRelease(releases []model.PlatformRelease, platformID int) (model.PlatformRelease, bool) {
	for _, r := range releases {
		if r.PlatformID == platformID {
			return r, true
		}
	}
	return model.PlatformRelease{}, false
}
