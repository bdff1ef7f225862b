package mobygames

import (
	"MobyExport/internal/config"
	"MobyExport/internal/utils/httpclient"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"MobyExport/internal/interfaces"
	"MobyExport/internal/model"

	"github.com/sirupsen/logrus"
	"github.com/sonh/qs"
)

// maxErrorBody 非 2xx 响应体最多保留的字节数
const maxErrorBody = 512

type Adapter struct {
	cfg        *config.MobyConfig
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     logrus.FieldLogger
}

var _ interfaces.CatalogSource = (*Adapter)(nil)

func NewMobyGamesAdapter(cfg *config.MobyConfig, apiKey string, logger logrus.FieldLogger) *Adapter {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}
	return &Adapter{
		cfg:        cfg,
		apiKey:     apiKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpclient.NewHTTPClient(cfg, logger),
		logger:     logger,
	}
}

// FetchPlatforms 拉取 MobyGames 全部平台（按接口返回顺序）
func (m *Adapter) FetchPlatforms(ctx context.Context) ([]model.Platform, error) {
	var resp model.PlatformsResponse
	if err := m.get(ctx, endpointPlatforms, PlatformsQuery{APIKey: m.apiKey}, &resp); err != nil {
		return nil, fmt.Errorf("获取平台列表失败: %w", err)
	}
	if resp.Platforms == nil {
		return nil, fmt.Errorf("获取平台列表失败: %w: 响应缺少 platforms 字段", ErrDecode)
	}

	m.logger.WithField("count", len(resp.Platforms)).Debug("平台列表拉取完成")
	return resp.Platforms, nil
}

// FetchGamesPage 拉取某平台的一页游戏
func (m *Adapter) FetchGamesPage(ctx context.Context, platformID, limit, offset int) ([]model.Game, error) {
	query := GamesQuery{
		Format:     gamesFormatNormal,
		PlatformID: platformID,
		Limit:      limit,
		Offset:     offset,
		APIKey:     m.apiKey,
	}

	var resp model.GamesResponse
	if err := m.get(ctx, endpointGames, query, &resp); err != nil {
		return nil, fmt.Errorf("获取平台%d游戏失败(offset=%d): %w", platformID, offset, err)
	}
	if resp.Games == nil {
		return nil, fmt.Errorf("获取平台%d游戏失败(offset=%d): %w: 响应缺少 games 字段", platformID, offset, ErrDecode)
	}

	m.logger.WithFields(logrus.Fields{
		"platform_id": platformID,
		"offset":      offset,
		"limit":       limit,
		"count":       len(resp.Games),
	}).Debug("游戏分页拉取完成")
	return resp.Games, nil
}

// get 发起 GET 请求并把 JSON 响应解码到 result
func (m *Adapter) get(ctx context.Context, path string, query any, result any) error {
	values, err := qs.NewEncoder().Values(query)
	if err != nil {
		return fmt.Errorf("编码查询参数失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: 创建请求失败: %w", ErrNetwork, err)
	}
	req.URL.RawQuery = values.Encode()
	req.Header.Set("Accept", "application/json")

	// 日志中不输出 api_key
	m.logger.WithField("path", path).Debug("请求MobyGames")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNetwork, redactKey(err, m.apiKey))
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			m.logger.Errorf("关闭MobyGames响应体失败: %v", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

// redactKey 去掉 url.Error 中携带的 api_key
func redactKey(err error, apiKey string) error {
	if apiKey == "" || !strings.Contains(err.Error(), apiKey) {
		return err
	}
	return &redactedError{msg: strings.ReplaceAll(err.Error(), apiKey, "REDACTED"), err: err}
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }

func (e *redactedError) Unwrap() error { return e.err }
