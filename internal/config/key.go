package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// DefaultKeyFile 工作目录下的 API key 文件
const DefaultKeyFile = "mobyapikey.txt"

// ErrMissingAPIKey 参数、key 文件、环境变量均未提供 API key
var ErrMissingAPIKey = errors.New("missing MobyGames API key")

// ResolveAPIKey 按 参数 > key 文件 > 环境变量 的顺序取 API key。
// key 文件取去除首尾空白后的全部内容，空文件视为未提供。
func ResolveAPIKey(flagValue, keyFile, envValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	if keyFile != "" {
		data, err := os.ReadFile(keyFile)
		switch {
		case err == nil:
			if key := strings.TrimSpace(string(data)); key != "" {
				return key, nil
			}
		case !errors.Is(err, os.ErrNotExist):
			return "", fmt.Errorf("读取key文件%s失败: %w", keyFile, err)
		}
	}

	if envValue != "" {
		return envValue, nil
	}
	return "", ErrMissingAPIKey
}
