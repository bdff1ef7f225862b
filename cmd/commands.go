package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"MobyExport/internal/adapter/mobygames"
	"MobyExport/internal/config"
	"MobyExport/internal/export"
	"MobyExport/internal/service"
	"MobyExport/internal/utils/throttle"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const missingKeyMessage = "You must specify the MobyGames API key with the -k option, or create a file called mobyapikey.txt containing the key."

// errUsage 参数错误，退出码 2
var errUsage = errors.New("usage error")

// app 一次命令行调用的状态
type app struct {
	stdout io.Writer
	stderr io.Writer

	key       string
	platforms string

	cfg    *config.Config
	logger *logrus.Entry
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "mobyexport",
		Short:         "Export MobyGames game catalogs to pipe-delimited CSV files",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(a.stdout, "Specify a command")
			_ = cmd.Help()
			return errUsage
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", errUsage, err)
	})

	root.PersistentFlags().StringVarP(&a.key, "key", "k", "", "The MobyGames API key")
	root.PersistentFlags().String("out", "", "Directory the CSV files are written to (default \".\")")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default \"warn\")")

	platformsCmd := &cobra.Command{
		Use:   "platforms",
		Short: "List the IDs and names of the available platforms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.exportService()
			if err != nil {
				return err
			}
			return svc.ListPlatforms(cmd.Context())
		},
	}

	gamesCmd := &cobra.Command{
		Use:   "games",
		Short: "Retrieve games belonging to the specified platforms and write them to CSV files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(a.platforms) == "" {
				_ = cmd.Usage()
				return fmt.Errorf("%w: --platforms is required", errUsage)
			}
			svc, err := a.exportService()
			if err != nil {
				return err
			}
			results, err := svc.ExportGames(cmd.Context(), a.platforms)
			if err != nil {
				return err
			}
			a.logger.WithField("files", len(results)).Info("导出完成")
			return nil
		},
	}
	gamesCmd.Flags().StringVarP(&a.platforms, "platforms", "p", "", `A comma-separated list of platform IDs or platform names, or "all"`)

	root.AddCommand(platformsCmd, gamesCmd)
	return root
}

// setup 加载配置并初始化日志
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger := logrus.New()
	logger.SetOutput(a.stderr)
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("%w: invalid log level %q", errUsage, cfg.Log.Level)
	}
	logger.SetLevel(level)
	a.logger = logger.WithField("run_id", uuid.NewString())
	a.logger.WithField("command", cmd.Name()).Debug("配置加载成功")
	return nil
}

// exportService 解析 API key 后组装依赖；缺少 key 时不发起任何请求
func (a *app) exportService() (*service.ExportService, error) {
	apiKey, err := config.ResolveAPIKey(a.key, a.cfg.Moby.KeyFile, a.cfg.Moby.APIKey)
	if err != nil {
		return nil, err
	}

	source := mobygames.NewMobyGamesAdapter(&a.cfg.Moby, apiKey, a.logger)
	limiter := throttle.NewFixedDelay(a.cfg.Moby.RequestInterval)
	sync := service.NewSyncService(source, limiter, a.cfg.Moby.PageSize, a.stdout, a.logger)
	writer := export.NewWriter(&a.cfg.Export, a.logger)
	return service.NewExportService(source, sync, writer, a.stdout, a.logger), nil
}
