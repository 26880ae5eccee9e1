// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/artifactory-ops/storage-monitor/internal/config"
	"github.com/artifactory-ops/storage-monitor/internal/gateway"
	"github.com/artifactory-ops/storage-monitor/internal/log"
	"github.com/artifactory-ops/storage-monitor/internal/report"
	"github.com/artifactory-ops/storage-monitor/internal/usecase"
)

const defaultTimeoutSeconds = 30

var usageCmd = &cobra.Command{
	Use:   "usage [project]",
	Short: "Reports per-project storage usage against quotas",
	Long: `Reports every Artifactory project's storage consumption against its
quota, or a single project's when a project key or display name is given.

颜色说明:
  🟢 绿色: 使用率 <= 80% (正常)
  🟡 黄色: 使用率 > 80% (警告)
  🔴 红色: 使用率 > 90% (危险)

Examples:
  # 查看所有项目
  storage-monitor usage --url http://artifactory.example.com --token YOUR_TOKEN

  # 查看特定项目详情
  storage-monitor usage project1 --url http://artifactory.example.com --token YOUR_TOKEN

  # 查看所有项目并显示详细信息
  storage-monitor usage --url http://artifactory.example.com --token YOUR_TOKEN --details`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// Get the verbose flag from the root command to set up the logger.
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		if verbose {
			log.SetDebugMode()
		}
		logger := log.Logger

		baseURL, token, timeout := resolveConnection(cmd)
		showDetails, _ := cmd.Flags().GetBool("details")

		fmt.Printf("连接至: %s\n", baseURL)

		artifactoryGateway := gateway.NewArtifactoryGateway(baseURL, token, timeout, logger)

		fmt.Print("测试认证连接... ")
		if !artifactoryGateway.CheckAuth(ctx) {
			fmt.Println("失败!")
			fmt.Fprintln(os.Stderr, "认证失败: 无法连接到Artifactory或认证信息无效")
			fmt.Fprintln(os.Stderr, "请检查:")
			fmt.Fprintln(os.Stderr, "  1. Artifactory地址是否正确")
			fmt.Fprintln(os.Stderr, "  2. Token是否有效")
			fmt.Fprintln(os.Stderr, "  3. 网络连接是否正常")
			os.Exit(1)
		}
		fmt.Println("成功!")

		aggregator := usecase.NewAggregator(artifactoryGateway, logger)

		fmt.Print("获取项目和存储信息... ")
		snap, err := aggregator.FetchSnapshot(ctx)
		if err != nil {
			fmt.Println("失败!")
			printFetchError(err)
			os.Exit(1)
		}
		fmt.Printf("找到 %d 个项目\n", len(snap.Projects))

		fmt.Print(report.Header(baseURL))

		if len(args) == 1 {
			printSingleProject(snap, args[0])
			return
		}
		printAllProjects(snap, showDetails)
	},
}

func init() {
	rootCmd.AddCommand(usageCmd)
	usageCmd.Flags().String("url", "", "Artifactory base URL (or ARTIFACTORY_URL)")
	usageCmd.Flags().String("token", "", "Bearer token (or ARTIFACTORY_TOKEN)")
	usageCmd.Flags().String("config", "", "Optional YAML config file with url/token/timeout")
	usageCmd.Flags().BoolP("details", "d", false, "Show the per-repository breakdown")
	usageCmd.Flags().Int("timeout", defaultTimeoutSeconds, "HTTP timeout in seconds")
}

// resolveConnection merges flag, environment, and config-file settings,
// in that order of precedence, and exits when url or token is missing.
func resolveConnection(cmd *cobra.Command) (baseURL, token string, timeout time.Duration) {
	baseURL, _ = cmd.Flags().GetString("url")
	token, _ = cmd.Flags().GetString("token")
	timeoutSeconds, _ := cmd.Flags().GetInt("timeout")

	var fileCfg *config.Config
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		var err error
		fileCfg, err = config.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "读取配置文件失败: %v\n", err)
			os.Exit(1)
		}
	}

	if baseURL == "" {
		baseURL = os.Getenv("ARTIFACTORY_URL")
	}
	if token == "" {
		token = os.Getenv("ARTIFACTORY_TOKEN")
	}
	if fileCfg != nil {
		if baseURL == "" {
			baseURL = fileCfg.URL
		}
		if token == "" {
			token = fileCfg.Token
		}
		if !cmd.Flags().Changed("timeout") && fileCfg.Timeout > 0 {
			timeoutSeconds = fileCfg.Timeout
		}
	}

	if baseURL == "" || token == "" {
		fmt.Fprintln(os.Stderr, "错误: 缺少 Artifactory 地址或 Token")
		fmt.Fprintln(os.Stderr, "请通过 --url/--token 参数、ARTIFACTORY_URL/ARTIFACTORY_TOKEN 环境变量或 --config 配置文件提供")
		os.Exit(1)
	}

	return baseURL, token, time.Duration(timeoutSeconds) * time.Second
}

// printFetchError maps gateway sentinel errors to the user-facing
// messages; anything else prints wrapped.
func printFetchError(err error) {
	switch {
	case errors.Is(err, gateway.ErrAuthFailed):
		fmt.Fprintln(os.Stderr, "认证失败: 令牌无效或已过期")
		fmt.Fprintln(os.Stderr, "请检查您的认证信息并重新运行")
	case errors.Is(err, gateway.ErrPermissionDenied):
		fmt.Fprintln(os.Stderr, "权限不足: 当前用户没有访问项目的权限")
	case errors.Is(err, gateway.ErrEndpointMissing):
		fmt.Fprintln(os.Stderr, "API端点不存在: 请检查Artifactory版本是否支持项目功能")
	default:
		fmt.Fprintf(os.Stderr, "获取数据失败: %v\n", err)
	}
}

// printSingleProject renders one project with details forced on. An
// unknown selector lists every known project key as a hint.
func printSingleProject(snap *usecase.Snapshot, selector string) {
	project, err := snap.FindProject(selector)
	if err != nil {
		var notFound *usecase.NotFoundError
		if errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "错误: 未找到项目 '%s'\n", notFound.Selector)
			fmt.Fprintf(os.Stderr, "可用项目: %v\n", notFound.KnownKeys)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}

	usage := usecase.ComputeUsage(project.Key, snap.Records)
	fmt.Print(report.RenderProject(project, usage, true))
}

// printAllProjects renders every project in list order, then the
// aggregate summary over the whole set.
func printAllProjects(snap *usecase.Snapshot, showDetails bool) {
	fmt.Println("项目列表:")

	var limitedPercents []float64
	for _, project := range snap.Projects {
		usage := usecase.ComputeUsage(project.Key, snap.Records)
		if percent, limited := report.UsagePercent(project, usage); limited {
			limitedPercents = append(limitedPercents, percent)
		}
		fmt.Print(report.RenderProject(project, usage, showDetails))
	}

	fmt.Print(report.RenderSummary(snap.Projects, limitedPercents))
}
