package collect

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Nrich-sunny/reviewcrawler/collect"
	"github.com/Nrich-sunny/reviewcrawler/collector"
	"github.com/Nrich-sunny/reviewcrawler/collector/csvstorage"
	"github.com/Nrich-sunny/reviewcrawler/collector/sqlstorage"
	"github.com/Nrich-sunny/reviewcrawler/engine"
	"github.com/Nrich-sunny/reviewcrawler/extract"
	"github.com/Nrich-sunny/reviewcrawler/limiter"
	"github.com/Nrich-sunny/reviewcrawler/log"
	"github.com/Nrich-sunny/reviewcrawler/parse/commonsense"
	"github.com/Nrich-sunny/reviewcrawler/proxy"
	"github.com/Nrich-sunny/reviewcrawler/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var ErrNoRecords = errors.New("no reviews collected")

var CollectCmd = &cobra.Command{
	Use:   "collect",
	Short: "fetch review pages and export them to csv.",
	Long:  "fetch every review url listed in the input file, extract the review fields and export them to csv.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := LoadSettings(configPath, cmd.Flags().Changed("config"))
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("product") {
			s.Product = product
		}
		if cmd.Flags().Changed("input") {
			s.Input = input
		}
		if cmd.Flags().Changed("out") {
			s.OutputDir = outputDir
		}
		if cmd.Flags().Changed("log-level") {
			s.LogLevel = logLevel
		}

		logger, closer, err := NewLogger(s)
		if err != nil {
			return err
		}
		defer closer()
		// 设置 zap 全局 logger
		zap.ReplaceGlobals(logger)

		return Run(cmd.Context(), s, logger, cmd.OutOrStdout())
	},
}

var (
	configPath string
	product    string
	input      string
	outputDir  string
	logLevel   string
)

func init() {
	CollectCmd.Flags().StringVar(&configPath, "config", "config.toml", "set config file")
	CollectCmd.Flags().StringVar(&product, "product", "", "set product name, used for input and output file names")
	CollectCmd.Flags().StringVar(&input, "input", "", "set url list file, default <product>_review_urls.txt")
	CollectCmd.Flags().StringVar(&outputDir, "out", "", "set output directory")
	CollectCmd.Flags().StringVar(&logLevel, "log-level", "", "set log level")
}

// NewLogger 标准输出，配置了 logFile 时同时写文件
func NewLogger(s Settings) (*zap.Logger, func(), error) {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	plugin := log.NewStdoutPlugin(level)
	closer := func() {}
	if s.LogFile != "" {
		filePlugin, c := log.NewFilePlugin(s.LogFile, level)
		plugin = log.NewTeePlugin(plugin, filePlugin)
		closer = func() { c.Close() }
	}
	logger := log.NewLogger(plugin)
	return logger, func() {
		_ = logger.Sync()
		closer()
	}, nil
}

func Run(ctx context.Context, s Settings, logger *zap.Logger, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger.Info("collect start", zap.String("product", s.Product))

	inputPath := s.InputPath()
	urls, err := collect.LoadLocators(inputPath)
	if err != nil {
		logger.Error("load urls failed", zap.String("input", inputPath), zap.Error(err))
		if errors.Is(err, collect.ErrNoLocators) {
			fmt.Fprintf(out, "No URLs found!\nCreate a file named: %s\nAdd one URL per line.\n", inputPath)
			fmt.Fprintln(out, "Use the harvest command to extract URLs from a saved search results page.")
		}
		return err
	}
	logger.Info("urls loaded", zap.String("input", inputPath), zap.Int("count", len(urls)))

	p, err := proxy.RoundRobinProxySwitcher(s.Proxy...)
	if err != nil {
		logger.Error("RoundRobinProxySwitcher failed", zap.Error(err))
		return err
	}

	var fetcher collect.Fetcher = &collect.BrowserFetch{
		Timeout:   s.Timeout,
		UserAgent: s.UserAgent,
		Proxy:     p,
		Logger:    logger.Named("fetcher"),
	}

	extractor := extract.New(
		extract.WithMarkers(s.Markers...),
		extract.WithLogger(logger.Named("extract")),
	)
	task := commonsense.NewReviewTask(
		s.Product,
		urls,
		commonsense.NewParser(extractor, logger.Named("commonsense")),
		collect.WithWaitTime(s.WaitTime),
		collect.WithLimit(limiter.FromConfig(s.Limits)),
		collect.WithLogger(logger),
	)

	crawler := engine.NewEngine(
		engine.WithFetcher(fetcher),
		engine.WithLogger(logger.Named("engine")),
		engine.WithSeeds([]*collect.Task{task}),
		engine.WithScheduler(engine.NewSchedule()),
	)
	items := crawler.Run(ctx)
	if len(items) == 0 {
		logger.Warn("no reviews collected, nothing exported")
		fmt.Fprintln(out, "No reviews collected. Check URLs and try again.")
		return ErrNoRecords
	}

	csvStore, err := csvstorage.New(
		csvstorage.WithDir(s.OutputDir),
		csvstorage.WithProduct(s.Product),
		csvstorage.WithColumns(commonsense.ItemFields...),
		csvstorage.WithLogger(logger.Named("csv")),
	)
	if err != nil {
		return err
	}
	stores := []collector.Store{csvStore}

	var sqlStore *sqlstorage.SqlStore
	if s.SqlUrl != "" {
		sqlStore, err = sqlstorage.New(
			sqlstorage.WithSqlUrl(s.SqlUrl),
			sqlstorage.WithLogger(logger.Named("sqlDB")),
			sqlstorage.WithBatchCount(s.BatchCount),
			sqlstorage.WithTable(tableName(s.Product)),
			sqlstorage.WithColumns(commonsense.ItemFields...),
		)
		if err != nil {
			logger.Error("create sqlstorage failed", zap.Error(err))
			return err
		}
		defer func() {
			if err := sqlStore.Close(); err != nil {
				logger.Error("close sqlstorage failed", zap.Error(err))
			}
		}()
		stores = append(stores, sqlStore)
	}

	for _, store := range stores {
		if err := store.Save(items...); err != nil {
			return fmt.Errorf("save reviews: %w", err)
		}
	}
	// sqlstorage 只缓存不足一批的数据，这里必须写完再输出结果
	if sqlStore != nil {
		if err := sqlStore.Flush(); err != nil {
			return fmt.Errorf("save reviews: %w", err)
		}
	}

	report.Summarize(s.Product, csvStore.Path(), items).Render(out)
	return nil
}

func tableName(product string) string {
	if product == "" {
		return "reviews"
	}
	return "reviews_" + product
}
