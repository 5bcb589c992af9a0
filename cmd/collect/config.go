package collect

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Nrich-sunny/reviewcrawler/collect"
	"github.com/Nrich-sunny/reviewcrawler/extract"
	"github.com/Nrich-sunny/reviewcrawler/limiter"
	"github.com/go-micro/plugins/v4/config/encoder/toml"
	"go-micro.dev/v4/config"
	"go-micro.dev/v4/config/reader"
	"go-micro.dev/v4/config/reader/json"
	"go-micro.dev/v4/config/source"
	"go-micro.dev/v4/config/source/file"
)

// Settings 一次运行需要的全部配置
type Settings struct {
	LogLevel   string
	LogFile    string
	Product    string
	Input      string
	Timeout    time.Duration
	UserAgent  string
	Proxy      []string
	WaitTime   time.Duration
	Limits     []limiter.LimitConfig
	Markers    []string
	OutputDir  string
	SqlUrl     string
	BatchCount int
}

func DefaultSettings() Settings {
	return Settings{
		LogLevel:   "INFO",
		Timeout:    30 * time.Second,
		UserAgent:  collect.DefaultUserAgent,
		WaitTime:   2 * time.Second,
		Markers:    []string{extract.DefaultMarker},
		OutputDir:  ".",
		BatchCount: 50,
	}
}

// InputPath 没有指定输入文件时使用 <product>_review_urls.txt
func (s Settings) InputPath() string {
	if s.Input != "" {
		return s.Input
	}
	return s.Product + "_review_urls.txt"
}

// LoadSettings 读取 toml 配置文件。required 为 false 时文件不存在不算错误
func LoadSettings(path string, required bool) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return s, nil
		}
		return s, err
	}

	enc := toml.NewEncoder()
	cfg, err := config.NewConfig(config.WithReader(json.NewReader(reader.WithEncoder(enc))))
	if err != nil {
		return s, err
	}
	defer cfg.Close()
	err = cfg.Load(file.NewSource(
		file.WithPath(path),
		source.WithEncoder(enc),
	))
	if err != nil {
		return s, fmt.Errorf("load config %s: %w", path, err)
	}

	s.LogLevel = cfg.Get("logLevel").String(s.LogLevel)
	s.LogFile = cfg.Get("logFile").String(s.LogFile)
	s.Product = cfg.Get("product").String(s.Product)
	s.Input = cfg.Get("input").String(s.Input)

	s.Timeout = time.Duration(cfg.Get("fetcher", "timeout").Int(int(s.Timeout/time.Millisecond))) * time.Millisecond
	s.UserAgent = cfg.Get("fetcher", "userAgent").String(s.UserAgent)
	s.Proxy = cfg.Get("fetcher", "proxy").StringSlice(s.Proxy)

	s.WaitTime = time.Duration(cfg.Get("collect", "waitTime").Int(int(s.WaitTime/time.Millisecond))) * time.Millisecond
	if err := cfg.Get("collect", "limits").Scan(&s.Limits); err != nil {
		return s, fmt.Errorf("scan limits: %w", err)
	}

	s.Markers = cfg.Get("extract", "markers").StringSlice(s.Markers)

	s.OutputDir = cfg.Get("storage", "outputDir").String(s.OutputDir)
	s.SqlUrl = cfg.Get("storage", "sqlUrl").String(s.SqlUrl)
	s.BatchCount = cfg.Get("storage", "batchCount").Int(s.BatchCount)

	return s, nil
}
