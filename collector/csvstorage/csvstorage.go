package csvstorage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Nrich-sunny/reviewcrawler/collector"
	"go.uber.org/zap"
)

// TimestampLayout 文件名中的生成时间
const TimestampLayout = "20060102_150405"

// CsvStore 把所有结果写入一个 csv 文件，每个字段都加引号，第一行是列名。
// 没有数据时不创建文件
type CsvStore struct {
	options
	path string
}

func New(opts ...Option) (*CsvStore, error) {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}
	if len(options.columns) == 0 {
		return nil, errors.New("csv columns can not be empty")
	}
	return &CsvStore{options: options}, nil
}

// FileName 例如 commonsense_kahoot_20260210_153000.csv
func (s *CsvStore) FileName() string {
	parts := []string{}
	for _, p := range []string{s.prefix, s.product, s.now().Format(TimestampLayout)} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "_") + ".csv"
}

func (s *CsvStore) Save(datas ...collector.OutputData) error {
	if len(datas) == 0 {
		s.logger.Info("no data to export")
		return nil
	}

	path := filepath.Join(s.dir, s.FileName())
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := writeRow(w, s.columns); err != nil {
		return err
	}
	for _, d := range datas {
		if err := writeRow(w, d.Row(s.columns)); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write csv file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close csv file: %w", err)
	}

	s.path = path
	s.logger.Info("data exported", zap.String("path", path), zap.Int("rows", len(datas)))
	return nil
}

// Path 最近一次写入的文件，没有写过时为空
func (s *CsvStore) Path() string {
	return s.path
}

// writeRow 所有字段都用双引号包裹，字段内的双引号写两遍
func writeRow(w io.Writer, fields []string) error {
	var b strings.Builder
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}
