package sqlstorage

import (
	"errors"
	"fmt"

	"github.com/Nrich-sunny/reviewcrawler/collector"
	"github.com/Nrich-sunny/reviewcrawler/sqldb"
	"go.uber.org/zap"
)

// SqlStore 把结果分批写入 sqlite，每个字段一列
type SqlStore struct {
	dataDocker []collector.OutputData // 分批输出结果缓存
	db         sqldb.DBer
	created    bool
	options
}

func New(opts ...Option) (*SqlStore, error) {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}
	if options.table == "" || len(options.columns) == 0 {
		return nil, errors.New("table and columns are required")
	}
	s := &SqlStore{}
	s.options = options

	var err error
	s.db, err = sqldb.New(
		sqldb.WithLogger(s.logger),
		sqldb.WithSqlUrl(s.sqlUrl),
	)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", s.sqlUrl, err)
	}
	return s, nil
}

func (s *SqlStore) Save(dataDocker ...collector.OutputData) error {
	if len(dataDocker) == 0 {
		return nil
	}
	if !s.created {
		if err := s.db.CreateTable(s.tableMeta()); err != nil {
			s.logger.Error("create table failed", zap.Error(err))
			return err
		}
		s.created = true
	}
	for _, data := range dataDocker {
		if len(s.dataDocker) >= s.batchCount {
			if err := s.Flush(); err != nil {
				return err
			}
		}
		s.dataDocker = append(s.dataDocker, data)
	}
	return nil
}

// maxVariables sqlite 单条语句允许绑定的参数个数上限
const maxVariables = 32766

// Flush 写入缓存中的数据，一条 INSERT 的参数超过 maxVariables 时拆成多条
func (s *SqlStore) Flush() error {
	if len(s.dataDocker) == 0 {
		return nil
	}
	defer func() {
		s.dataDocker = nil
	}()

	rowsPerInsert := maxVariables / len(s.columns)
	for start := 0; start < len(s.dataDocker); start += rowsPerInsert {
		end := start + rowsPerInsert
		if end > len(s.dataDocker) {
			end = len(s.dataDocker)
		}
		if err := s.insert(s.dataDocker[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func (s *SqlStore) insert(datas []collector.OutputData) error {
	args := make([]interface{}, 0, len(datas)*len(s.columns))
	for _, data := range datas {
		for _, v := range data.Row(s.columns) {
			args = append(args, v)
		}
	}

	meta := s.tableMeta()
	meta.Args = args
	meta.DataCount = len(datas)
	if err := s.db.Insert(meta); err != nil {
		s.logger.Error("insert data failed", zap.Error(err))
		return err
	}
	return nil
}

// Close 写入剩余数据并关闭连接
func (s *SqlStore) Close() error {
	err := s.Flush()
	if cerr := s.db.Close(); err == nil {
		err = cerr
	}
	return err
}

func (s *SqlStore) tableMeta() sqldb.TableMetaData {
	fields := make([]sqldb.Field, len(s.columns))
	for i, c := range s.columns {
		fields[i] = sqldb.Field{Title: c, Type: "TEXT"}
	}
	return sqldb.TableMetaData{
		TableName:   s.table,
		ColumnNames: fields,
		AutoKey:     true,
	}
}
