package sqldb

/** 底层模块，只负责数据的存储
**	使用 modernc.org/sqlite 驱动，拼接原生 SQL 与数据库交互
 */

import (
	"database/sql"
	"errors"
	"strings"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// DBer 数据库的接口
type DBer interface {
	CreateTable(t TableMetaData) error
	Insert(t TableMetaData) error
	Close() error
}

// Sqldb : DBer 的实现
type Sqldb struct {
	options
	db *sql.DB
}

func New(opts ...Option) (*Sqldb, error) {
	options := defaultOptions
	for _, opt := range opts {
		opt(&options)
	}
	d := &Sqldb{}
	d.options = options
	if err := d.OpenDB(); err != nil {
		return nil, err
	}
	return d, nil
}

// OpenDB sqlUrl 为 sqlite 的文件路径或 DSN
func (d *Sqldb) OpenDB() error {
	if d.sqlUrl == "" {
		return errors.New("empty sql url")
	}
	db, err := sql.Open("sqlite", d.sqlUrl)
	if err != nil {
		return err
	}
	// sqlite 单写者
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		db.Close()
		return err
	}
	d.db = db
	return nil
}

func (d *Sqldb) DB() *sql.DB {
	return d.db
}

func (d *Sqldb) Close() error {
	return d.db.Close()
}

type Field struct {
	Title string // 字段名
	Type  string // 字段类型
}

type TableMetaData struct {
	TableName   string
	ColumnNames []Field       // 标题字段
	Args        []interface{} // 要插入的数据
	DataCount   int           // 插入数据的数量
	AutoKey     bool          // 是否创建自增主键
}

func quote(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// CreateTable 拼接建表语句
func (d *Sqldb) CreateTable(t TableMetaData) error {
	if len(t.ColumnNames) == 0 {
		return errors.New("column can not be empty")
	}

	cols := make([]string, 0, len(t.ColumnNames)+1)
	if t.AutoKey {
		cols = append(cols, `id INTEGER PRIMARY KEY AUTOINCREMENT`)
	}
	for _, c := range t.ColumnNames {
		cols = append(cols, quote(c.Title)+` `+c.Type)
	}
	sql := `CREATE TABLE IF NOT EXISTS ` + quote(t.TableName) + ` (` + strings.Join(cols, ",") + `);`

	d.logger.Debug("create table", zap.String("sql", sql))

	_, err := d.db.Exec(sql)
	return err
}

// Insert 一条语句批量插入 DataCount 行
func (d *Sqldb) Insert(t TableMetaData) error {
	if len(t.ColumnNames) == 0 {
		return errors.New("empty columns")
	}
	if t.DataCount == 0 {
		return nil
	}

	titles := make([]string, len(t.ColumnNames))
	for i, v := range t.ColumnNames {
		titles[i] = quote(v.Title)
	}
	sql := `INSERT INTO ` + quote(t.TableName) + `(` + strings.Join(titles, ",") + `) VALUES `
	blank := ",(" + strings.Repeat(",?", len(t.ColumnNames))[1:] + ")"
	sql += strings.Repeat(blank, t.DataCount)[1:] + `;`

	d.logger.Debug("insert table", zap.String("sql", sql))

	_, err := d.db.Exec(sql, t.Args...)
	return err
}
