package sqlstorage

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/Nrich-sunny/reviewcrawler/collector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func item(url, title string) collector.OutputData {
	return collector.OutputData{Data: map[string]interface{}{
		"Data": map[string]interface{}{"url": url, "review_title": title},
	}}
}

func TestSaveInBatches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reviews.db")
	s, err := New(
		WithSqlUrl(path),
		WithBatchCount(2),
		WithTable("reviews_kahoot"),
		WithColumns("url", "review_title", "date_posted"),
	)
	require.NoError(t, err)

	require.NoError(t, s.Save(item("u1", "t1"), item("u2", "t2"), item("u3", "t3")))
	require.NoError(t, s.Save(item("u4", "t4")))
	require.NoError(t, s.Close())

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	rows, err := db.Query(`SELECT url, review_title, date_posted FROM reviews_kahoot ORDER BY id`)
	require.NoError(t, err)
	defer rows.Close()

	var got [][]string
	for rows.Next() {
		var u, title, date string
		require.NoError(t, rows.Scan(&u, &title, &date))
		got = append(got, []string{u, title, date})
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, [][]string{
		{"u1", "t1", ""},
		{"u2", "t2", ""},
		{"u3", "t3", ""},
		{"u4", "t4", ""},
	}, got)
}

func TestSaveNothing(t *testing.T) {
	s, err := New(WithSqlUrl(filepath.Join(t.TempDir(), "x.db")), WithTable("t"), WithColumns("url"))
	require.NoError(t, err)
	require.NoError(t, s.Save())
	require.NoError(t, s.Close())
}

func TestNewValidates(t *testing.T) {
	_, err := New(WithSqlUrl(filepath.Join(t.TempDir(), "x.db")))
	assert.Error(t, err)
}

func TestFlushSplitsLargeBatch(t *testing.T) {
	columns := []string{"url", "node_id", "collected_date", "review_title", "product_name",
		"date_posted", "review_text", "my_take", "how_i_use_it"}
	path := filepath.Join(t.TempDir(), "reviews.db")
	s, err := New(
		WithSqlUrl(path),
		WithBatchCount(10000),
		WithTable("reviews_kahoot"),
		WithColumns(columns...),
	)
	require.NoError(t, err)

	// 9 列时 4000 行超过一条语句的参数上限
	n := 4000
	datas := make([]collector.OutputData, n)
	for i := range datas {
		datas[i] = item(fmt.Sprintf("u%d", i), "t")
	}
	require.NoError(t, s.Save(datas...))
	require.NoError(t, s.Flush())
	require.NoError(t, s.Close())

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()
	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM reviews_kahoot`).Scan(&count))
	assert.Equal(t, n, count)
}

func TestFlushReportsInsertError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reviews.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE reviews_kahoot (other TEXT)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	s, err := New(WithSqlUrl(path), WithTable("reviews_kahoot"), WithColumns("url"))
	require.NoError(t, err)
	require.NoError(t, s.Save(item("u1", "t1")))
	assert.Error(t, s.Flush())
	require.NoError(t, s.Close())
}
