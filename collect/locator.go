package collect

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var ErrNoLocators = errors.New("no locators found")

// ReadLocators 每行一个 URL，空行和非 http 开头的行忽略，不去重
func ReadLocators(r io.Reader) ([]string, error) {
	var urls []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !strings.HasPrefix(line, "http") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return urls, nil
}

// LoadLocators 文件不存在或者没有任何 URL 时返回 ErrNoLocators
func LoadLocators(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s does not exist", ErrNoLocators, path)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	urls, err := ReadLocators(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(urls) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrNoLocators, path)
	}
	return urls, nil
}
