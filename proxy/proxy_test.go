package proxy

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundRobinProxySwitcher(t *testing.T) {
	p, err := RoundRobinProxySwitcher("http://127.0.0.1:8888", "http://127.0.0.1:8889")
	require.NoError(t, err)
	require.NotNil(t, p)

	req, _ := http.NewRequest(http.MethodGet, "https://www.commonsense.org/node/1", nil)
	var hosts []string
	for i := 0; i < 3; i++ {
		u, err := p(req)
		require.NoError(t, err)
		hosts = append(hosts, u.Host)
	}
	assert.Equal(t, []string{"127.0.0.1:8888", "127.0.0.1:8889", "127.0.0.1:8888"}, hosts)
}

func TestRoundRobinProxySwitcherEmpty(t *testing.T) {
	p, err := RoundRobinProxySwitcher()
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestRoundRobinProxySwitcherInvalid(t *testing.T) {
	_, err := RoundRobinProxySwitcher("not a proxy")
	assert.Error(t, err)
}
