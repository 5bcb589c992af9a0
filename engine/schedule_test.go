package engine

import (
	"testing"

	"github.com/Nrich-sunny/reviewcrawler/collect"
	"github.com/stretchr/testify/assert"
)

func TestSchedule(t *testing.T) {
	s := NewSchedule()
	assert.Nil(t, s.Pull())

	s.Push(
		&collect.Request{Url: "1"},
		&collect.Request{Url: "2", Priority: 1},
		&collect.Request{Url: "3"},
	)
	assert.Equal(t, 3, s.Len())

	var got []string
	for r := s.Pull(); r != nil; r = s.Pull() {
		got = append(got, r.Url)
	}
	assert.Equal(t, []string{"2", "1", "3"}, got)
	assert.Equal(t, 0, s.Len())
}
