package extract

import "go.uber.org/zap"

// DefaultMarker 出现这句话之后的内容属于其他人的评论
const DefaultMarker = "More community reviews"

type options struct {
	markers         []string
	minParagraphLen int
	maxDateTextLen  int
	logger          *zap.Logger
}

var defaultOptions = options{
	markers:         []string{DefaultMarker},
	minParagraphLen: 20,
	maxDateTextLen:  100,
	logger:          zap.NewNop(),
}

type Option func(opts *options)

// WithMarkers 设置终止标记，空列表时保留默认值
func WithMarkers(markers ...string) Option {
	return func(opts *options) {
		var ms []string
		for _, m := range markers {
			if m != "" {
				ms = append(ms, m)
			}
		}
		if len(ms) > 0 {
			opts.markers = ms
		}
	}
}

func WithMinParagraphLen(n int) Option {
	return func(opts *options) {
		opts.minParagraphLen = n
	}
}

func WithMaxDateTextLen(n int) Option {
	return func(opts *options) {
		opts.maxDateTextLen = n
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}
