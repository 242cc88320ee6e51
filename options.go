// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mable

import (
	"go.uber.org/zap"
)

// TaskOption configures the task adapters [Attempt] and [Guard].
type TaskOption interface {
	apply(*taskConfig)
}

type taskOptionFunc func(*taskConfig)

func (f taskOptionFunc) apply(c *taskConfig) { f(c) }

type taskConfig struct {
	logger *zap.Logger
	name   string
}

func newTaskConfig(opts []TaskOption) taskConfig {
	c := taskConfig{logger: zap.NewNop(), name: "task"}
	for _, opt := range opts {
		opt.apply(&c)
	}
	return c
}

// WithLogger sets the logger that receives completion events.
// A nil logger disables logging.
func WithLogger(l *zap.Logger) TaskOption {
	if l == nil {
		l = zap.NewNop()
	}
	return taskOptionFunc(func(c *taskConfig) {
		c.logger = l
	})
}

// WithName labels log entries of the task.
func WithName(name string) TaskOption {
	return taskOptionFunc(func(c *taskConfig) {
		c.name = name
	})
}
