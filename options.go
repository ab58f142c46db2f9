/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package nodeconf

import "log/slog"

// DefaultRootName names the folder New creates.
const DefaultRootName = "Conf"

type options struct {
	logger   *slog.Logger
	rootName string
	watch    bool
}

// Option configures a Store.
type Option func(*options)

func defaultOptions() options {
	return options{
		logger:   slog.Default(),
		rootName: DefaultRootName,
	}
}

// WithLogger sets the logger used for warnings and debug records. A nil logger keeps the default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRootName sets the name of the root folder created by New. NewWithRoot ignores it.
func WithRootName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.rootName = name
		}
	}
}

// WithWatch subscribes the store to root child events at construction.
func WithWatch(enabled bool) Option {
	return func(o *options) {
		o.watch = enabled
	}
}
