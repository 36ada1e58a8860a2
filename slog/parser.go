// Package slog provides log/slog-based logging decorators for apischema
// interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/tgsdk/apischema"
)

// Ensure LoggingParser implements apischema.Parser.
var _ apischema.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with timing and result-count logging.
type LoggingParser struct {
	next   apischema.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next apischema.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the outcome.
func (p *LoggingParser) Parse(ctx context.Context, html string) (*apischema.Schema, error) {
	begin := time.Now()
	schema, err := p.next.Parse(ctx, html)
	if err != nil {
		p.logger.Error("schema parse failed",
			"code", apischema.ErrorCode(err),
			"error", apischema.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	p.logger.Info("schema parsed",
		"types", len(schema.Types),
		"methods", len(schema.Methods),
		"duration", time.Since(begin),
	)
	return schema, nil
}
