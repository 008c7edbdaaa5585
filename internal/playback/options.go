package playback

import (
	"github.com/rs/zerolog"

	"github.com/llehouerou/ripple/internal/tags"
)

// DefaultResyncEvery is the number of ticks between tracked-seek resyncs
// against an engine that reports its absolute stream position.
const DefaultResyncEvery = 10

// Option configures a Controller.
type Option func(*Controller)

// WithResolver sets the metadata resolver.
func WithResolver(r *tags.Resolver) Option {
	return func(c *Controller) { c.resolver = r }
}

// WithMetadataSource resolves metadata through src instead of the default tag readers.
func WithMetadataSource(src tags.Source) Option {
	return func(c *Controller) { c.source = src }
}

// WithDurationReader sets how track durations are read.
func WithDurationReader(r tags.DurationReader) Option {
	return func(c *Controller) { c.durations = r }
}

// WithLogger sets the controller logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.logger = l.With().Str("component", "playback").Logger() }
}

// WithResyncEvery sets the tracked-seek resync interval in ticks. Zero disables it.
func WithResyncEvery(ticks int) Option {
	return func(c *Controller) { c.resyncEvery = max(ticks, 0) }
}

// WithVolume sets the initial engine volume.
func WithVolume(level float64) Option {
	return func(c *Controller) { c.volume = clampVolume(level) }
}
