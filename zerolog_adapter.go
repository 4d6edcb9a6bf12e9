package authclient

import "github.com/rs/zerolog"

var _ Logger = &ZerologAdapter{}

// ZerologAdapter bridges the package Logger to a zerolog.Logger so services
// embedding the client keep structured output.
type ZerologAdapter struct {
	log zerolog.Logger
}

func NewZerologAdapter(log zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{log: log.With().Str("component", "authclient").Logger()}
}

func (a *ZerologAdapter) Debug(format string, args ...any) {
	a.log.Debug().Msgf(format, args...)
}

func (a *ZerologAdapter) Info(format string, args ...any) {
	a.log.Info().Msgf(format, args...)
}

func (a *ZerologAdapter) Warn(format string, args ...any) {
	a.log.Warn().Msgf(format, args...)
}

func (a *ZerologAdapter) Error(format string, args ...any) {
	a.log.Error().Msgf(format, args...)
}
