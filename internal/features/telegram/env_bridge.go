package telegram

import (
	"context"

	"foodbot-miniapp/internal/common/logger"
)

// EnvBridge stands in for the embedded host when the app runs as a CLI: the
// init-data string comes from configuration instead of the WebApp object.
// Contact sharing has no native UI here, so requests are always declined and
// the caller falls back to manual entry.
type EnvBridge struct {
	initData string
}

// NewEnvBridge returns a bridge backed by a pre-supplied init-data string,
// or nil when none is configured so the app detects plain browser mode.
func NewEnvBridge(initData string) *EnvBridge {
	if initData == "" {
		return nil
	}
	return &EnvBridge{initData: initData}
}

func (b *EnvBridge) Ready() {
	logger.Debug().Msg("bridge ready")
}

func (b *EnvBridge) InitData() string {
	return b.initData
}

func (b *EnvBridge) ShowAlert(message string) {
	logger.Warn().Str("alert", message).Msg("host alert")
}

func (b *EnvBridge) RequestContact(_ context.Context) (Contact, error) {
	return Contact{}, ErrContactDeclined
}
