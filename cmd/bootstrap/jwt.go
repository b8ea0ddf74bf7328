package bootstrap

import (
	"log/slog"

	"rentaldesk/internal/pkg/config"
	"rentaldesk/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTDecoder,
	),
)

func NewJWTDecoder(cfg config.JWTConfig, logger *slog.Logger) *jwt.Decoder {
	decoder := jwt.NewDecoder(cfg.VerifySecret)
	if !decoder.Verifies() {
		logger.Warn("JWT_VERIFY_SECRET が未設定のため、トークン署名を検証しません")
	}
	return decoder
}
