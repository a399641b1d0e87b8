package logger

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New 初始化日志
// DEBUG=true 时使用开发配置（带颜色的级别输出），否则使用生产配置
func New() *zap.Logger {
	// 尝试加载 .env 文件（可选）
	_ = godotenv.Load()

	var config zap.Config
	if getEnvBool("DEBUG", false) {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
	}

	logger, _ := config.Build()
	return logger
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return defaultValue
}
