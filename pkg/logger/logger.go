package logger

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log 全局日志实例
var Log *zap.Logger

// InitLogger 初始化 zap 日志
// debug 模式使用带颜色的控制台输出，生产环境输出 JSON
func InitLogger(debug bool) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}

	var err error
	Log, err = cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
}

// Sync 刷新缓冲区的日志（进程退出前调用）
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
