package log

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	ModeProduction  = "production"
	ModeDevelopment = "debug"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// ZapConfig controls how Init builds the zap core.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds a zap-backed Logger. Unknown levels fall back to info.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(strings.ToLower(cfg.Level))); err != nil {
		level = zapcore.InfoLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	if cfg.Mode == ModeProduction {
		encCfg = zap.NewProductionEncoderConfig()
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	if cfg.ColorEnabled && cfg.Encoding != EncodingJSON {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var encoder zapcore.Encoder
	switch cfg.Encoding {
	case EncodingJSON:
		encoder = zapcore.NewJSONEncoder(encCfg)
	default:
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), zap.NewAtomicLevelAt(level))

	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(2)}
	if cfg.Mode != ModeProduction {
		opts = append(opts, zap.Development())
	}

	return &zapLogger{sugar: zap.New(core, opts...).Sugar()}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

// split turns ("msg", "k1", v1, "k2", v2) into a message plus structured
// fields. Anything else is joined as a plain message.
func split(arg []any) (string, []any, bool) {
	if len(arg) < 3 || len(arg)%2 == 0 {
		return "", nil, false
	}
	msg, ok := arg[0].(string)
	if !ok {
		return "", nil, false
	}
	for i := 1; i < len(arg); i += 2 {
		if _, ok := arg[i].(string); !ok {
			return "", nil, false
		}
	}
	return msg, arg[1:], true
}

func (l *zapLogger) log(level zapcore.Level, arg []any) {
	if msg, kv, ok := split(arg); ok {
		switch level {
		case zapcore.DebugLevel:
			l.sugar.Debugw(msg, kv...)
		case zapcore.InfoLevel:
			l.sugar.Infow(msg, kv...)
		case zapcore.WarnLevel:
			l.sugar.Warnw(msg, kv...)
		case zapcore.ErrorLevel:
			l.sugar.Errorw(msg, kv...)
		case zapcore.DPanicLevel:
			l.sugar.DPanicw(msg, kv...)
		case zapcore.PanicLevel:
			l.sugar.Panicw(msg, kv...)
		case zapcore.FatalLevel:
			l.sugar.Fatalw(msg, kv...)
		}
		return
	}

	switch level {
	case zapcore.DebugLevel:
		l.sugar.Debug(arg...)
	case zapcore.InfoLevel:
		l.sugar.Info(arg...)
	case zapcore.WarnLevel:
		l.sugar.Warn(arg...)
	case zapcore.ErrorLevel:
		l.sugar.Error(arg...)
	case zapcore.DPanicLevel:
		l.sugar.DPanic(arg...)
	case zapcore.PanicLevel:
		l.sugar.Panic(arg...)
	case zapcore.FatalLevel:
		l.sugar.Fatal(arg...)
	}
}

func (l *zapLogger) Debug(ctx context.Context, arg ...any) { l.log(zapcore.DebugLevel, arg) }
func (l *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.sugar.Debugf(template, arg...)
}
func (l *zapLogger) Info(ctx context.Context, arg ...any) { l.log(zapcore.InfoLevel, arg) }
func (l *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.sugar.Infof(template, arg...)
}
func (l *zapLogger) Warn(ctx context.Context, arg ...any) { l.log(zapcore.WarnLevel, arg) }
func (l *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.sugar.Warnf(template, arg...)
}
func (l *zapLogger) Error(ctx context.Context, arg ...any) { l.log(zapcore.ErrorLevel, arg) }
func (l *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	l.sugar.Errorf(template, arg...)
}
func (l *zapLogger) DPanic(ctx context.Context, arg ...any) { l.log(zapcore.DPanicLevel, arg) }
func (l *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	l.sugar.DPanicf(template, arg...)
}
func (l *zapLogger) Panic(ctx context.Context, arg ...any) { l.log(zapcore.PanicLevel, arg) }
func (l *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	l.sugar.Panicf(template, arg...)
}
func (l *zapLogger) Fatal(ctx context.Context, arg ...any) { l.log(zapcore.FatalLevel, arg) }
func (l *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	l.sugar.Fatalf(template, arg...)
}
