package logging

import (
	"crypto/tls"
	"encoding/hex"
	"fmt"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// WebSocket message types, numbered as the RFC 6455 frame opcodes
// (the same values gorilla/websocket uses).
const (
	TextMessage   = 1
	BinaryMessage = 2
	CloseMessage  = 8
	PingMessage   = 9
	PongMessage   = 10
)

// ParseLevel maps a level name to a zap level. An empty name means info.
func ParseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info", "":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q (expected debug, info, warn or error)", level)
	}
}

// Initialize creates the process logger at the given level.
// Until Initialize is called every logging function is a no-op.
func Initialize(level string) error {
	zapLevel, err := ParseLevel(level)
	if err != nil {
		return err
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = built

	return nil
}

// SetLogger replaces the process logger
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the process logger, or a no-op logger before Initialize
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// StdLogger returns a standard library logger that writes into zap at debug level.
// net/http reports handshake and accept problems through it.
func StdLogger() *log.Logger {
	l, err := zap.NewStdLogAt(GetLogger(), zapcore.DebugLevel)
	if err != nil {
		return zap.NewStdLog(GetLogger())
	}
	return l
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogConnection logs a connection lifecycle event
func LogConnection(remoteAddr string, event string) {
	Info("Connection event",
		zap.String("remote_addr", remoteAddr),
		zap.String("event", event),
	)
}

// LogTLSHandshake logs the negotiated parameters of a TLS session
func LogTLSHandshake(remoteAddr string, version uint16, cipherSuite uint16, serverName string) {
	Debug("TLS handshake completed",
		zap.String("remote_addr", remoteAddr),
		zap.String("tls_version", tls.VersionName(version)),
		zap.String("cipher_suite", tls.CipherSuiteName(cipherSuite)),
		zap.String("server_name", serverName),
	)
}

// LogWebSocketMessage logs one echoed message at debug level.
// Binary payloads are hex dumped, text payloads are logged as-is.
func LogWebSocketMessage(remoteAddr string, direction string, messageType int, data []byte) {
	core := GetLogger().Core()
	if !core.Enabled(zapcore.DebugLevel) {
		return
	}

	fields := []zap.Field{
		zap.String("remote_addr", remoteAddr),
		zap.String("direction", direction),
		zap.String("message_type", wsMessageTypeName(messageType)),
		zap.Int("length", len(data)),
	}

	switch messageType {
	case TextMessage:
		fields = append(fields, zap.String("content", truncate(string(data))))
	case BinaryMessage:
		fields = append(fields, zap.String("hex_dump", hexDump(data)))
	}

	Debug("WebSocket message", fields...)
}

func wsMessageTypeName(msgType int) string {
	switch msgType {
	case TextMessage:
		return "text"
	case BinaryMessage:
		return "binary"
	case CloseMessage:
		return "close"
	case PingMessage:
		return "ping"
	case PongMessage:
		return "pong"
	default:
		return fmt.Sprintf("unknown(%d)", msgType)
	}
}

// Payload dumps are capped at 256 bytes.
const maxDump = 256

func hexDump(data []byte) string {
	if len(data) > maxDump {
		return hex.EncodeToString(data[:maxDump]) + "..."
	}
	return hex.EncodeToString(data)
}

func truncate(s string) string {
	if len(s) > maxDump {
		return s[:maxDump] + "..."
	}
	return s
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
