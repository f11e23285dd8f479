package logging

import (
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		want    zapcore.Level
		wantErr bool
	}{
		{name: "debug", level: "debug", want: zapcore.DebugLevel},
		{name: "info", level: "info", want: zapcore.InfoLevel},
		{name: "empty defaults to info", level: "", want: zapcore.InfoLevel},
		{name: "warn", level: "warn", want: zapcore.WarnLevel},
		{name: "error", level: "error", want: zapcore.ErrorLevel},
		{name: "unknown", level: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.level)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.level, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestInitializeRejectsUnknownLevel(t *testing.T) {
	if err := Initialize("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func withObserver(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(level)
	prev := logger
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(prev) })
	return logs
}

func TestLogConnection(t *testing.T) {
	logs := withObserver(t, zapcore.InfoLevel)

	LogConnection("127.0.0.1:5000", "websocket_upgraded")

	entries := logs.FilterMessage("Connection event").All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["remote_addr"] != "127.0.0.1:5000" {
		t.Errorf("remote_addr = %v", fields["remote_addr"])
	}
	if fields["event"] != "websocket_upgraded" {
		t.Errorf("event = %v", fields["event"])
	}
}

func TestLogWebSocketMessage(t *testing.T) {
	t.Run("skipped above debug", func(t *testing.T) {
		logs := withObserver(t, zapcore.InfoLevel)
		LogWebSocketMessage("peer", "echoed", TextMessage, []byte("hello"))
		if logs.Len() != 0 {
			t.Errorf("expected no entries at info level, got %d", logs.Len())
		}
	})

	t.Run("text content", func(t *testing.T) {
		logs := withObserver(t, zapcore.DebugLevel)
		LogWebSocketMessage("peer", "echoed", TextMessage, []byte("hello"))
		fields := logs.All()[0].ContextMap()
		if fields["message_type"] != "text" {
			t.Errorf("message_type = %v, want text", fields["message_type"])
		}
		if fields["content"] != "hello" {
			t.Errorf("content = %v, want hello", fields["content"])
		}
	})

	t.Run("binary hex dump", func(t *testing.T) {
		logs := withObserver(t, zapcore.DebugLevel)
		LogWebSocketMessage("peer", "echoed", BinaryMessage, []byte{0xde, 0xad})
		fields := logs.All()[0].ContextMap()
		if fields["hex_dump"] != "dead" {
			t.Errorf("hex_dump = %v, want dead", fields["hex_dump"])
		}
	})
}

func TestWSMessageTypeName(t *testing.T) {
	tests := []struct {
		msgType int
		gorilla int
		want    string
	}{
		{msgType: TextMessage, gorilla: websocket.TextMessage, want: "text"},
		{msgType: BinaryMessage, gorilla: websocket.BinaryMessage, want: "binary"},
		{msgType: CloseMessage, gorilla: websocket.CloseMessage, want: "close"},
		{msgType: PingMessage, gorilla: websocket.PingMessage, want: "ping"},
		{msgType: PongMessage, gorilla: websocket.PongMessage, want: "pong"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if tt.msgType != tt.gorilla {
				t.Errorf("constant = %d, gorilla/websocket uses %d", tt.msgType, tt.gorilla)
			}
			if got := wsMessageTypeName(tt.msgType); got != tt.want {
				t.Errorf("wsMessageTypeName(%d) = %q, want %q", tt.msgType, got, tt.want)
			}
		})
	}

	if got := wsMessageTypeName(3); got != "unknown(3)" {
		t.Errorf("wsMessageTypeName(3) = %q, want unknown(3)", got)
	}
}

func TestHexDumpTruncates(t *testing.T) {
	data := make([]byte, maxDump+10)
	got := hexDump(data)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected truncated dump to end with ..., got %q", got[len(got)-5:])
	}
	if len(got) != maxDump*2+3 {
		t.Errorf("len = %d, want %d", len(got), maxDump*2+3)
	}
}

func TestGetLoggerDefaultsToNop(t *testing.T) {
	prev := logger
	logger = nil
	t.Cleanup(func() { logger = prev })

	if GetLogger() == nil {
		t.Fatal("GetLogger returned nil")
	}
	// Must not panic.
	Info("quiet")
	Sync()
}
