package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestSlogLogger(t *testing.T) {
	t.Run("respeita o nível configurado", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewSlogLoggerTo(&buf, "warn")

		logger.Info("ignored")
		logger.Warn("kept", "sign", "leo")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 1 {
			t.Fatalf("esperava 1 linha, obteve %d: %q", len(lines), buf.String())
		}

		var entry map[string]any
		if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
			t.Fatalf("log não é JSON: %v", err)
		}
		if entry["msg"] != "kept" || entry["sign"] != "leo" {
			t.Errorf("entrada inesperada: %v", entry)
		}
	})

	t.Run("With adiciona atributos fixos", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewSlogLoggerTo(&buf, "debug").With("component", "mail")

		logger.Debug("queued")

		if !strings.Contains(buf.String(), `"component":"mail"`) {
			t.Errorf("atributo ausente: %s", buf.String())
		}
	})

	t.Run("nível desconhecido cai para info", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewSlogLoggerTo(&buf, "verbose")

		logger.Debug("hidden")
		logger.Info("shown")

		if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
			t.Errorf("saída inesperada: %s", buf.String())
		}
	})
}
