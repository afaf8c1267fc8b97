package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/JaimeStill/account-lab/pkg/logging"
)

func TestNewWithWriter_Formats(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewWithWriter(&logging.Config{Level: logging.LevelInfo, Format: logging.FormatJSON}, &buf)
		logger.Info("account created", "id", 12)

		var entry map[string]any
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("output is not JSON: %v", err)
		}
		if entry["msg"] != "account created" {
			t.Errorf("msg = %v, want %q", entry["msg"], "account created")
		}
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.NewWithWriter(&logging.Config{Level: logging.LevelInfo, Format: logging.FormatText}, &buf)
		logger.Info("account created", "id", 12)

		if !strings.Contains(buf.String(), "msg=\"account created\" id=12") {
			t.Errorf("unexpected text output: %s", buf.String())
		}
	})
}

func TestNewWithWriter_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&logging.Config{Level: logging.LevelWarn, Format: logging.FormatText}, &buf)

	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Error("info message logged at warn level")
	}
	if !strings.Contains(out, "kept") {
		t.Error("warn message not logged")
	}
}

func TestConfig_Finalize(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logging.Config
		env     map[string]string
		want    logging.Config
		wantErr bool
	}{
		{
			name: "defaults",
			want: logging.Config{Level: logging.LevelInfo, Format: logging.FormatText},
		},
		{
			name: "env override",
			cfg:  logging.Config{Level: logging.LevelInfo},
			env:  map[string]string{"TEST_LOG_LEVEL": "debug", "TEST_LOG_FORMAT": "json"},
			want: logging.Config{Level: logging.LevelDebug, Format: logging.FormatJSON},
		},
		{
			name:    "invalid level",
			cfg:     logging.Config{Level: "verbose"},
			wantErr: true,
		},
		{
			name:    "invalid format",
			cfg:     logging.Config{Format: "xml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg := tt.cfg
			err := cfg.Finalize(&logging.Env{Level: "TEST_LOG_LEVEL", Format: "TEST_LOG_FORMAT"})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Finalize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && cfg != tt.want {
				t.Errorf("cfg = %+v, want %+v", cfg, tt.want)
			}
		})
	}
}
