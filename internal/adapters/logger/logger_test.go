package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"go.trai.ch/relay/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Info(t *testing.T) {
	lg, ok := logger.New().(*logger.Logger)
	if !ok {
		t.Fatal("New() did not return *logger.Logger")
	}

	var buf bytes.Buffer
	lg.SetOutput(&buf)
	lg.Info("some message")

	output := buf.String()
	if !strings.Contains(output, "some message") {
		t.Errorf("Expected output to contain 'some message', got: %s", output)
	}
	if !strings.Contains(output, "INFO") {
		t.Errorf("Expected output to contain 'INFO', got: %s", output)
	}
}

func TestLogger_Warn(t *testing.T) {
	lg, ok := logger.New().(*logger.Logger)
	if !ok {
		t.Fatal("New() did not return *logger.Logger")
	}

	var buf bytes.Buffer
	lg.SetOutput(&buf)
	lg.Warn("careful now")

	output := buf.String()
	if !strings.Contains(output, "careful now") {
		t.Errorf("Expected output to contain 'careful now', got: %s", output)
	}
	if !strings.Contains(output, "WARN") {
		t.Errorf("Expected output to contain 'WARN', got: %s", output)
	}
}

func TestLogger_Error(t *testing.T) {
	lg, ok := logger.New().(*logger.Logger)
	if !ok {
		t.Fatal("New() did not return *logger.Logger")
	}

	var buf bytes.Buffer
	lg.SetOutput(&buf)
	lg.Error(zerr.New("something broke"))

	output := buf.String()
	if !strings.Contains(output, "something broke") {
		t.Errorf("Expected output to contain 'something broke', got: %s", output)
	}
	if !strings.Contains(output, "ERROR") {
		t.Errorf("Expected output to contain 'ERROR', got: %s", output)
	}
}
