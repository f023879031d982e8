package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestWithRequestLogging(t *testing.T) {
	var logBuf bytes.Buffer
	encoderCfg := zap.NewProductionEncoderConfig()
	encoder := zapcore.NewJSONEncoder(encoderCfg)
	writer := zapcore.AddSync(&logBuf)
	core := zapcore.NewCore(encoder, writer, zapcore.InfoLevel)
	logger := zap.New(core)

	handlerCalled := false
	var seenID string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		seenID = RequestID(r.Context())
		w.WriteHeader(http.StatusTeapot) // 418
		_, _ = w.Write([]byte("I'm a teapot"))
	})

	loggedHandler := WithRequestLogging(logger)(handler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	loggedHandler.ServeHTTP(rec, req)

	if !handlerCalled {
		t.Fatal("handler was not called")
	}

	resp := rec.Result()
	body, _ := io.ReadAll(resp.Body)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusTeapot {
		t.Errorf("expected status 418, got %d", resp.StatusCode)
	}
	if string(body) != "I'm a teapot" {
		t.Errorf("unexpected response body: %s", body)
	}

	logOutput := logBuf.String()
	if logOutput == "" {
		t.Fatal("no logs written")
	}
	if !bytes.Contains(logBuf.Bytes(), []byte(`"method":"GET"`)) {
		t.Error("log does not contain method field")
	}
	if !bytes.Contains(logBuf.Bytes(), []byte(`"url":"/test"`)) {
		t.Error("log does not contain url field")
	}
	if !bytes.Contains(logBuf.Bytes(), []byte(`"status":418`)) {
		t.Error("log does not contain status field")
	}
	if !bytes.Contains(logBuf.Bytes(), []byte(`"size":12`)) {
		t.Error("log does not contain correct size field")
	}
	if !bytes.Contains(logBuf.Bytes(), []byte(`"duration"`)) {
		t.Error("log does not contain duration field")
	}
	if seenID == "" || resp.Header.Get(RequestIDHeader) != seenID {
		t.Errorf("request id not propagated: ctx=%q header=%q", seenID, resp.Header.Get(RequestIDHeader))
	}
	if !bytes.Contains(logBuf.Bytes(), []byte(`"request_id":"`+seenID+`"`)) {
		t.Error("log does not contain request id")
	}
}

func TestWithRequestLogging_KeepsIncomingID(t *testing.T) {
	var logBuf bytes.Buffer
	core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(&logBuf), zapcore.InfoLevel)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	req := httptest.NewRequest(http.MethodGet, "/abc", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	WithRequestLogging(zap.New(core))(handler).ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != "req-42" {
		t.Errorf("expected incoming request id, got %q", got)
	}
	if !bytes.Contains(logBuf.Bytes(), []byte(`"status":200`)) {
		t.Error("implicit status not logged as 200")
	}
}
