package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// compressReader оборачивает io.ReadCloser для распаковки тела запроса
type compressReader struct {
	body       io.ReadCloser
	gzipReader *gzip.Reader
}

func newCompressReader(body io.ReadCloser) (*compressReader, error) {
	gzipReader, err := gzip.NewReader(body)
	if err != nil {
		return nil, err
	}

	return &compressReader{
		body:       body,
		gzipReader: gzipReader,
	}, nil
}

func (c *compressReader) Read(p []byte) (int, error) {
	return c.gzipReader.Read(p)
}

func (c *compressReader) Close() error {
	if err := c.gzipReader.Close(); err != nil {
		return err
	}
	return c.body.Close()
}

// compressibleContentType проверяет, имеет ли смысл сжимать ответ
func compressibleContentType(contentType string) bool {
	// Отбрасываем параметры: "application/json; charset=utf-8" -> "application/json"
	ct, _, _ := strings.Cut(contentType, ";")
	ct = strings.ToLower(strings.TrimSpace(ct))
	return ct == "application/json" || ct == "text/html"
}

// gzipResponseWriter решает сжимать ответ или нет по Content-Type
// в момент записи заголовков
type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter  *gzip.Writer
	wroteHeader bool
	compressing bool
}

func newGzipResponseWriter(w http.ResponseWriter) *gzipResponseWriter {
	return &gzipResponseWriter{
		ResponseWriter: w,
		gzipWriter:     gzip.NewWriter(w),
	}
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if compressibleContentType(w.Header().Get("Content-Type")) && statusCode < 300 {
		w.Header().Set("Content-Encoding", "gzip")
		w.compressing = true
	}

	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	if w.compressing {
		return w.gzipWriter.Write(data)
	}

	return w.ResponseWriter.Write(data)
}

func (w *gzipResponseWriter) Close() error {
	if w.compressing {
		return w.gzipWriter.Close()
	}
	return nil
}

// Gzip добавляет поддержку gzip для тел запросов и ответов
func Gzip(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
				cr, err := newCompressReader(r.Body)
				if err != nil {
					logger.Warn("failed to decompress request body",
						zap.Error(err),
						zap.String("uri", r.RequestURI),
						zap.String("request_id", GetRequestID(r.Context())),
					)
					http.Error(w, "Failed to decompress request body", http.StatusBadRequest)
					return
				}
				defer cr.Close()
				r.Body = cr
			}

			if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				next.ServeHTTP(w, r)
				return
			}

			gzipWriter := newGzipResponseWriter(w)
			defer func() {
				if err := gzipWriter.Close(); err != nil {
					logger.Error("failed to close gzip writer",
						zap.Error(err),
						zap.String("uri", r.RequestURI),
					)
				}
			}()

			next.ServeHTTP(gzipWriter, r)
		})
	}
}
