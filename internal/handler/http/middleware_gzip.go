package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-auth-keeper/internal/app"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
)

const encodingGZip = "gzip"

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(nil)
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZip decompresses gzip request bodies and compresses responses for
// clients that accept gzip. Responses that already carry a Content-Encoding
// (promhttp negotiates its own) are passed through untouched.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.Contains(req.Header.Get("Content-Encoding"), encodingGZip) && req.Body != nil {
			gzipReader := gzipReaderPool.Get().(*gzip.Reader)
			if err := gzipReader.Reset(req.Body); err != nil {
				gzipReaderPool.Put(gzipReader)
				logger.FromRequest(req).Err(err).Msg("invalid gzip request body")
				utils.WriteJSONError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
				return
			}

			req.Body = &pooledReadCloser{
				Reader: gzipReader,
				onClose: func() {
					gzipReader.Close()
					gzipReaderPool.Put(gzipReader)
				},
			}
			req.Header.Del("Content-Encoding")
			req.ContentLength = -1
		}

		if !strings.Contains(req.Header.Get("Accept-Encoding"), encodingGZip) {
			next.ServeHTTP(w, req)
			return
		}

		gw := &gzipResponseWriter{ResponseWriter: w}
		defer gw.finish()

		next.ServeHTTP(gw, req)
	})
}

type pooledReadCloser struct {
	io.Reader
	onClose func()
}

func (p *pooledReadCloser) Close() error {
	if p.onClose != nil {
		p.onClose()
		p.onClose = nil
	}
	return nil
}

// gzipResponseWriter takes a pooled gzip.Writer lazily, on the first write
// of a response that is not already encoded.
type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter  *gzip.Writer
	wroteHeader bool
	passthrough bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if w.Header().Get("Content-Encoding") != "" || statusCode == http.StatusNoContent {
		w.passthrough = true
	} else {
		w.Header().Set("Content-Encoding", encodingGZip)
		w.Header().Add("Vary", "Accept-Encoding")
		w.Header().Del("Content-Length")
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.passthrough {
		return w.ResponseWriter.Write(data)
	}

	if w.gzipWriter == nil {
		w.gzipWriter = gzipWriterPool.Get().(*gzip.Writer)
		w.gzipWriter.Reset(w.ResponseWriter)
	}
	return w.gzipWriter.Write(data)
}

// finish flushes the gzip stream, if one was started, and returns the
// writer to the pool.
func (w *gzipResponseWriter) finish() {
	if w.gzipWriter == nil {
		return
	}
	w.gzipWriter.Close()
	gzipWriterPool.Put(w.gzipWriter)
	w.gzipWriter = nil
}
