package middleware

import "net/http"

// StatusRecorder wraps ResponseWriter and captures what the handler sent:
// the status code (including the implicit 200 on a bare Write) and the
// response body size, both reported in the request log line.
type StatusRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int64
	wroteHeader bool
}

func NewStatusRecorder(w http.ResponseWriter) *StatusRecorder {
	return &StatusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (rw *StatusRecorder) WriteHeader(statusCode int) {
	if rw.wroteHeader {
		return
	}
	rw.wroteHeader = true
	rw.status = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (rw *StatusRecorder) Write(p []byte) (int, error) {
	if !rw.wroteHeader {
		rw.WriteHeader(http.StatusOK)
	}
	n, err := rw.ResponseWriter.Write(p)
	rw.bytes += int64(n)
	return n, err
}

func (rw *StatusRecorder) Status() int { return rw.status }

// Bytes returns the number of body bytes written so far.
func (rw *StatusRecorder) Bytes() int64 { return rw.bytes }
