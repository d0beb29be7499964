package endpoint

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-kit/kit/log"

	"github.com/abustany/back-blog/pkg/postservice"
	"github.com/abustany/back-blog/pkg/poststore"
	"github.com/abustany/back-blog/pkg/types"
)

// JsonContentType is the MIME type of JSON requests/responses
const JsonContentType = "application/json"

type capturingResponseWriter struct {
	w    http.ResponseWriter
	code int
}

var _ http.ResponseWriter = &capturingResponseWriter{}

func (c *capturingResponseWriter) Header() http.Header {
	return c.w.Header()
}

func (c *capturingResponseWriter) Write(data []byte) (int, error) {
	if c.code == 0 {
		c.code = http.StatusOK
	}

	return c.w.Write(data)
}

func (c *capturingResponseWriter) WriteHeader(statusCode int) {
	if c.code == 0 {
		c.code = statusCode
	}

	c.w.WriteHeader(statusCode)
}

// WithLogging wraps a http.Handler, writing a log message to the given logger
// at the end of each request with the URL, returned status code, elapsed time
// etc.
func WithLogging(logger log.Logger, handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writer := capturingResponseWriter{w: w}

		defer func(start time.Time) {
			logger.Log(
				"event", "api_request",
				"method", r.Method,
				"url", r.URL.String(),
				"status", writer.code,
				"elapsed", time.Since(start),
			)
		}(time.Now())

		handler.ServeHTTP(&writer, r)
	})
}

// WithContentType wraps a http.Handler, rejecting requests that don't have a
// JSON content type.
func WithContentType(contentType string, handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != contentType {
			w.WriteHeader(http.StatusBadRequest)
			io.WriteString(w, "Invalid content type")
			return
		}

		handler.ServeHTTP(w, r)
	})
}

// WithCORS wraps a http.Handler, allowing cross-origin requests from any
// origin and answering OPTIONS preflight requests before they reach the
// router.
func WithCORS(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		handler.ServeHTTP(w, r)
	})
}

type errorResponse struct {
	Message string `json:"message"`
}

// WriteJSON writes the given body to the ResponseWriter as JSON with the
// given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", JsonContentType)
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// WriteError write the given error to the ResponseWriter, using the
// appropriate HTTP status code depending on whether the error is a user or an
// internal error. User errors get a JSON {"message": ...} body; internal
// errors get an empty 500 so that no internal detail leaks to the caller.
func WriteError(w http.ResponseWriter, err error) {
	if userError := postservice.UserError(err); userError != nil {
		if userError == poststore.ErrIDNotFound {
			WriteJSON(w, http.StatusNotFound, errorResponse{Message: "Post not found"})
			return
		}

		WriteJSON(w, http.StatusBadRequest, errorResponse{Message: userError.Error()})
		return
	}

	w.WriteHeader(http.StatusInternalServerError)
}

// WithPost adapts an http.Handler to a function handling an HTTP request where
// the request body is a single types.Post object. The returned body (if any)
// is written back as JSON; errors are written using WriteError.
func WithPost(do func(r *http.Request, post types.Post) (int, interface{}, error)) http.Handler {
	handler := func(w http.ResponseWriter, r *http.Request) {
		post := types.Post{}

		if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
			WriteJSON(w, http.StatusBadRequest, errorResponse{Message: "Malformed JSON input"})
			return
		}

		statusCode, body, err := do(r, post)

		if err != nil {
			WriteError(w, err)
			return
		}

		WriteJSON(w, statusCode, body)
	}

	return WithContentType(JsonContentType, http.HandlerFunc(handler))
}
