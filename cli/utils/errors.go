package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/charmbracelet/huh"

	"photofolio/cli/styles"
)

// HTTPError is a non-2xx response from the backend.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	if len(e.Message) == 0 {
		return fmt.Sprintf("server error %d", e.StatusCode)
	}

	return fmt.Sprintf("server error %d: %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is an HTTPError with the given status code.
func IsStatus(err error, status int) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == status
}

// ParseHTTPError reads and closes the body of a failed response. The backend
// reports errors as {"error": ...}, {"detail": ...} or {"message": ...};
// anything else is passed through as text.
func ParseHTTPError(resp *http.Response) error {
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var payload struct {
		Error   string `json:"error"`
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}

	msg := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case len(payload.Error) > 0:
			msg = payload.Error
		case len(payload.Detail) > 0:
			msg = payload.Detail
		case len(payload.Message) > 0:
			msg = payload.Message
		}
	}

	if len(msg) == 0 {
		msg = http.StatusText(resp.StatusCode)
	}

	return &HTTPError{StatusCode: resp.StatusCode, Message: msg}
}

// IsConnectionError reports whether err means the server could not be
// reached at all.
func IsConnectionError(err error) bool {
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

func HandleCLIError(msg string, err error) {
	if err == nil {
		return
	} else if errors.Is(err, huh.ErrUserAborted) {
		os.Exit(0)
	} else if IsConnectionError(err) {
		msg = "Unable to connect to the server"
	}

	styles.PrintErrStr(fmt.Sprintf("ERROR: %s - %v\n", msg, err))
	os.Exit(1)
}
