package requests

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"photofolio/shared/constants"
)

// Client is used for every backend request. Tests and callers may swap it
// for one with a different transport or timeout.
var Client = &http.Client{Timeout: 60 * time.Second}

// FormFile is a file part of a multipart request.
type FormFile struct {
	Field    string
	Filename string
	Reader   io.Reader
}

func GetRequest(ctx context.Context, token, url string) (*http.Response, error) {
	return sendRequest(ctx, token, http.MethodGet, url, nil, "")
}

func PostRequest(ctx context.Context, token, url string, data []byte) (*http.Response, error) {
	return sendRequest(ctx, token, http.MethodPost, url, data, "application/json")
}

func DeleteRequest(ctx context.Context, token, url string) (*http.Response, error) {
	return sendRequest(ctx, token, http.MethodDelete, url, nil, "")
}

// PostMultipart sends fields and a single file as multipart/form-data.
func PostMultipart(
	ctx context.Context,
	token, url string,
	fields map[string]string,
	file FormFile,
) (*http.Response, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, err
		}
	}

	part, err := writer.CreateFormFile(file.Field, file.Filename)
	if err != nil {
		return nil, err
	}

	if _, err = io.Copy(part, file.Reader); err != nil {
		return nil, fmt.Errorf("reading %s: %w", file.Filename, err)
	}

	if err = writer.Close(); err != nil {
		return nil, err
	}

	return sendRequest(
		ctx,
		token,
		http.MethodPost,
		url,
		body.Bytes(),
		writer.FormDataContentType())
}

func sendRequest(
	ctx context.Context,
	token, method, url string,
	data []byte,
	contentType string,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	if len(token) > 0 {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	if len(contentType) > 0 && len(data) > 0 {
		req.Header.Set("Content-Type", contentType)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constants.CLIUserAgent)

	return Client.Do(req)
}
