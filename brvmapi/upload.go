package brvmapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	brvmwatch "github.com/esmelobi/brvm-watch"
)

// UploadBulletin submits a bulletin PDF and returns the backend's
// confirmation. The transport is opaque to the workflow: it just submits a
// binary and receives a structured result. The signature matches
// brvmwatch.SubmitFunc.
func (c *Client) UploadBulletin(ctx context.Context, path string) (*brvmwatch.UploadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %v", path, err)
	}
	defer f.Close()

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("cannot read %s: %v", path, err)
	}
	if err := form.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/upload-bulletin", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot reach the backend: %v", err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("cannot read upload response: %v", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("upload rejected: %s", errorDetail(resp.Status, content))
	}

	var result brvmwatch.UploadResult
	if err := json.Unmarshal(content, &result); err != nil {
		return nil, fmt.Errorf("cannot parse upload response: %v", err)
	}
	return &result, nil
}

// the upload endpoint is the SubmitFunc of the workflow state machine.
var _ brvmwatch.SubmitFunc = (*Client)(nil).UploadBulletin
