package brvmwatch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// UploadState is the lifecycle state of a bulletin submission.
type UploadState int

const (
	Idle UploadState = iota
	FileSelected
	Uploading
	Succeeded
)

func (s UploadState) String() string {
	switch s {
	case FileSelected:
		return "file selected"
	case Uploading:
		return "uploading"
	case Succeeded:
		return "succeeded"
	default:
		return "idle"
	}
}

// SubmitFunc performs the actual submission of the selected file.
// brvmapi.Client.UploadBulletin satisfies it; tests substitute their own.
type SubmitFunc func(ctx context.Context, path string) (*UploadResult, error)

// UploadWorkflow drives a bulletin submission: Idle until a valid PDF is
// selected, then FileSelected; Submit moves through Uploading to Succeeded,
// or back to FileSelected on failure so the same file can be retried.
// The workflow owns all its transient state; Close discards it.
type UploadWorkflow struct {
	state  UploadState
	file   string
	err    string
	result *UploadResult
}

func (w *UploadWorkflow) State() UploadState    { return w.state }
func (w *UploadWorkflow) File() string          { return w.file }
func (w *UploadWorkflow) Err() string           { return w.err }
func (w *UploadWorkflow) Result() *UploadResult { return w.result }

// Select validates the file type and transitions to FileSelected.
// Only PDF bulletins are parseable by the backend: anything else is a
// validation failure that never reaches the network layer, and the workflow
// stays where it was.
func (w *UploadWorkflow) Select(path string) error {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		w.err = fmt.Sprintf("%s: only PDF bulletins are accepted", filepath.Base(path))
		return fmt.Errorf("%s", w.err)
	}
	w.state = FileSelected
	w.file = path
	w.err = ""
	w.result = nil
	return nil
}

// Submit sends the selected file. It is only permitted from FileSelected.
// On success the confirmation is retained; on failure the error message is
// retained and the file stays selected for retry.
func (w *UploadWorkflow) Submit(ctx context.Context, submit SubmitFunc) error {
	if w.state != FileSelected {
		return fmt.Errorf("no file selected (state: %s)", w.state)
	}
	w.state = Uploading
	result, err := submit(ctx, w.file)
	if err != nil {
		w.state = FileSelected
		w.err = err.Error()
		return err
	}
	w.state = Succeeded
	w.err = ""
	w.result = result
	return nil
}

// Close discards all transient state. It reports whether dependent data
// should be refreshed, which is the case after a successful submission.
func (w *UploadWorkflow) Close() (refresh bool) {
	refresh = w.state == Succeeded
	*w = UploadWorkflow{}
	return refresh
}
