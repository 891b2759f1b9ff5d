package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"

	"github.com/monjil99/intakeagent/session"
)

// fileSink appends finalized submissions to a JSON file under dir.
type fileSink struct {
	dir string
}

func (f *fileSink) Save(ctx context.Context, record *session.SubmissionRecord) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("create submissions dir: %w", err)
	}
	path := filepath.Join(f.dir, "submitted_applications.json")

	var records []*session.SubmissionRecord
	if data, err := os.ReadFile(path); err == nil {
		if err := sonic.Unmarshal(data, &records); err != nil {
			records = nil
		}
	}
	records = append(records, record)

	data, err := sonic.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal submissions: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write submissions: %w", err)
	}
	return nil
}

var _ session.Sink = (*fileSink)(nil)
