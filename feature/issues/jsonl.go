package issues

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"marvel-metadata/core/decoder"
	"marvel-metadata/core/storage"

	"github.com/minio/minio-go/v7"
)

const maxLineBytes = 16 << 20

// WriteJSONL writes one issue per line and returns how many were written.
func WriteJSONL(w io.Writer, issues []decoder.IssueData) (int, error) {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)

	for i, issue := range issues {
		if err := enc.Encode(issue); err != nil {
			return i, fmt.Errorf("failed to encode issue %d: %w", issue.ID, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, err
	}
	return len(issues), nil
}

// WriteJSONLFile writes issues to path, creating parent directories.
func WriteJSONLFile(path string, issues []decoder.IssueData) (int, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}

	n, err := WriteJSONL(f, issues)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return n, err
}

// UploadJSONL publishes issues as a JSONL object.
func UploadJSONL(ctx context.Context, client storage.Client, bucket, key string, issues []decoder.IssueData) (int, error) {
	var buf bytes.Buffer
	n, err := WriteJSONL(&buf, issues)
	if err != nil {
		return 0, err
	}

	_, err = client.PutObject(ctx, bucket, key, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "application/x-ndjson",
	})
	if err != nil {
		return 0, fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return n, nil
}

// ReadJSONL reads issues written by WriteJSONL. Blank lines are skipped.
func ReadJSONL(r io.Reader) ([]decoder.IssueData, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		out  []decoder.IssueData
		line int
	)
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		var issue decoder.IssueData
		if err := json.Unmarshal(raw, &issue); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, issue)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadJSONLFile reads issues from a JSONL file.
func ReadJSONLFile(path string) ([]decoder.IssueData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	issues, err := ReadJSONL(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return issues, nil
}
