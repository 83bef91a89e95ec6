package issues

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"marvel-metadata/core/storage"

	"github.com/minio/minio-go/v7"
)

var yearRunRe = regexp.MustCompile(`(?:^|[^0-9])((?:19|20)[0-9]{2})(?:[^0-9]|$)`)

// OpenFunc opens the raw bytes of one payload.
type OpenFunc func(ctx context.Context) (io.ReadCloser, error)

// Payload is one raw payload document waiting to be decoded.
type Payload struct {
	// Name identifies the payload in logs and results (file path or object key).
	Name string
	// Year is the year page the payload was fetched for, if known.
	Year *int

	open OpenFunc
}

// NewPayload creates a payload read through open.
func NewPayload(name string, year *int, open OpenFunc) Payload {
	return Payload{Name: name, Year: year, open: open}
}

// Open returns a reader over the payload bytes.
func (p Payload) Open(ctx context.Context) (io.ReadCloser, error) {
	if p.open == nil {
		return nil, fmt.Errorf("payload %s has no reader", p.Name)
	}
	return p.open(ctx)
}

// InferYear finds a four-digit year (19xx or 20xx) standing alone in the base name of
// a payload, as in "response-2022.json" or "2012/__data.json".
func InferYear(name string) *int {
	base := strings.TrimSuffix(path.Base(filepath.ToSlash(name)), path.Ext(name))
	m := yearRunRe.FindStringSubmatch(base)
	if m == nil {
		dir := path.Base(path.Dir(filepath.ToSlash(name)))
		if m = yearRunRe.FindStringSubmatch(dir); m == nil {
			return nil
		}
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &year
}

// Source lists payloads to decode.
type Source interface {
	Payloads(ctx context.Context) ([]Payload, error)
}

// FileSource reads payloads from local paths. A directory contributes its *.json
// files, sorted by name.
type FileSource struct {
	Paths []string
}

// Payloads implements Source.
func (s FileSource) Payloads(ctx context.Context) ([]Payload, error) {
	var files []string
	for _, p := range s.Paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(p, "*.json"))
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", p, err)
		}
		sort.Strings(matches)
		files = append(files, matches...)
	}

	payloads := make([]Payload, 0, len(files))
	for _, f := range files {
		f := f
		payloads = append(payloads, NewPayload(f, InferYear(f), func(context.Context) (io.ReadCloser, error) {
			return os.Open(f)
		}))
	}
	return payloads, nil
}

// BucketSource reads payloads from an object storage prefix.
type BucketSource struct {
	Client storage.Client
	Bucket string
	Prefix string
}

// Payloads implements Source.
func (s BucketSource) Payloads(ctx context.Context) ([]Payload, error) {
	if err := storage.RequireBucket(ctx, s.Client, s.Bucket); err != nil {
		return nil, err
	}
	keys, err := storage.ListKeys(ctx, s.Client, s.Bucket, s.Prefix, ".json")
	if err != nil {
		return nil, err
	}

	payloads := make([]Payload, 0, len(keys))
	for _, key := range keys {
		key := key
		payloads = append(payloads, NewPayload(key, InferYear(key), func(ctx context.Context) (io.ReadCloser, error) {
			return s.open(ctx, key)
		}))
	}
	return payloads, nil
}

func (s BucketSource) open(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := s.Client.GetObject(ctx, s.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return obj, nil
}
