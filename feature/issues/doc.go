// Package issues runs the payload decoder over many year-page payloads and moves the
// decoded records in and out of JSONL.
//
// # Sources
//
// Payloads come from a Source: FileSource for saved __data.json responses on disk,
// BucketSource for the same files under an object storage prefix. The year page is
// inferred from a four-digit year in the file or object name when not given.
//
// # Decoding
//
// Service.DecodeAll decodes payloads in parallel with a bounded errgroup. A payload
// without a pool is logged and reported on its PayloadResult; the run continues.
//
// # JSONL
//
// WriteJSONL and ReadJSONL use one IssueData object per line. UploadJSONL publishes
// the same bytes to the bucket.
package issues
