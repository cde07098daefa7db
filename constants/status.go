package constants

// JobStatus is the canonical status for rows in ingest_jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued JobStatus = "queued" // waiting for a worker
	JobStatusDone   JobStatus = "done"   // report and sentences created
	JobStatusError  JobStatus = "error"  // terminal failure, message set
)

// JobStatuses holds the allowed values for the status field in IngestJob.
var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusDone),
	string(JobStatusError),
}

// MaxJobMessageLen caps the diagnostic message stored on a job. Longer
// diagnostics are truncated rather than failing the status update.
const MaxJobMessageLen = 16384

// TruncateJobMessage clips a diagnostic to MaxJobMessageLen.
func TruncateJobMessage(msg string) string {
	if len(msg) <= MaxJobMessageLen {
		return msg
	}
	return msg[:MaxJobMessageLen]
}
