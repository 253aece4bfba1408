package site

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/dgallion1/mdsite/internal/page"
)

// JobStatus represents the state of a site build.
type JobStatus string

const (
	StatusQueued    JobStatus = "queued"
	StatusCopying   JobStatus = "copying"
	StatusRendering JobStatus = "rendering"
	StatusCompleted JobStatus = "completed"
	StatusFailed    JobStatus = "failed"
	StatusPartial   JobStatus = "partial"
)

// Job tracks the state of a single site build.
type Job struct {
	mu sync.Mutex

	ID     string    `json:"build_id"`
	Status JobStatus `json:"status"`
	Phase  string    `json:"phase"`

	Progress Progress `json:"progress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	outputs []page.Output
	errors  []string
	done    chan struct{}
}

// Progress tracks build progress.
type Progress struct {
	TotalPages     int      `json:"total_pages"`
	PagesWritten   int      `json:"pages_written"`
	PagesUnchanged int      `json:"pages_unchanged"`
	PagesFailed    int      `json:"pages_failed"`
	FilesCopied    int      `json:"files_copied"`
	BytesWritten   int64    `json:"bytes_written"`
	Errors         []string `json:"errors"`
}

// NewJob creates a queued build job.
func NewJob() *Job {
	now := time.Now()
	return &Job{
		ID:        ContentHashHex([]byte(fmt.Sprintf("build-%d", now.UnixNano())))[:20],
		Status:    StatusQueued,
		Phase:     "queued",
		CreatedAt: now,
		UpdatedAt: now,
		done:      make(chan struct{}),
	}
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.updatedAt()) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

// SetStatus updates job status atomically. Terminal statuses release Wait.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
	if status.Terminal() && j.done != nil {
		select {
		case <-j.done:
		default:
			close(j.done)
		}
	}
}

// Terminal reports whether no further transitions follow s.
func (s JobStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusPartial
}

// Wait blocks until the job reaches a terminal status or done is closed.
func (j *Job) Wait(done <-chan struct{}) bool {
	j.mu.Lock()
	ch := j.done
	j.mu.Unlock()
	if ch == nil {
		return false
	}
	select {
	case <-ch:
		return true
	case <-done:
		return false
	}
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// SetTotalPages records how many pages the build will render.
func (j *Job) SetTotalPages(n int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.TotalPages = n
	j.UpdatedAt = time.Now()
}

// AddCopied records files copied verbatim into the public tree.
func (j *Job) AddCopied(files int, bytes int64) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.FilesCopied += files
	j.Progress.BytesWritten += bytes
	j.UpdatedAt = time.Now()
}

// AddOutput records a rendered page.
func (j *Job) AddOutput(out page.Output) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.outputs = append(j.outputs, out)
	if out.Unchanged {
		j.Progress.PagesUnchanged++
	} else {
		j.Progress.PagesWritten++
		j.Progress.BytesWritten += out.Bytes
	}
	j.UpdatedAt = time.Now()
}

// AddFailure records a page that could not be rendered.
func (j *Job) AddFailure(source string, err error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.PagesFailed++
	j.errors = append(j.errors, fmt.Sprintf("%s: %s", source, err))
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// Outputs returns a copy of the pages written so far.
func (j *Job) Outputs() []page.Output {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]page.Output, len(j.outputs))
	copy(out, j.outputs)
	return out
}

func (j *Job) updatedAt() time.Time {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.UpdatedAt
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID        string    `json:"build_id"`
	Status    JobStatus `json:"status"`
	Phase     string    `json:"phase"`
	Progress  Progress  `json:"progress"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := make([]string, len(j.Progress.Errors))
	copy(errs, j.Progress.Errors)
	p := j.Progress
	p.Errors = errs
	return JobSnapshot{
		ID:        j.ID,
		Status:    j.Status,
		Phase:     j.Phase,
		Progress:  p,
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
