package epos

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/fearful-symmetry/epos-go/command"
	"github.com/fearful-symmetry/epos-go/document"
	"github.com/fearful-symmetry/epos-go/status"
)

// Job accumulates commands for one receipt and flushes them in a single
// print request.
//
// A Job owns its buffered sequence exclusively: Add copies nothing out,
// and Print takes and clears the buffer on success, so the Job is
// immediately reusable for the next receipt. A mutex serializes sends, so
// a Job never has two prints in flight; callers that want concurrent
// prints use one Job per goroutine.
type Job struct {
	printer *Printer
	mode    command.Mode

	mu  sync.Mutex
	id  uuid.UUID
	seq command.Sequence
}

// Normal starts a job in normal mode: commands execute one line at a time
// as the printer receives them.
func (p *Printer) Normal() *Job {
	return &Job{printer: p, mode: command.ModeNormal, id: uuid.New()}
}

// Page starts a job in page mode: commands compose inside a bounded print
// area before the page is committed.
func (p *Printer) Page() *Job {
	return &Job{printer: p, mode: command.ModePage, id: uuid.New()}
}

// ID returns the identifier of the receipt currently being composed. It
// changes after every successful Print.
func (j *Job) ID() uuid.UUID {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.id
}

// Mode returns the execution mode the job was started in.
func (j *Job) Mode() command.Mode { return j.mode }

// Add appends commands to the job in order. It returns the job so calls
// can be chained. Validation happens at Print time, against the full
// sequence.
func (j *Job) Add(cmds ...command.Command) *Job {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.seq = append(j.seq, cmds...)
	return j
}

// Len returns the number of buffered commands.
func (j *Job) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.seq)
}

// Reset discards the buffered commands without printing.
func (j *Job) Reset() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.seq = nil
}

// Print validates the accumulated sequence, encodes it, sends it to the
// printer and interprets the reply. On success the buffer is cleared and a
// fresh job ID is assigned for the next receipt; on any failure the buffer
// is kept so the caller can correct and retry.
func (j *Job) Print(ctx context.Context) (*status.Result, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	res, err := j.printer.print(ctx, j.id, j.seq, j.mode)
	if err != nil {
		return res, err
	}
	j.seq = nil
	j.id = uuid.New()
	return res, nil
}

// Print runs the one-shot pipeline over a caller-owned sequence: validate,
// encode, send, interpret. The sequence is only borrowed for the duration
// of the call and never retained. The document produced is byte-identical
// to the one a Job would produce for the same sequence and mode.
func (p *Printer) Print(ctx context.Context, seq command.Sequence, mode command.Mode) (*status.Result, error) {
	return p.print(ctx, uuid.New(), seq, mode)
}

func (p *Printer) print(ctx context.Context, id uuid.UUID, seq command.Sequence, mode command.Mode) (*status.Result, error) {
	log := p.log.With().Stringer("job_id", id).Logger()

	if len(seq) == 0 {
		// Legal no-op print, but almost always a caller bug.
		log.Warn().Msg("printing empty command sequence")
	}

	if err := seq.Validate(mode); err != nil {
		return nil, err
	}

	doc, err := document.Encode(seq, mode)
	if err != nil {
		return nil, err
	}

	reply, err := p.tr.Send(ctx, doc)
	if err != nil {
		return nil, err
	}

	res, err := status.Parse(reply.StatusCode, reply.Body)
	if res != nil {
		res.JobID = id
	}
	if err != nil {
		var fault *status.FaultError
		if errors.As(err, &fault) {
			log.Error().
				Str("code", fault.Result.Code).
				Str("status", fault.Result.Printer().String()).
				Msg("printer reported fault")
		}
		return res, err
	}

	log.Debug().Int("commands", len(seq)).Msg("print job accepted")
	return res, nil
}
