package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/irmsia-data/anomaly.report/internal/auditlog"
	"github.com/irmsia-data/anomaly.report/internal/config"
	"github.com/irmsia-data/anomaly.report/internal/diagnose"
	"github.com/irmsia-data/anomaly.report/internal/dicom"
	"github.com/irmsia-data/anomaly.report/internal/monitoring"
	"github.com/irmsia-data/anomaly.report/internal/timeutil"
	"github.com/irmsia-data/anomaly.report/internal/transport/pb"
)

// auditAction is recorded after every completed diagnosis.
const auditAction = "diagnosis_completed"

// HealthInfo is the pb-free health check result.
type HealthInfo struct {
	Healthy bool
	Model   string
	Uptime  time.Duration
}

// BatchItem is one request in a batch diagnosis.
type BatchItem struct {
	ID      string
	Payload []byte
	Format  dicom.Format
	Options diagnose.Options
}

// Client talks to a remote DiagnosticService and fails over to the local
// pipeline when the service is unreachable or exhausted. Safe for
// concurrent use; the session state machine serialises reconnects.
type Client struct {
	cfg     *config.DiagnosticConfig
	clock   timeutil.Clock
	session *Session
	local   *diagnose.Pipeline
	audit   *auditlog.Notifier
	userID  string

	conn *grpc.ClientConn
	rpc  pb.DiagnosticServiceClient
}

// ClientOption customises a Client.
type ClientOption func(*Client)

// WithClock injects a clock for backoff and timeouts.
func WithClock(c timeutil.Clock) ClientOption {
	return func(cl *Client) { cl.clock = c }
}

// WithAudit attaches a fire-and-forget audit notifier.
func WithAudit(n *auditlog.Notifier) ClientOption {
	return func(cl *Client) { cl.audit = n }
}

// WithUserID sets the user recorded on audit entries.
func WithUserID(id string) ClientOption {
	return func(cl *Client) { cl.userID = id }
}

// withRPC replaces the generated stub, for tests over bufconn.
func withRPC(rpc pb.DiagnosticServiceClient) ClientOption {
	return func(cl *Client) { cl.rpc = rpc }
}

// NewClient creates a client for the configured remote address. The
// connection is established lazily; call Connect or just start diagnosing.
func NewClient(cfg *config.DiagnosticConfig, opts ...ClientOption) (*Client, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	c := &Client{
		cfg:   cfg,
		clock: timeutil.RealClock{},
		local: diagnose.NewPipeline(cfg, nil),
		audit: auditlog.NewNotifier(nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.session = NewSession(c.clock, cfg.GetBackoffBase(), cfg.GetBackoffCap())

	if c.rpc == nil {
		conn, err := grpc.NewClient(cfg.GetRemoteAddr(),
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithDefaultCallOptions(
				grpc.MaxCallRecvMsgSize(maxMessageBytes),
				grpc.MaxCallSendMsgSize(maxMessageBytes),
			),
		)
		if err != nil {
			return nil, fmt.Errorf("create client for %s: %w", cfg.GetRemoteAddr(), err)
		}
		c.conn = conn
		c.rpc = pb.NewDiagnosticServiceClient(conn)
	}
	return c, nil
}

// Session exposes the connection state machine.
func (c *Client) Session() *Session {
	return c.session
}

// Close terminates the session and the underlying connection.
func (c *Client) Close() error {
	c.session.Close()
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Health checks the remote service, updating session state.
func (c *Client) Health(ctx context.Context) (HealthInfo, error) {
	hctx, cancel := context.WithTimeout(ctx, c.cfg.GetHealthTimeout())
	defer cancel()

	st, err := c.rpc.HealthCheck(hctx, &pb.HealthCheckRequest{})
	if err != nil {
		if ctx.Err() == nil {
			c.session.MarkDegraded()
		}
		return HealthInfo{}, classify(err)
	}
	if st.IsHealthy {
		c.session.MarkConnected()
	} else {
		c.session.MarkDegraded()
	}
	return HealthInfo{
		Healthy: st.IsHealthy,
		Model:   st.ModelLoaded,
		Uptime:  time.Duration(st.UptimeSeconds * float64(time.Second)),
	}, nil
}

// Connect health-checks the remote and records the outcome. A failure is
// not fatal: the client still works through the local pipeline.
func (c *Client) Connect(ctx context.Context) error {
	info, err := c.Health(ctx)
	if err != nil {
		return err
	}
	if !info.Healthy {
		return fmt.Errorf("remote reports unhealthy: %w", ErrTransportUnavailable)
	}
	return nil
}

// ensureConnected gates remote calls on session health. When the session
// is degraded or disconnected it claims the single reconnect slot and
// probes the remote with backoff; callers that lose the claim race go
// local immediately rather than piling up.
func (c *Client) ensureConnected(ctx context.Context) bool {
	switch c.session.State() {
	case StateConnected:
		return true
	case StateClosed:
		return false
	}

	if !c.session.BeginReconnect() {
		return c.session.State() == StateConnected
	}

	for attempt := 0; attempt < c.cfg.GetMaxRetries(); attempt++ {
		if ctx.Err() != nil {
			c.session.EndReconnect(false)
			return false
		}
		if attempt > 0 {
			c.session.Backoff(attempt - 1)
		}
		info, err := c.Health(ctx)
		if err == nil && info.Healthy {
			c.session.EndReconnect(true)
			return true
		}
		monitoring.Logf("[Client] health probe %d failed: %v", attempt+1, err)
	}
	c.session.EndReconnect(false)
	return false
}

// Diagnose analyses raw image bytes, preferring the remote service.
// Transient remote failures retry with backoff and then fall back to the
// local pipeline; invalid requests and undecodable payloads are terminal.
func (c *Client) Diagnose(ctx context.Context, raw []byte, hint dicom.Format, opts diagnose.Options) (*diagnose.DiagnosticResult, error) {
	requestID := uuid.NewString()

	if !c.ensureConnected(ctx) {
		return c.diagnoseLocal(ctx, requestID, raw, hint, opts)
	}

	req := &pb.DicomRequest{
		RequestId: requestID,
		Payload:   raw,
		Format:    hint.String(),
		Options:   optionsToProto(opts),
	}

	for attempt := 0; attempt < c.cfg.GetMaxRetries(); attempt++ {
		if attempt > 0 {
			c.session.Backoff(attempt - 1)
		}

		callCtx, cancel := context.WithTimeout(ctx, c.cfg.GetCallTimeout())
		resp, err := c.rpc.Diagnose(callCtx, req)
		cancel()
		if err == nil {
			c.session.MarkConnected()
			result := resultFromProto(resp.Result)
			c.notifyAudit(requestID)
			return result, nil
		}

		if ctx.Err() != nil {
			// Caller cancellation is not a session event.
			return nil, ctx.Err()
		}
		cerr := classify(err)
		if !transient(cerr) {
			return nil, cerr
		}
		c.session.MarkDegraded()
		monitoring.Logf("[Client] diagnose attempt %d failed: %v", attempt+1, err)
	}

	return c.diagnoseLocal(ctx, requestID, raw, hint, opts)
}

// DiagnoseStreamed uploads the payload in chunks and collects the result.
// progressFn, when non-nil, observes server progress in [0,1].
func (c *Client) DiagnoseStreamed(ctx context.Context, raw []byte, hint dicom.Format, opts diagnose.Options, progressFn func(float64)) (*diagnose.DiagnosticResult, error) {
	requestID := uuid.NewString()

	if !c.ensureConnected(ctx) {
		return c.diagnoseLocal(ctx, requestID, raw, hint, opts)
	}

	result, err := c.streamOnce(ctx, requestID, raw, hint, opts, progressFn)
	if err == nil {
		c.session.MarkConnected()
		c.notifyAudit(requestID)
		return result, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if !transient(err) {
		return nil, err
	}
	c.session.MarkDegraded()
	monitoring.Logf("[Client] streamed diagnose failed: %v", err)
	return c.diagnoseLocal(ctx, requestID, raw, hint, opts)
}

// streamOnce performs one full upload and download over the bidi stream.
func (c *Client) streamOnce(ctx context.Context, requestID string, raw []byte, hint dicom.Format, opts diagnose.Options, progressFn func(float64)) (*diagnose.DiagnosticResult, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.cfg.GetCallTimeout())
	defer cancel()

	stream, err := c.rpc.DiagnoseStream(callCtx)
	if err != nil {
		return nil, classify(err)
	}

	meta := &pb.UploadChunk{Content: &pb.UploadChunk_Metadata{Metadata: &pb.UploadMetadata{
		RequestId:  requestID,
		TotalBytes: int64(len(raw)),
		Format:     hint.String(),
		Options:    optionsToProto(opts),
	}}}
	if err := stream.Send(meta); err != nil {
		return nil, classify(err)
	}

	chunkSize := c.cfg.GetUploadChunkBytes()
	var seq uint64
	for off := 0; off < len(raw); off += chunkSize {
		end := min(off+chunkSize, len(raw))
		chunk := &pb.UploadChunk{Content: &pb.UploadChunk_Data{Data: &pb.DataChunk{
			Sequence: seq,
			Payload:  raw[off:end],
		}}}
		if err := stream.Send(chunk); err != nil {
			return nil, classify(err)
		}
		seq++
	}
	if err := stream.CloseSend(); err != nil {
		return nil, classify(err)
	}

	for {
		resp, err := stream.Recv()
		if err == io.EOF {
			return nil, fmt.Errorf("stream ended without terminal response: %w", ErrTransportUnavailable)
		}
		if err != nil {
			return nil, classify(err)
		}
		switch resp.Status {
		case pb.ResponseStatus_PROCESSING:
			if progressFn != nil {
				progressFn(resp.Progress)
			}
		case pb.ResponseStatus_COMPLETED:
			if progressFn != nil {
				progressFn(1)
			}
			return resultFromProto(resp.Result), nil
		case pb.ResponseStatus_ERROR:
			// Server-side ERROR responses are request faults, terminal.
			return nil, fmt.Errorf("%s: %w", resp.Error, ErrInvalidRequest)
		}
	}
}

// DiagnoseBatch analyses the items, returning results in input order.
// Remote failures fall back to the local pipeline per item; per-item
// terminal errors land in the errs slice at the item's index.
func (c *Client) DiagnoseBatch(ctx context.Context, items []BatchItem) ([]*diagnose.DiagnosticResult, []error) {
	results := make([]*diagnose.DiagnosticResult, len(items))
	errs := make([]error, len(items))

	index := make(map[string]int, len(items))
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
		index[items[i].ID] = i
	}

	if c.ensureConnected(ctx) {
		c.batchOnce(ctx, items, index, results, errs)
	}

	// Anything the remote did not answer runs locally.
	for i := range items {
		if results[i] == nil && errs[i] == nil {
			results[i], errs[i] = c.diagnoseLocal(ctx, items[i].ID, items[i].Payload, items[i].Format, items[i].Options)
		}
	}
	return results, errs
}

// batchOnce drives one batch stream, filling results/errs by request id.
// Returns false when the stream itself broke (transient).
func (c *Client) batchOnce(ctx context.Context, items []BatchItem, index map[string]int, results []*diagnose.DiagnosticResult, errs []error) bool {
	callCtx, cancel := context.WithTimeout(ctx, c.cfg.GetCallTimeout())
	defer cancel()

	stream, err := c.rpc.DiagnoseBatch(callCtx)
	if err != nil {
		c.session.MarkDegraded()
		return false
	}

	for _, item := range items {
		req := &pb.DicomRequest{
			RequestId: item.ID,
			Payload:   item.Payload,
			Format:    item.Format.String(),
			Options:   optionsToProto(item.Options),
		}
		if err := stream.Send(req); err != nil {
			c.session.MarkDegraded()
			return false
		}
	}
	if err := stream.CloseSend(); err != nil {
		c.session.MarkDegraded()
		return false
	}

	for {
		resp, err := stream.Recv()
		if err == io.EOF {
			c.session.MarkConnected()
			return true
		}
		if err != nil {
			if ctx.Err() == nil {
				c.session.MarkDegraded()
			}
			return false
		}
		i, ok := index[resp.RequestId]
		if !ok {
			monitoring.Logf("[Client] batch response for unknown request %s", resp.RequestId)
			continue
		}
		switch resp.Status {
		case pb.ResponseStatus_COMPLETED:
			results[i] = resultFromProto(resp.Result)
			c.notifyAudit(resp.RequestId)
		case pb.ResponseStatus_ERROR:
			errs[i] = fmt.Errorf("%s: %w", resp.Error, ErrInvalidRequest)
		}
	}
}

// diagnoseLocal runs the fallback pipeline. Decode errors surface
// unchanged; they are terminal on either backend.
func (c *Client) diagnoseLocal(ctx context.Context, requestID string, raw []byte, hint dicom.Format, opts diagnose.Options) (*diagnose.DiagnosticResult, error) {
	monitoring.Logf("[Client] using local pipeline for %s", requestID)
	result, err := c.local.Run(ctx, raw, hint, opts)
	if err != nil {
		return nil, err
	}
	result.Backend = diagnose.BackendLocal
	c.notifyAudit(requestID)
	return result, nil
}

func (c *Client) notifyAudit(requestID string) {
	c.audit.Notify(auditlog.Entry{
		ImageID: requestID,
		UserID:  c.userID,
		Action:  auditAction,
	})
}

// classify maps gRPC status codes onto the transport error taxonomy.
func classify(err error) error {
	switch status.Code(err) {
	case codes.Unavailable:
		return fmt.Errorf("%v: %w", err, ErrTransportUnavailable)
	case codes.DeadlineExceeded:
		return fmt.Errorf("%v: %w", err, ErrTransportTimeout)
	case codes.InvalidArgument:
		return fmt.Errorf("%v: %w", err, ErrInvalidRequest)
	default:
		return err
	}
}

// transient reports whether the error justifies retry or fallback.
func transient(err error) bool {
	return errors.Is(err, ErrTransportUnavailable) || errors.Is(err, ErrTransportTimeout)
}
