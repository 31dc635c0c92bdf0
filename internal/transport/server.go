package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/irmsia-data/anomaly.report/internal/config"
	"github.com/irmsia-data/anomaly.report/internal/diagnose"
	"github.com/irmsia-data/anomaly.report/internal/dicom"
	"github.com/irmsia-data/anomaly.report/internal/monitoring"
	"github.com/irmsia-data/anomaly.report/internal/timeutil"
	"github.com/irmsia-data/anomaly.report/internal/transport/pb"
)

// maxMessageBytes bounds unary request and response sizes (100MB), sized
// for uncompressed DICOM series payloads.
const maxMessageBytes = 100 * 1024 * 1024

// uploadProgressCap is the progress ceiling while bytes are still being
// received; the remainder of the range belongs to analysis.
const uploadProgressCap = 0.3

// Ensure Server implements the gRPC interface.
var _ pb.DiagnosticServiceServer = (*Server)(nil)

// Server implements the DiagnosticService over a local analysis pipeline.
// Concurrency is bounded by an in-flight semaphore shared across all RPCs.
type Server struct {
	pb.UnimplementedDiagnosticServiceServer

	cfg       *config.DiagnosticConfig
	pipeline  *diagnose.Pipeline
	modelName string
	clock     timeutil.Clock
	started   time.Time

	inflight chan struct{}

	grpcServer *grpc.Server
}

// NewServer creates a server around the given classifier. A nil classifier
// serves with the heuristic; a nil clock uses real time.
func NewServer(cfg *config.DiagnosticConfig, clf diagnose.Classifier, clock timeutil.Clock) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	modelName := "heuristic-v1"
	if clf != nil {
		modelName = fmt.Sprintf("%T", clf)
	}
	return &Server{
		cfg:       cfg,
		pipeline:  diagnose.NewPipeline(cfg, clf),
		modelName: modelName,
		clock:     clock,
		started:   clock.Now(),
		inflight:  make(chan struct{}, cfg.GetMaxInFlight()),
	}
}

// Serve registers the service and blocks serving lis.
func (s *Server) Serve(lis net.Listener) error {
	s.grpcServer = grpc.NewServer(
		grpc.MaxRecvMsgSize(maxMessageBytes),
		grpc.MaxSendMsgSize(maxMessageBytes),
	)
	pb.RegisterDiagnosticServiceServer(s.grpcServer, s)
	monitoring.Logf("[Server] listening on %s (max in-flight %d)", lis.Addr(), cap(s.inflight))
	return s.grpcServer.Serve(lis)
}

// GracefulStop drains in-flight RPCs and stops the server.
func (s *Server) GracefulStop() {
	if s.grpcServer != nil {
		s.grpcServer.GracefulStop()
	}
}

// acquire claims an in-flight slot, honouring context cancellation.
func (s *Server) acquire(ctx context.Context) error {
	select {
	case s.inflight <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Server) release() {
	<-s.inflight
}

// HealthCheck reports liveness, the loaded model, and uptime.
func (s *Server) HealthCheck(ctx context.Context, _ *pb.HealthCheckRequest) (*pb.HealthStatus, error) {
	return &pb.HealthStatus{
		IsHealthy:     true,
		ModelLoaded:   s.modelName,
		UptimeSeconds: s.clock.Since(s.started).Seconds(),
	}, nil
}

// Diagnose analyses a single payload.
func (s *Server) Diagnose(ctx context.Context, req *pb.DicomRequest) (*pb.DiagnosticResponse, error) {
	if err := validateRequest(req); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := s.acquire(ctx); err != nil {
		return nil, status.FromContextError(err).Err()
	}
	defer s.release()

	result, err := s.analyse(ctx, req.Payload, req.Format, req.Options)
	if err != nil {
		return nil, err
	}
	return &pb.DiagnosticResponse{
		RequestId: req.RequestId,
		Status:    pb.ResponseStatus_COMPLETED,
		Progress:  1,
		Result:    result,
	}, nil
}

// analyse runs the pipeline and maps pipeline errors onto gRPC codes.
// Undecodable payloads are the caller's fault, never the service's.
func (s *Server) analyse(ctx context.Context, payload []byte, format string, opts *pb.DiagnosticOptions) (*pb.DiagnosticResult, error) {
	hint, ok := dicom.ParseFormat(format)
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown format %q", format)
	}

	result, err := s.pipeline.Run(ctx, payload, hint, optionsFromProto(opts))
	if err != nil {
		switch {
		case errors.Is(err, dicom.ErrDecode), errors.Is(err, dicom.ErrUnsupportedFormat):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return nil, status.FromContextError(err).Err()
		default:
			return nil, status.Errorf(codes.Internal, "analysis failed: %v", err)
		}
	}
	result.Backend = diagnose.BackendRemote
	return resultToProto(result), nil
}

// DiagnoseStream reassembles a chunked upload and analyses it. The first
// message must be metadata; chunk sequences must be contiguous from zero.
// Protocol violations end the stream with a terminal ERROR response.
func (s *Server) DiagnoseStream(stream pb.DiagnosticService_DiagnoseStreamServer) error {
	first, err := stream.Recv()
	if err != nil {
		return status.Errorf(codes.InvalidArgument, "empty upload stream: %v", err)
	}
	meta := first.GetMetadata()
	if meta == nil {
		return status.Error(codes.InvalidArgument, "first upload message must be metadata")
	}
	monitoring.Logf("[Server] upload started: request=%s total=%d bytes", meta.RequestId, meta.TotalBytes)

	sendError := func(msg string) error {
		return stream.Send(&pb.DiagnosticResponse{
			RequestId: meta.RequestId,
			Status:    pb.ResponseStatus_ERROR,
			Error:     msg,
		})
	}

	var payload []byte
	if meta.TotalBytes > 0 && meta.TotalBytes <= maxMessageBytes {
		payload = make([]byte, 0, meta.TotalBytes)
	}
	var nextSeq uint64
	for {
		chunk, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("receive chunk: %w", err)
		}
		data := chunk.GetData()
		if data == nil {
			return sendError("unexpected metadata after upload started")
		}
		if data.Sequence != nextSeq {
			return sendError(fmt.Sprintf("chunk sequence gap: got %d, want %d", data.Sequence, nextSeq))
		}
		nextSeq++
		payload = append(payload, data.Payload...)
		if len(payload) > maxMessageBytes {
			return sendError("upload exceeds message size limit")
		}

		// Progress against the declared size, capped until analysis runs.
		progress := uploadProgressCap
		if meta.TotalBytes > 0 {
			progress = uploadProgressCap * float64(len(payload)) / float64(meta.TotalBytes)
			if progress > uploadProgressCap {
				progress = uploadProgressCap
			}
		}
		if err := stream.Send(&pb.DiagnosticResponse{
			RequestId: meta.RequestId,
			Status:    pb.ResponseStatus_PROCESSING,
			Progress:  progress,
		}); err != nil {
			return err
		}
	}
	if len(payload) == 0 {
		return sendError("upload carried no data")
	}

	if err := s.acquire(stream.Context()); err != nil {
		return status.FromContextError(err).Err()
	}
	defer s.release()

	if err := stream.Send(&pb.DiagnosticResponse{
		RequestId: meta.RequestId,
		Status:    pb.ResponseStatus_PROCESSING,
		Progress:  0.5,
	}); err != nil {
		return err
	}

	result, err := s.analyse(stream.Context(), payload, meta.Format, meta.Options)
	if err != nil {
		if st, ok := status.FromError(err); ok && st.Code() == codes.InvalidArgument {
			return sendError(st.Message())
		}
		return err
	}
	return stream.Send(&pb.DiagnosticResponse{
		RequestId: meta.RequestId,
		Status:    pb.ResponseStatus_COMPLETED,
		Progress:  1,
		Result:    result,
	})
}

// DiagnoseBatch analyses each request from the stream, emitting one
// response per request. Responses may interleave out of order; per-request
// failures become ERROR responses rather than failing the stream.
func (s *Server) DiagnoseBatch(stream pb.DiagnosticService_DiagnoseBatchServer) error {
	var (
		sendMu sync.Mutex
		wg     sync.WaitGroup
	)
	send := func(resp *pb.DiagnosticResponse) error {
		sendMu.Lock()
		defer sendMu.Unlock()
		return stream.Send(resp)
	}

	for {
		req, err := stream.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			wg.Wait()
			return fmt.Errorf("receive batch request: %w", err)
		}

		if err := validateRequest(req); err != nil {
			if sendErr := send(&pb.DiagnosticResponse{
				RequestId: req.GetRequestId(),
				Status:    pb.ResponseStatus_ERROR,
				Error:     err.Error(),
			}); sendErr != nil {
				wg.Wait()
				return sendErr
			}
			continue
		}

		if err := s.acquire(stream.Context()); err != nil {
			wg.Wait()
			return status.FromContextError(err).Err()
		}
		wg.Add(1)
		go func(req *pb.DicomRequest) {
			defer wg.Done()
			defer s.release()

			resp := &pb.DiagnosticResponse{RequestId: req.RequestId}
			result, err := s.analyse(stream.Context(), req.Payload, req.Format, req.Options)
			if err != nil {
				resp.Status = pb.ResponseStatus_ERROR
				resp.Error = status.Convert(err).Message()
			} else {
				resp.Status = pb.ResponseStatus_COMPLETED
				resp.Progress = 1
				resp.Result = result
			}
			if err := send(resp); err != nil {
				monitoring.Logf("[Server] batch send failed for %s: %v", req.RequestId, err)
			}
		}(req)
	}

	wg.Wait()
	return nil
}

func validateRequest(req *pb.DicomRequest) error {
	if req == nil || req.RequestId == "" {
		return errors.New("request_id is required")
	}
	if len(req.Payload) == 0 {
		return errors.New("payload is empty")
	}
	if _, ok := dicom.ParseFormat(req.Format); !ok {
		return fmt.Errorf("unknown format %q", req.Format)
	}
	return nil
}
