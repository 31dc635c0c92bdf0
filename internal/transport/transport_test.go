package transport

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/irmsia-data/anomaly.report/internal/config"
	"github.com/irmsia-data/anomaly.report/internal/diagnose"
	"github.com/irmsia-data/anomaly.report/internal/dicom"
	"github.com/irmsia-data/anomaly.report/internal/monitoring"
	"github.com/irmsia-data/anomaly.report/internal/testutil"
	"github.com/irmsia-data/anomaly.report/internal/timeutil"
	"github.com/irmsia-data/anomaly.report/internal/transport/pb"
)

func TestMain(m *testing.M) {
	monitoring.SetLogger(nil)
	m.Run()
}

func testConfig() *config.DiagnosticConfig {
	size := 32
	chunk := 64
	return &config.DiagnosticConfig{
		TargetSize:       &size,
		UploadChunkBytes: &chunk,
	}
}

// startServer serves a DiagnosticService over bufconn and returns a client
// connection to it.
func startServer(t *testing.T, cfg *config.DiagnosticConfig) *grpc.ClientConn {
	return startServerWith(t, cfg, nil)
}

func startServerWith(t *testing.T, cfg *config.DiagnosticConfig, clf diagnose.Classifier) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := NewServer(cfg, clf, nil)
	go func() {
		if err := srv.Serve(lis); err != nil {
			t.Logf("server stopped: %v", err)
		}
	}()
	t.Cleanup(srv.GracefulStop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial bufconn: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

// deadConn returns a connection whose dial always fails, so every RPC
// reports Unavailable.
func deadConn(t *testing.T) *grpc.ClientConn {
	t.Helper()
	conn, err := grpc.NewClient("passthrough:///down",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return nil, errors.New("connection refused")
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("create dead conn: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func newTestClient(t *testing.T, cfg *config.DiagnosticConfig, conn *grpc.ClientConn) (*Client, *timeutil.MockClock) {
	t.Helper()
	clock := timeutil.NewMockClock(time.Unix(0, 0))
	c, err := NewClient(cfg,
		WithClock(clock),
		withRPC(pb.NewDiagnosticServiceClient(conn)),
	)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c, clock
}

func TestHealthCheck(t *testing.T) {
	cfg := testConfig()
	c, _ := newTestClient(t, cfg, startServer(t, cfg))

	info, err := c.Health(context.Background())
	testutil.AssertNoError(t, err)
	if !info.Healthy {
		t.Error("Healthy = false")
	}
	if info.Model == "" {
		t.Error("Model empty")
	}
	if c.Session().State() != StateConnected {
		t.Errorf("session = %v, want connected after healthy check", c.Session().State())
	}
}

func TestDiagnoseRemoteRoundTrip(t *testing.T) {
	cfg := testConfig()
	c, _ := newTestClient(t, cfg, startServer(t, cfg))

	raw := testutil.BlobPNG(t, 64, 64, 10, 10, 50, 50)
	result, err := c.Diagnose(context.Background(), raw, dicom.FormatPNG, diagnose.Options{IncludeSegmentation: true})
	testutil.AssertNoError(t, err)

	if result.Backend != diagnose.BackendRemote {
		t.Errorf("Backend = %q, want remote", result.Backend)
	}
	if result.PrimaryClass == "" {
		t.Error("PrimaryClass empty")
	}
	if result.Measurements.NumRegions != len(result.Regions) {
		t.Errorf("NumRegions = %d, len(Regions) = %d",
			result.Measurements.NumRegions, len(result.Regions))
	}
	if c.Session().State() != StateConnected {
		t.Errorf("session = %v, want connected", c.Session().State())
	}
}

// attentionClassifier answers every tensor with a fixed anomaly and
// attention map, so wire tests can exercise the heatmap-bearing paths.
type attentionClassifier struct {
	hm *diagnose.Heatmap
}

func (a *attentionClassifier) Classify(*dicom.Tensor) (diagnose.Classification, error) {
	return diagnose.Classification{Class: "tumor", Confidence: 0.85}, nil
}

func (a *attentionClassifier) Attention(*dicom.Tensor) (*diagnose.Heatmap, error) {
	return a.hm, nil
}

func TestDiagnoseHeatmapOverWire(t *testing.T) {
	hm := &diagnose.Heatmap{Width: 32, Height: 32, Values: make([]float32, 32*32)}
	for y := 8; y < 24; y++ {
		for x := 8; x < 24; x++ {
			hm.Values[y*32+x] = 0.9
		}
	}
	cfg := testConfig()
	c, _ := newTestClient(t, cfg, startServerWith(t, cfg, &attentionClassifier{hm: hm}))
	raw := testutil.GrayPNG(t, 64, 64, 128)

	result, err := c.Diagnose(context.Background(), raw, dicom.FormatPNG, diagnose.Options{})
	testutil.AssertNoError(t, err)
	if result.Heatmap != nil {
		t.Error("heatmap returned without IncludeHeatmap")
	}

	result, err = c.Diagnose(context.Background(), raw, dicom.FormatPNG, diagnose.Options{IncludeHeatmap: true})
	testutil.AssertNoError(t, err)
	if result.Heatmap == nil {
		t.Fatal("heatmap missing with IncludeHeatmap")
	}
	if diff := cmp.Diff(hm, result.Heatmap); diff != "" {
		t.Errorf("heatmap changed over the wire (-sent +received):\n%s", diff)
	}
	for _, reg := range result.Regions {
		if reg.PathologyLabel != "tumor" {
			t.Errorf("region %d PathologyLabel = %q, want tumor", reg.ID, reg.PathologyLabel)
		}
	}
}

func TestDiagnoseUndecodablePayloadTerminal(t *testing.T) {
	cfg := testConfig()
	c, _ := newTestClient(t, cfg, startServer(t, cfg))

	_, err := c.Diagnose(context.Background(), []byte("garbage"), dicom.FormatAuto, diagnose.Options{})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("error = %v, want ErrInvalidRequest", err)
	}
}

func TestDiagnoseFallsBackWhenUnavailable(t *testing.T) {
	cfg := testConfig()
	c, clock := newTestClient(t, cfg, deadConn(t))

	raw := testutil.GrayPNG(t, 32, 32, 128)
	result, err := c.Diagnose(context.Background(), raw, dicom.FormatPNG, diagnose.Options{})
	testutil.AssertNoError(t, err)

	if result.Backend != diagnose.BackendLocal {
		t.Errorf("Backend = %q, want local fallback", result.Backend)
	}
	if c.Session().State() != StateDegraded {
		t.Errorf("session = %v, want degraded", c.Session().State())
	}
	// Health probes backed off between attempts without real sleeping.
	sleeps := clock.Sleeps()
	if len(sleeps) == 0 {
		t.Fatal("no backoff recorded")
	}
	for i := 1; i < len(sleeps); i++ {
		if sleeps[i] < sleeps[i-1] {
			t.Errorf("backoff shrank: %v after %v", sleeps[i], sleeps[i-1])
		}
	}
}

func TestDiagnoseFallbackDecodeErrorStillTerminal(t *testing.T) {
	cfg := testConfig()
	c, _ := newTestClient(t, cfg, deadConn(t))

	_, err := c.Diagnose(context.Background(), []byte("junk"), dicom.FormatAuto, diagnose.Options{})
	if !errors.Is(err, dicom.ErrUnsupportedFormat) {
		t.Errorf("error = %v, want ErrUnsupportedFormat from local pipeline", err)
	}
}

func TestStreamedMatchesUnary(t *testing.T) {
	cfg := testConfig()
	c, _ := newTestClient(t, cfg, startServer(t, cfg))
	raw := testutil.BlobPNG(t, 64, 64, 12, 12, 52, 52)
	opts := diagnose.Options{IncludeSegmentation: true}

	unary, err := c.Diagnose(context.Background(), raw, dicom.FormatPNG, opts)
	testutil.AssertNoError(t, err)

	var progress []float64
	streamed, err := c.DiagnoseStreamed(context.Background(), raw, dicom.FormatPNG, opts, func(p float64) {
		progress = append(progress, p)
	})
	testutil.AssertNoError(t, err)

	// Chunked upload and unary analysis of the same bytes agree.
	if diff := cmp.Diff(unary, streamed, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("streamed result differs from unary (-unary +streamed):\n%s", diff)
	}

	if len(progress) == 0 {
		t.Fatal("no progress observed")
	}
	for i := 1; i < len(progress); i++ {
		if progress[i] < progress[i-1] {
			t.Errorf("progress regressed: %v", progress)
		}
	}
	if progress[len(progress)-1] != 1 {
		t.Errorf("final progress = %v, want 1", progress[len(progress)-1])
	}
	// Upload-phase updates stay within the cap.
	for _, p := range progress[:len(progress)-1] {
		if p < 1 && p > 0.5 {
			t.Errorf("intermediate progress %v above analysis mark", p)
		}
	}
}

func TestStreamSequenceGapIsTerminalError(t *testing.T) {
	cfg := testConfig()
	conn := startServer(t, cfg)
	rpc := pb.NewDiagnosticServiceClient(conn)

	stream, err := rpc.DiagnoseStream(context.Background())
	testutil.AssertNoError(t, err)

	err = stream.Send(&pb.UploadChunk{Content: &pb.UploadChunk_Metadata{Metadata: &pb.UploadMetadata{
		RequestId:  "req-gap",
		TotalBytes: 100,
		Format:     "png",
	}}})
	testutil.AssertNoError(t, err)

	// Skip sequence 0 entirely.
	err = stream.Send(&pb.UploadChunk{Content: &pb.UploadChunk_Data{Data: &pb.DataChunk{
		Sequence: 5,
		Payload:  []byte("x"),
	}}})
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, stream.CloseSend())

	var terminal *pb.DiagnosticResponse
	for {
		resp, err := stream.Recv()
		if err == io.EOF {
			break
		}
		testutil.AssertNoError(t, err)
		terminal = resp
	}
	if terminal == nil {
		t.Fatal("no terminal response")
	}
	if terminal.Status != pb.ResponseStatus_ERROR {
		t.Errorf("Status = %v, want ERROR", terminal.Status)
	}
}

func TestStreamMetadataFirstEnforced(t *testing.T) {
	cfg := testConfig()
	conn := startServer(t, cfg)
	rpc := pb.NewDiagnosticServiceClient(conn)

	stream, err := rpc.DiagnoseStream(context.Background())
	testutil.AssertNoError(t, err)

	err = stream.Send(&pb.UploadChunk{Content: &pb.UploadChunk_Data{Data: &pb.DataChunk{
		Sequence: 0,
		Payload:  []byte("x"),
	}}})
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, stream.CloseSend())

	_, err = stream.Recv()
	if err == nil {
		t.Fatal("expected stream error for data before metadata")
	}
}

func TestBatchCorrelation(t *testing.T) {
	cfg := testConfig()
	c, _ := newTestClient(t, cfg, startServer(t, cfg))

	items := []BatchItem{
		{ID: "a", Payload: testutil.GrayPNG(t, 32, 32, 100), Format: dicom.FormatPNG},
		{ID: "b", Payload: nil, Format: dicom.FormatPNG}, // invalid: empty payload
		{ID: "c", Payload: testutil.BlobPNG(t, 32, 32, 4, 4, 28, 28), Format: dicom.FormatPNG},
	}

	results, errs := c.DiagnoseBatch(context.Background(), items)

	if results[0] == nil || errs[0] != nil {
		t.Errorf("item a: result=%v err=%v, want success", results[0], errs[0])
	}
	if results[0] != nil && results[0].Backend != diagnose.BackendRemote {
		t.Errorf("item a backend = %q, want remote", results[0].Backend)
	}
	if errs[1] == nil || !errors.Is(errs[1], ErrInvalidRequest) {
		t.Errorf("item b err = %v, want ErrInvalidRequest", errs[1])
	}
	if results[2] == nil || errs[2] != nil {
		t.Errorf("item c: result=%v err=%v, want success", results[2], errs[2])
	}
	// The flat gray image and the blob image classify differently, so the
	// correlation is observable, not just positional.
	if results[0] != nil && results[2] != nil {
		if results[0].PrimaryClass == results[2].PrimaryClass {
			t.Logf("warning: items a and c classified identically (%s)", results[0].PrimaryClass)
		}
	}
}

func TestBatchFallsBackWhenUnavailable(t *testing.T) {
	cfg := testConfig()
	c, _ := newTestClient(t, cfg, deadConn(t))

	items := []BatchItem{
		{Payload: testutil.GrayPNG(t, 32, 32, 90), Format: dicom.FormatPNG},
		{Payload: testutil.GrayPNG(t, 32, 32, 200), Format: dicom.FormatPNG},
	}
	results, errs := c.DiagnoseBatch(context.Background(), items)
	for i := range items {
		testutil.AssertNoError(t, errs[i])
		if results[i].Backend != diagnose.BackendLocal {
			t.Errorf("item %d backend = %q, want local", i, results[i].Backend)
		}
	}
}

func TestConcurrentDiagnosesOnDegradedSession(t *testing.T) {
	cfg := testConfig()
	c, _ := newTestClient(t, cfg, deadConn(t))
	raw := testutil.GrayPNG(t, 32, 32, 128)

	var wg sync.WaitGroup
	results := make([]*diagnose.DiagnosticResult, 6)
	errs := make([]error, 6)
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = c.Diagnose(context.Background(), raw, dicom.FormatPNG, diagnose.Options{})
		}(i)
	}
	wg.Wait()

	for i := range results {
		testutil.AssertNoError(t, errs[i])
		if results[i].Backend != diagnose.BackendLocal {
			t.Errorf("call %d backend = %q, want local", i, results[i].Backend)
		}
	}
}

func TestCancellationDoesNotMutateSession(t *testing.T) {
	cfg := testConfig()
	c, _ := newTestClient(t, cfg, startServer(t, cfg))

	// Establish a healthy session first.
	_, err := c.Health(context.Background())
	testutil.AssertNoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Diagnose(ctx, testutil.GrayPNG(t, 32, 32, 50), dicom.FormatPNG, diagnose.Options{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if c.Session().State() != StateConnected {
		t.Errorf("session = %v, want still connected after caller cancellation", c.Session().State())
	}
}

func TestServerBoundedInFlight(t *testing.T) {
	one := 1
	cfg := testConfig()
	cfg.MaxInFlight = &one
	c, _ := newTestClient(t, cfg, startServer(t, cfg))
	raw := testutil.BlobPNG(t, 64, 64, 10, 10, 50, 50)

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = c.Diagnose(context.Background(), raw, dicom.FormatPNG, diagnose.Options{})
		}(i)
	}
	wg.Wait()

	// A single-slot server still serves everyone, just serially.
	for i, err := range errs {
		if err != nil {
			t.Errorf("call %d failed: %v", i, err)
		}
	}
}

func TestCloseTerminatesSession(t *testing.T) {
	cfg := testConfig()
	c, _ := newTestClient(t, cfg, startServer(t, cfg))

	testutil.AssertNoError(t, c.Close())
	if !c.Session().Closed() {
		t.Error("session not closed after Close")
	}

	raw := testutil.GrayPNG(t, 32, 32, 128)
	result, err := c.Diagnose(context.Background(), raw, dicom.FormatPNG, diagnose.Options{})
	testutil.AssertNoError(t, err)
	if result.Backend != diagnose.BackendLocal {
		t.Errorf("Backend = %q, want local on closed session", result.Backend)
	}
}
