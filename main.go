package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/irmsia-data/anomaly.report/internal/auditlog"
	"github.com/irmsia-data/anomaly.report/internal/config"
	"github.com/irmsia-data/anomaly.report/internal/diagnose"
	"github.com/irmsia-data/anomaly.report/internal/dicom"
	"github.com/irmsia-data/anomaly.report/internal/report"
	"github.com/irmsia-data/anomaly.report/internal/transport"
)

var (
	mode       = flag.String("mode", "diagnose", "Run mode: serve, diagnose, report, audit")
	configPath = flag.String("config", "", "Path to JSON tuning config")
	input      = flag.String("input", "", "Path to the image file to analyse")
	formatHint = flag.String("format", "auto", "Input format: auto, dicom, png, jpeg")
	segment    = flag.Bool("segment", false, "Include segmentation mask")
	jsonOut    = flag.Bool("json", false, "Emit the report as JSON")
	chartOut   = flag.String("chart", "", "Write an HTML region chart to this path")
	listen     = flag.String("listen", "", "Listen address (serve mode, overrides config)")
	remote     = flag.String("remote", "", "Remote compute address (overrides config)")
	auditN     = flag.Int("n", 20, "Number of audit entries to list")
)

func main() {
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *listen != "" {
		cfg.ListenAddr = listen
	}
	if *remote != "" {
		cfg.RemoteAddr = remote
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var err error
	switch *mode {
	case "serve":
		err = runServe(ctx, cfg)
	case "diagnose", "report":
		err = runDiagnose(ctx, cfg, *mode == "report")
	case "audit":
		err = runAudit(ctx, cfg)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
}

// runServe hosts the DiagnosticService until interrupted.
func runServe(ctx context.Context, cfg *config.DiagnosticConfig) error {
	lis, err := net.Listen("tcp", cfg.GetListenAddr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.GetListenAddr(), err)
	}

	srv := transport.NewServer(cfg, nil, nil)
	go func() {
		<-ctx.Done()
		log.Printf("[Main] shutting down")
		srv.GracefulStop()
	}()
	return srv.Serve(lis)
}

// runDiagnose analyses one image via the remote-with-fallback client and
// prints either the raw result or a rendered report.
func runDiagnose(ctx context.Context, cfg *config.DiagnosticConfig, renderReport bool) error {
	if *input == "" {
		return fmt.Errorf("-input is required")
	}
	raw, err := os.ReadFile(*input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	hint, ok := dicom.ParseFormat(*formatHint)
	if !ok {
		return fmt.Errorf("unknown format %q", *formatHint)
	}

	store, err := auditlog.Open(cfg.GetAuditDBPath())
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer store.Close()

	client, err := transport.NewClient(cfg, transport.WithAudit(auditlog.NewNotifier(store)))
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Connect(ctx); err != nil {
		log.Printf("[Main] remote unavailable, analysis may run locally: %v", err)
	}

	result, err := client.Diagnose(ctx, raw, hint, diagnose.Options{IncludeSegmentation: *segment})
	if err != nil {
		return fmt.Errorf("diagnose: %w", err)
	}

	rep := report.NewGenerator(nil).Generate(result, "")
	if *chartOut != "" {
		f, err := os.Create(*chartOut)
		if err != nil {
			return fmt.Errorf("create chart file: %w", err)
		}
		defer f.Close()
		if err := report.RenderRegionChart(result, f); err != nil {
			return err
		}
		log.Printf("[Main] chart written to %s", *chartOut)
	}

	switch {
	case *jsonOut:
		data, err := rep.ExportJSON()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case renderReport:
		fmt.Print(rep.Text())
	default:
		fmt.Printf("%s (%s, %.0f%% confidence) severity=%s urgency=%s regions=%d backend=%s\n",
			rep.OverallAssessment, result.PrimaryClass, result.Confidence*100,
			result.Severity, result.Urgency, len(result.Regions), result.Backend)
	}
	return nil
}

// runAudit lists recent audit entries.
func runAudit(ctx context.Context, cfg *config.DiagnosticConfig) error {
	store, err := auditlog.Open(cfg.GetAuditDBPath())
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer store.Close()

	entries, err := store.Recent(ctx, *auditN)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no audit entries")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%s  %-24s %-12s %s\n", e.At.Format("2006-01-02 15:04:05"), e.Action, e.UserID, e.ImageID)
	}
	return nil
}
