package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DiagnosticConfig represents the tuning parameters for the analysis
// pipeline and the transport layer. All fields are optional pointers so a
// partial JSON file only overrides what it names; the Get* accessors supply
// defaults for everything else.
type DiagnosticConfig struct {
	// Preprocessing params
	TargetSize *int `json:"target_size,omitempty"` // canonical square resolution

	// Region extraction params
	HeatmapThreshold  *float64 `json:"heatmap_threshold,omitempty"`
	MinRegionArea     *int     `json:"min_region_area,omitempty"`
	EdgeMinRegionArea *int     `json:"edge_min_region_area,omitempty"`

	// Segmentation params
	MaskThreshold *float64 `json:"mask_threshold,omitempty"`

	// Fallback classifier params
	EdgeDensityThreshold  *float64 `json:"edge_density_threshold,omitempty"`
	IntensityStdThreshold *float64 `json:"intensity_std_threshold,omitempty"`

	// Region filtering params
	ConfidenceThreshold *float64 `json:"confidence_threshold,omitempty"`

	// Transport params
	RemoteAddr       *string `json:"remote_addr,omitempty"`
	ListenAddr       *string `json:"listen_addr,omitempty"`
	MaxRetries       *int    `json:"max_retries,omitempty"`
	BackoffBase      *string `json:"backoff_base,omitempty"` // duration string like "1s"
	BackoffCap       *string `json:"backoff_cap,omitempty"`  // duration string like "30s"
	CallTimeout      *string `json:"call_timeout,omitempty"` // inference RPC deadline
	HealthTimeout    *string `json:"health_timeout,omitempty"`
	MaxInFlight      *int    `json:"max_in_flight,omitempty"`
	UploadChunkBytes *int    `json:"upload_chunk_bytes,omitempty"`

	// Audit params
	AuditDBPath *string `json:"audit_db_path,omitempty"`
}

// DefaultConfig returns a DiagnosticConfig with all fields unset, so every
// accessor reports its built-in default.
func DefaultConfig() *DiagnosticConfig {
	return &DiagnosticConfig{}
}

// LoadConfig loads a DiagnosticConfig from a JSON file. Fields omitted from
// the file retain their defaults, so partial configs are safe.
func LoadConfig(path string) (*DiagnosticConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	// Check file size for safety (max 1MB)
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are usable.
func (c *DiagnosticConfig) Validate() error {
	if c.TargetSize != nil && *c.TargetSize < 16 {
		return fmt.Errorf("target_size must be at least 16, got %d", *c.TargetSize)
	}
	if c.HeatmapThreshold != nil {
		if *c.HeatmapThreshold < 0 || *c.HeatmapThreshold > 1 {
			return fmt.Errorf("heatmap_threshold must be between 0 and 1, got %f", *c.HeatmapThreshold)
		}
	}
	if c.MaskThreshold != nil {
		if *c.MaskThreshold < 0 || *c.MaskThreshold > 1 {
			return fmt.Errorf("mask_threshold must be between 0 and 1, got %f", *c.MaskThreshold)
		}
	}
	if c.MinRegionArea != nil && *c.MinRegionArea < 0 {
		return fmt.Errorf("min_region_area must be non-negative, got %d", *c.MinRegionArea)
	}
	if c.MaxRetries != nil && *c.MaxRetries < 1 {
		return fmt.Errorf("max_retries must be at least 1, got %d", *c.MaxRetries)
	}
	if c.MaxInFlight != nil && *c.MaxInFlight < 1 {
		return fmt.Errorf("max_in_flight must be at least 1, got %d", *c.MaxInFlight)
	}
	for name, v := range map[string]*string{
		"backoff_base":   c.BackoffBase,
		"backoff_cap":    c.BackoffCap,
		"call_timeout":   c.CallTimeout,
		"health_timeout": c.HealthTimeout,
	} {
		if v != nil && *v != "" {
			if _, err := time.ParseDuration(*v); err != nil {
				return fmt.Errorf("invalid %s '%s': %w", name, *v, err)
			}
		}
	}
	return nil
}

// GetTargetSize returns the canonical tensor resolution or the default.
func (c *DiagnosticConfig) GetTargetSize() int {
	if c.TargetSize == nil {
		return 224
	}
	return *c.TargetSize
}

// GetHeatmapThreshold returns the region heatmap cutoff or the default.
func (c *DiagnosticConfig) GetHeatmapThreshold() float64 {
	if c.HeatmapThreshold == nil {
		return 0.5
	}
	return *c.HeatmapThreshold
}

// GetMinRegionArea returns the heatmap-path minimum component area (px²).
func (c *DiagnosticConfig) GetMinRegionArea() int {
	if c.MinRegionArea == nil {
		return 50
	}
	return *c.MinRegionArea
}

// GetEdgeMinRegionArea returns the edge-path minimum component area (px²).
// Edge-derived regions are noisier, so the floor is larger.
func (c *DiagnosticConfig) GetEdgeMinRegionArea() int {
	if c.EdgeMinRegionArea == nil {
		return 100
	}
	return *c.EdgeMinRegionArea
}

// GetMaskThreshold returns the segmentation heatmap cutoff or the default.
// Looser than the region threshold: the mask prefers over-segmentation.
func (c *DiagnosticConfig) GetMaskThreshold() float64 {
	if c.MaskThreshold == nil {
		return 0.3
	}
	return *c.MaskThreshold
}

// GetEdgeDensityThreshold returns the fallback classifier's edge cutoff.
func (c *DiagnosticConfig) GetEdgeDensityThreshold() float64 {
	if c.EdgeDensityThreshold == nil {
		return 0.05
	}
	return *c.EdgeDensityThreshold
}

// GetIntensityStdThreshold returns the fallback classifier's std cutoff.
func (c *DiagnosticConfig) GetIntensityStdThreshold() float64 {
	if c.IntensityStdThreshold == nil {
		return 0.25
	}
	return *c.IntensityStdThreshold
}

// GetConfidenceThreshold returns the minimum region confidence kept in
// results.
func (c *DiagnosticConfig) GetConfidenceThreshold() float64 {
	if c.ConfidenceThreshold == nil {
		return 0.5
	}
	return *c.ConfidenceThreshold
}

// GetRemoteAddr returns the compute service address or the default.
func (c *DiagnosticConfig) GetRemoteAddr() string {
	if c.RemoteAddr == nil || *c.RemoteAddr == "" {
		return "localhost:50051"
	}
	return *c.RemoteAddr
}

// GetListenAddr returns the serve-mode listen address or the default.
func (c *DiagnosticConfig) GetListenAddr() string {
	if c.ListenAddr == nil || *c.ListenAddr == "" {
		return "localhost:50051"
	}
	return *c.ListenAddr
}

// GetMaxRetries returns the transient-failure retry budget.
func (c *DiagnosticConfig) GetMaxRetries() int {
	if c.MaxRetries == nil {
		return 3
	}
	return *c.MaxRetries
}

// GetBackoffBase returns the initial reconnect backoff delay.
func (c *DiagnosticConfig) GetBackoffBase() time.Duration {
	return durationOr(c.BackoffBase, time.Second)
}

// GetBackoffCap returns the maximum reconnect backoff delay.
func (c *DiagnosticConfig) GetBackoffCap() time.Duration {
	return durationOr(c.BackoffCap, 30*time.Second)
}

// GetCallTimeout returns the per-call inference RPC deadline.
func (c *DiagnosticConfig) GetCallTimeout() time.Duration {
	return durationOr(c.CallTimeout, 60*time.Second)
}

// GetHealthTimeout returns the health check deadline.
func (c *DiagnosticConfig) GetHealthTimeout() time.Duration {
	return durationOr(c.HealthTimeout, 5*time.Second)
}

// GetMaxInFlight returns the server's concurrent request bound.
func (c *DiagnosticConfig) GetMaxInFlight() int {
	if c.MaxInFlight == nil {
		return 16
	}
	return *c.MaxInFlight
}

// GetUploadChunkBytes returns the streamed-upload chunk size.
func (c *DiagnosticConfig) GetUploadChunkBytes() int {
	if c.UploadChunkBytes == nil {
		return 4 * 1024 * 1024 // 4MB
	}
	return *c.UploadChunkBytes
}

// GetAuditDBPath returns the audit log database path or the default.
func (c *DiagnosticConfig) GetAuditDBPath() string {
	if c.AuditDBPath == nil || *c.AuditDBPath == "" {
		return "audit.db"
	}
	return *c.AuditDBPath
}

func durationOr(v *string, def time.Duration) time.Duration {
	if v == nil || *v == "" {
		return def
	}
	d, err := time.ParseDuration(*v)
	if err != nil {
		return def
	}
	return d
}
