package manifest

// FileName is the manifest's name inside an output directory.
const FileName = "textart.manifest.json"

// Manifest is the top-level output of a textart build.
type Manifest struct {
	Version     int              `json:"version"`
	GeneratedAt string           `json:"generated_at"`
	Profile     string           `json:"profile"`
	CharMap     string           `json:"charmap"`
	BasePath    string           `json:"base_path"`
	BuildInfo   *BuildInfo       `json:"build_info,omitempty"`
	Assets      map[string]Asset `json:"assets"`
	Stats       Stats            `json:"stats"`
}

// BuildInfo captures build-time parameters for diagnostics.
type BuildInfo struct {
	Workers int `json:"workers"`
}

// Asset describes a single source image and the art generated from it.
type Asset struct {
	Original OriginalInfo `json:"original"`
	Cols     int          `json:"cols"`
	Rows     int          `json:"rows"`
	Block    [2]int       `json:"block"`               // subpixel block [w,h]
	AvgColor *[3]uint8    `json:"avg_color,omitempty"` // [R,G,B] 0-255 over the color buffer
	Outputs  []Output     `json:"outputs"`
}

// OriginalInfo holds metadata about the source image.
type OriginalInfo struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
	Size   int64  `json:"size"`
}

// Output is one written file of an asset.
type Output struct {
	Format string `json:"format"` // "txt", "ans"
	Cols   int    `json:"cols"`
	Rows   int    `json:"rows"`
	Size   int64  `json:"size"` // bytes on disk
	Hash   string `json:"hash"` // first 16 hex chars of xxhash64
	Path   string `json:"path"` // relative to base_path
}

// Stats aggregates build metrics.
type Stats struct {
	TotalInputBytes  int64 `json:"total_input_bytes"`
	TotalOutputBytes int64 `json:"total_output_bytes"`
	TotalAssets      int   `json:"total_assets"`
	TotalOutputs     int   `json:"total_outputs"`
	TotalCells       int64 `json:"total_cells"`
}

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1
