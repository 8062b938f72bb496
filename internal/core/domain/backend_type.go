package domain

// Backend IDs for the four rename strategies.
const (
	// BackendDXF rewrites the drawing file directly, without AutoCAD.
	BackendDXF = "dxf"
	// BackendCOM drives AutoCAD over raw COM automation.
	BackendCOM = "com"
	// BackendAutoCAD uses the convenience COM wrapper and renames layers
	// of the document currently active in AutoCAD.
	BackendAutoCAD = "autocad"
	// BackendSendKeys injects -LAYER Rename keystrokes into AutoCAD.
	BackendSendKeys = "sendkeys"
)

// BackendType describes a rename backend.
type BackendType struct {
	// ID is the unique identifier (e.g., "dxf", "com").
	ID string
	// Name is the human-readable display name.
	Name string
	// Description provides a brief explanation of the backend.
	Description string
	// Formats lists the input file formats the backend accepts.
	// Empty means the backend does not read files at all.
	Formats []FileFormat
	// NeedsFiles indicates whether the backend takes explicit input and
	// output file paths. The active-document backend does not.
	NeedsFiles bool
	// NeedsLayerList indicates the backend cannot enumerate layers and
	// requires the job to name them explicitly.
	NeedsLayerList bool
	// WindowsOnly indicates the backend drives a Windows application.
	WindowsOnly bool
	// ConfigKeys lists the configuration fields understood by this backend.
	ConfigKeys []ConfigKey
}

// ConfigKey describes a configuration field for a backend.
type ConfigKey struct {
	// Key is the configuration key name.
	Key string
	// Label is the human-readable label for UI display.
	Label string
	// Description explains what this field is for.
	Description string
	// Default is the default value for this field.
	Default string
	// Required indicates whether this field must be provided.
	Required bool
}

// AcceptsFormat reports whether the backend can read the given format.
func (b *BackendType) AcceptsFormat(f FileFormat) bool {
	if len(b.Formats) == 0 {
		return true
	}
	for _, allowed := range b.Formats {
		if f == allowed {
			return true
		}
	}
	return false
}
