package domain

// LayerZero is the default layer present in every drawing.
// It cannot be renamed or deleted.
const LayerZero = "0"

// ReservedLayers are layer names that must never be renamed.
// "0" always exists and "Defpoints" is managed by the application itself.
var ReservedLayers = []string{LayerZero, "Defpoints"}

// Layer is a name-bearing record inside a drawing. Prelayn only ever
// mutates the name; everything else about a layer is owned by the
// drawing file or the CAD application.
type Layer struct {
	// Name is the layer name.
	Name string
}

// IsReservedLayer reports whether a layer name is reserved and must be
// left untouched by a rename.
func IsReservedLayer(name string) bool {
	for _, r := range ReservedLayers {
		if name == r {
			return true
		}
	}
	return false
}
