package scene

// MaterialKind is the closed set of shading modes the preview material can
// swap between.
type MaterialKind int

const (
	MaterialStandard MaterialKind = iota // lit solid shading
	MaterialWireframe
	MaterialNormal // normal-vector shading
	MaterialBasic  // flat unlit color
)

func (k MaterialKind) String() string {
	switch k {
	case MaterialStandard:
		return "standard"
	case MaterialWireframe:
		return "wireframe"
	case MaterialNormal:
		return "normal"
	case MaterialBasic:
		return "basic"
	default:
		return "unknown"
	}
}

// ParseMaterialKind maps a config string to a material kind; unknown names
// fall back to standard.
func ParseMaterialKind(name string) MaterialKind {
	switch name {
	case "wireframe":
		return MaterialWireframe
	case "normal":
		return MaterialNormal
	case "basic":
		return MaterialBasic
	default:
		return MaterialStandard
	}
}

// Color is an 8-bit RGBA color
type Color struct {
	R, G, B, A uint8
}

// Material describes how an object surface is drawn
type Material struct {
	Kind  MaterialKind
	Color Color
}

// DefaultMaterial returns the standard gray used for untinted meshes
func DefaultMaterial() Material {
	return Material{
		Kind:  MaterialStandard,
		Color: Color{R: 180, G: 180, B: 190, A: 255},
	}
}
