package plan

import "github.com/rehmanul/CAD-Analysis/pkg/geo"

// Wall is a straight obstacle segment with lateral thickness.
// Walls are produced by the importer and never modified by the core.
type Wall struct {
	Start     geo.Point2D `yaml:"start" json:"start"`
	End       geo.Point2D `yaml:"end" json:"end"`
	Thickness float64     `yaml:"thickness" json:"thickness"`
}

// Segment returns the wall centerline.
func (w Wall) Segment() geo.Segment {
	return geo.Seg(w.Start, w.End)
}

// OpeningKind distinguishes doors from windows.
type OpeningKind string

const (
	OpeningDoor   OpeningKind = "door"
	OpeningWindow OpeningKind = "window"
)

// Opening is a door or window: a point obstacle with a lateral
// clearance zone. Doors additionally reserve their swing arc.
type Opening struct {
	Position   geo.Point2D       `yaml:"position" json:"position"`
	Width      float64           `yaml:"width" json:"width"`
	Height     float64           `yaml:"height" json:"height"`
	Kind       OpeningKind       `yaml:"kind" json:"kind"`
	Attributes map[string]string `yaml:"attributes,omitempty" json:"attributes,omitempty"`
}

// ClearanceRadius returns the radius reserved around the opening.
// A door reserves its full swing arc; a window only its footprint.
func (o Opening) ClearanceRadius() float64 {
	if o.Kind == OpeningDoor {
		return o.Width
	}
	return o.Width / 2
}

// RestrictedArea is a no-placement zone requiring an extra buffer.
type RestrictedArea struct {
	Bounds geo.Rect `yaml:"bounds" json:"bounds"`
	Kind   string   `yaml:"kind" json:"kind"`
}

// FloorPlan is the complete immutable input to the analysis core.
// It is owned by the external importer and read-only here.
type FloorPlan struct {
	Walls           []Wall           `yaml:"walls" json:"walls"`
	Openings        []Opening        `yaml:"openings" json:"openings"`
	RestrictedAreas []RestrictedArea `yaml:"restricted_areas" json:"restricted_areas"`
	Bounds          geo.Rect         `yaml:"bounds" json:"bounds"`
	TotalArea       float64          `yaml:"total_area" json:"total_area"`
	UsableArea      float64          `yaml:"usable_area" json:"usable_area"`
}

// UsableArea is one flood-filled free region, reported as its
// axis-aligned bounding rectangle.
type UsableArea struct {
	Bounds geo.Rect `json:"bounds"`
}

// Corners returns the four rectangle corners in counterclockwise order.
func (u UsableArea) Corners() [4]geo.Point2D {
	return u.Bounds.Corners()
}

// SizeClass categorizes placement blocks by footprint area.
type SizeClass string

const (
	SizeSmall  SizeClass = "small"  // ≤ 6 m²
	SizeMedium SizeClass = "medium" // ≤ 10 m²
	SizeLarge  SizeClass = "large"  // > 10 m²
)

// PlacementBlock is a rectangular unit placed in usable floor space.
// Position and size are mutable during optimization only; blocks
// returned from the pipeline are final.
type PlacementBlock struct {
	ID         string      `json:"id"`
	Position   geo.Point2D `json:"position"` // center
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	Area       float64     `json:"area"`
	SizeClass  SizeClass   `json:"size_class"`
	Clearance  float64     `json:"clearance"`
	Accessible bool        `json:"accessible"`
}

// Bounds returns the block's axis-aligned bounding box.
func (b PlacementBlock) Bounds() geo.Rect {
	return geo.RectFromCenter(b.Position, b.Width, b.Height)
}

// PathwayKind identifies a circulation tier.
type PathwayKind string

const (
	PathwayMain      PathwayKind = "main"
	PathwaySecondary PathwayKind = "secondary"
	PathwayEmergency PathwayKind = "emergency"
)

// Pathway is a circulation segment connecting placement blocks.
type Pathway struct {
	ID         string        `json:"id"`
	Path       []geo.Point2D `json:"path"` // polyline, at least 2 points
	Width      float64       `json:"width"`
	Kind       PathwayKind   `json:"kind"`
	Length     float64       `json:"length"`
	Accessible bool          `json:"accessible"`
}

// Segments returns the pathway polyline as consecutive segments.
func (p Pathway) Segments() []geo.Segment {
	if len(p.Path) < 2 {
		return nil
	}
	segs := make([]geo.Segment, 0, len(p.Path)-1)
	for i := 1; i < len(p.Path); i++ {
		segs = append(segs, geo.Seg(p.Path[i-1], p.Path[i]))
	}
	return segs
}
