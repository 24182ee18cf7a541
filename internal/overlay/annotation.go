package overlay

import (
	"image"

	"github.com/google/uuid"
)

// Annotation records one committed gesture: a finished stroke, a placed text
// or a placed highlight. The registry backs the select tool's hit testing;
// the pixels themselves live only in the raster layer.
type Annotation struct {
	ID     string
	Kind   ToolKind
	Bounds image.Rectangle
}

func newAnnotation(kind ToolKind, bounds image.Rectangle) Annotation {
	return Annotation{ID: uuid.NewString(), Kind: kind, Bounds: bounds}
}

// hitTest returns the topmost (most recently committed) annotation whose
// bounds contain the point, or nil.
func hitTest(annotations []Annotation, x, y float64) *Annotation {
	pt := image.Pt(int(x), int(y))
	for i := len(annotations) - 1; i >= 0; i-- {
		if pt.In(annotations[i].Bounds) {
			a := annotations[i]
			return &a
		}
	}
	return nil
}
