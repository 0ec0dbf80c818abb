package cvat

import "fmt"

// MalformedShapeError reports a shape that cannot be rasterized: fewer than
// three points, or point text that does not parse. It makes the whole image
// record unusable, but only that record.
type MalformedShapeError struct {
	Index  int    // position of the shape within its image record
	Kind   string // shape element name, e.g. "polygon"
	Reason string
}

func (e *MalformedShapeError) Error() string {
	return fmt.Sprintf("shape %d (%s): %s", e.Index, e.Kind, e.Reason)
}
