package cvat

import (
	"path"
	"strings"
)

// InvertIDs renumbers image ids so the last of n images gets id 0 and the
// first gets n-1. CVAT assigns ids in upload order, so re-uploading a
// reversed frame sequence needs exactly this renumbering.
func InvertIDs(doc *Document) {
	n := len(doc.Images)
	for i := range doc.Images {
		doc.Images[i].ID = n - (doc.Images[i].ID + 1)
	}
}

// ForceExtension rewrites every image name to carry ext, e.g. ".png".
func ForceExtension(doc *Document, ext string) {
	for i := range doc.Images {
		name := doc.Images[i].Name
		doc.Images[i].Name = strings.TrimSuffix(name, path.Ext(name)) + ext
	}
}

// StripDirectories drops any directory portion from image names.
func StripDirectories(doc *Document) {
	for i := range doc.Images {
		doc.Images[i].Name = path.Base(doc.Images[i].Name)
	}
}
