package cvat

import "path"

// Index resolves annotation records by image file name. Names are reduced to
// their base name before matching, so "frames/img_0001.jpg" and
// "img_0001.jpg" refer to the same record. When several records share a base
// name the last one in document order wins.
type Index struct {
	records map[string]*Image
}

// NewIndex builds an index over the document's image records.
func NewIndex(doc *Document) *Index {
	records := make(map[string]*Image, len(doc.Images))
	for i := range doc.Images {
		img := &doc.Images[i]
		records[path.Base(img.Name)] = img
	}
	return &Index{records: records}
}

// Lookup returns the record stored under the name's base name.
func (ix *Index) Lookup(name string) (*Image, bool) {
	img, ok := ix.records[path.Base(name)]
	return img, ok
}

// Len returns the number of distinct base names in the index.
func (ix *Index) Len() int {
	return len(ix.records)
}
