package cvat

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Document is a CVAT for images annotation file.
type Document struct {
	XMLName xml.Name `xml:"annotations"`
	Version string   `xml:"version,omitempty"`
	Meta    *Meta    `xml:"meta,omitempty"`
	Images  []Image  `xml:"image"`
}

// Meta keeps the task metadata verbatim so it survives a rewrite untouched.
type Meta struct {
	InnerXML string `xml:",innerxml"`
}

// Image is one annotated image record. Every child element is a shape; its
// element name carries the shape type.
type Image struct {
	ID     int        `xml:"id,attr"`
	Name   string     `xml:"name,attr"`
	Width  int        `xml:"width,attr"`
	Height int        `xml:"height,attr"`
	Attrs  []xml.Attr `xml:",any,attr"`
	Shapes []Shape    `xml:",any"`
}

// Shape is a labeled figure attached to an image: polygon, box, polyline or
// points. Unknown attributes and nested content are preserved verbatim.
type Shape struct {
	XMLName  xml.Name
	Label    string     `xml:"label,attr,omitempty"`
	Points   string     `xml:"points,attr,omitempty"`
	Attrs    []xml.Attr `xml:",any,attr"`
	InnerXML string     `xml:",innerxml"`
}

// Type returns the shape's element name, e.g. "polygon".
func (s Shape) Type() string {
	return s.XMLName.Local
}

// Load reads and parses a CVAT annotation file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read annotation file: %w", err)
	}

	var doc Document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse annotation XML %s: %w", path, err)
	}

	return &doc, nil
}

// Save writes the document with an XML declaration, UTF-8 encoded.
func (d *Document) Save(path string) error {
	data, err := xml.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal annotation XML: %w", err)
	}

	out := append([]byte(xml.Header), data...)
	out = append(out, '\n')

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write annotation file: %w", err)
	}

	return nil
}

// LabelColor returns the color text of the first label defined in the
// document metadata, e.g. "#00ff00". The run's mask color is sourced from it.
func (d *Document) LabelColor() (string, error) {
	if d.Meta == nil {
		return "", errors.New("annotation document has no meta section")
	}

	decoder := xml.NewDecoder(strings.NewReader(d.Meta.InnerXML))
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse meta section: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "label" {
			continue
		}

		var label struct {
			Name  string `xml:"name"`
			Color string `xml:"color"`
		}
		if err := decoder.DecodeElement(&label, &start); err != nil {
			return "", fmt.Errorf("failed to parse label metadata: %w", err)
		}
		if label.Color == "" {
			return "", fmt.Errorf("label %q has no color", label.Name)
		}
		return label.Color, nil
	}

	return "", errors.New("no labels found in annotation metadata")
}
