package manifest

import (
	"path/filepath"

	"github.com/arthur-debert/wixsync/pkg/errors"
	"github.com/arthur-debert/wixsync/pkg/types"
	"github.com/beevik/etree"
)

// Element names consumed or produced
const (
	TagProduct      = "Product"
	TagDirectory    = "Directory"
	TagComponent    = "Component"
	TagFile         = "File"
	TagFeature      = "Feature"
	TagComponentRef = "ComponentRef"
)

// Attribute names consumed or produced
const (
	AttrID     = "Id"
	AttrName   = "Name"
	AttrGUID   = "Guid"
	AttrDiskID = "DiskId"
	AttrSource = "Source"
)

// Document is a loaded manifest.
type Document struct {
	doc       *etree.Document
	path      string
	prefix    string
	namespace string
}

// Load reads and parses the manifest at path.
func Load(fsys types.FS, path string) (*Document, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestRead, "failed to read manifest %s", path).
			WithDetail("path", path)
	}
	return Parse(data, path)
}

// Parse builds a Document from raw XML. path is the location the document
// is saved to and the base for relative sources.
func Parse(data []byte, path string) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestParse, "failed to parse manifest %s", path).
			WithDetail("path", path)
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.Newf(errors.ErrManifestParse, "manifest %s has no root element", path).
			WithDetail("path", path)
	}
	return &Document{
		doc:       doc,
		path:      path,
		prefix:    root.Space,
		namespace: root.NamespaceURI(),
	}, nil
}

// Path returns where the document is saved.
func (d *Document) Path() string {
	return d.path
}

// Dir returns the directory containing the document.
func (d *Document) Dir() string {
	return filepath.Dir(d.path)
}

// Namespace returns the namespace URI of the root element.
func (d *Document) Namespace() string {
	return d.namespace
}

// Bytes serializes the document indented with the given number of spaces.
func (d *Document) Bytes(indent int) ([]byte, error) {
	d.doc.Indent(indent)
	data, err := d.doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestWrite, "failed to serialize manifest")
	}
	return data, nil
}

// Save writes the document back to its path in a single write.
func (d *Document) Save(fsys types.FS, indent int) error {
	data, err := d.Bytes(indent)
	if err != nil {
		return err
	}
	if err := fsys.WriteFile(d.path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrManifestWrite, "failed to write manifest %s", d.path).
			WithDetail("path", d.path)
	}
	return nil
}

// Components returns every Component in the document.
func (d *Document) Components() []Component {
	var out []Component
	for _, el := range d.descendants(TagComponent) {
		out = append(out, Component{doc: d, el: el})
	}
	return out
}

// DirectoriesByID returns every Directory whose Id equals id, in document order.
func (d *Document) DirectoriesByID(id string) []Directory {
	var out []Directory
	for _, el := range d.descendants(TagDirectory) {
		if el.SelectAttrValue(AttrID, "") == id {
			out = append(out, Directory{doc: d, el: el})
		}
	}
	return out
}

// Product returns the Product element.
func (d *Document) Product() (Product, bool) {
	products := d.descendants(TagProduct)
	if len(products) == 0 {
		return Product{}, false
	}
	return Product{el: products[0]}, true
}

// Feature returns the Feature with the given Id, or the first Feature in
// the document when id is empty.
func (d *Document) Feature(id string) (Feature, bool) {
	for _, el := range d.descendants(TagFeature) {
		if id == "" || el.SelectAttrValue(AttrID, "") == id {
			return Feature{doc: d, el: el}, true
		}
	}
	return Feature{}, false
}

func (d *Document) is(el *etree.Element, tag string) bool {
	return el.Tag == tag && el.NamespaceURI() == d.namespace
}

func (d *Document) qualify(tag string) string {
	if d.prefix == "" {
		return tag
	}
	return d.prefix + ":" + tag
}

func (d *Document) children(parent *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	for _, el := range parent.ChildElements() {
		if d.is(el, tag) {
			out = append(out, el)
		}
	}
	return out
}

// descendants walks the tree in document order, root included.
func (d *Document) descendants(tag string) []*etree.Element {
	var out []*etree.Element
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		if d.is(el, tag) {
			out = append(out, el)
		}
		for _, child := range el.ChildElements() {
			walk(child)
		}
	}
	walk(d.doc.Root())
	return out
}
