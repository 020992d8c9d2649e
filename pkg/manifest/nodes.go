package manifest

import (
	"slices"

	"github.com/beevik/etree"
)

// Directory is a view over a Directory element.
type Directory struct {
	doc *Document
	el  *etree.Element
}

func (n Directory) ID() string   { return n.el.SelectAttrValue(AttrID, "") }
func (n Directory) Name() string { return n.el.SelectAttrValue(AttrName, "") }

// Directories returns the child Directory elements.
func (n Directory) Directories() []Directory {
	var out []Directory
	for _, el := range n.doc.children(n.el, TagDirectory) {
		out = append(out, Directory{doc: n.doc, el: el})
	}
	return out
}

// FindDirectory returns the child Directory with the given Name.
func (n Directory) FindDirectory(name string) (Directory, bool) {
	for _, child := range n.Directories() {
		if child.Name() == name {
			return child, true
		}
	}
	return Directory{}, false
}

// AddDirectory appends a child Directory.
func (n Directory) AddDirectory(id, name string) Directory {
	el := n.el.CreateElement(n.doc.qualify(TagDirectory))
	el.CreateAttr(AttrID, id)
	el.CreateAttr(AttrName, name)
	return Directory{doc: n.doc, el: el}
}

// Components returns the child Component elements.
func (n Directory) Components() []Component {
	var out []Component
	for _, el := range n.doc.children(n.el, TagComponent) {
		out = append(out, Component{doc: n.doc, el: el})
	}
	return out
}

// AddComponent appends a child Component.
func (n Directory) AddComponent(id, guid, diskID string) Component {
	el := n.el.CreateElement(n.doc.qualify(TagComponent))
	el.CreateAttr(AttrID, id)
	el.CreateAttr(AttrGUID, guid)
	el.CreateAttr(AttrDiskID, diskID)
	return Component{doc: n.doc, el: el}
}

// RemoveComponent detaches c if it is a child of n.
func (n Directory) RemoveComponent(c Component) {
	if c.el.Parent() == n.el {
		n.el.RemoveChild(c.el)
	}
}

// Component is a view over a Component element.
type Component struct {
	doc *Document
	el  *etree.Element
}

func (c Component) ID() string     { return c.el.SelectAttrValue(AttrID, "") }
func (c Component) GUID() string   { return c.el.SelectAttrValue(AttrGUID, "") }
func (c Component) DiskID() string { return c.el.SelectAttrValue(AttrDiskID, "") }

// HasGUID reports whether the Guid attribute is present.
func (c Component) HasGUID() bool {
	return c.el.SelectAttr(AttrGUID) != nil
}

// Files returns the child File elements.
func (c Component) Files() []File {
	var out []File
	for _, el := range c.doc.children(c.el, TagFile) {
		out = append(out, File{el: el})
	}
	return out
}

// SingleFile returns the only File of the component. Components holding
// zero or several files report false.
func (c Component) SingleFile() (File, bool) {
	files := c.Files()
	if len(files) != 1 {
		return File{}, false
	}
	return files[0], true
}

// AddFile appends a child File.
func (c Component) AddFile(id, name, source string) File {
	el := c.el.CreateElement(c.doc.qualify(TagFile))
	el.CreateAttr(AttrID, id)
	el.CreateAttr(AttrName, name)
	el.CreateAttr(AttrSource, source)
	return File{el: el}
}

// File is a view over a File element.
type File struct {
	el *etree.Element
}

func (f File) ID() string     { return f.el.SelectAttrValue(AttrID, "") }
func (f File) Name() string   { return f.el.SelectAttrValue(AttrName, "") }
func (f File) Source() string { return f.el.SelectAttrValue(AttrSource, "") }

// Feature is a view over a Feature element.
type Feature struct {
	doc *Document
	el  *etree.Element
}

func (f Feature) ID() string { return f.el.SelectAttrValue(AttrID, "") }

// Clear removes every child node of the feature.
func (f Feature) Clear() {
	for _, token := range slices.Clone(f.el.Child) {
		f.el.RemoveChild(token)
	}
}

// AddComponentRef appends a ComponentRef to the feature.
func (f Feature) AddComponentRef(id string) {
	el := f.el.CreateElement(f.doc.qualify(TagComponentRef))
	el.CreateAttr(AttrID, id)
}

// ComponentRefs returns the Ids referenced by the feature in order.
func (f Feature) ComponentRefs() []string {
	var out []string
	for _, el := range f.doc.children(f.el, TagComponentRef) {
		out = append(out, el.SelectAttrValue(AttrID, ""))
	}
	return out
}

// Product is a view over the Product element.
type Product struct {
	el *etree.Element
}

func (p Product) ID() string { return p.el.SelectAttrValue(AttrID, "") }

// SetID overwrites the product Id.
func (p Product) SetID(id string) {
	p.el.CreateAttr(AttrID, id)
}
