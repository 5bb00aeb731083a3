package opc

import "github.com/sirupsen/logrus"

// PartConstructor builds a part from its serialized form.
type PartConstructor func(partname PackURI, contentType string, blob []byte, pkg *Package) (Part, error)

// PartSelector picks a constructor from the content type and the type of
// the relationship the part was reached by. It returns nil to pass.
type PartSelector func(contentType, relType string) PartConstructor

// PartFactory maps parts being loaded to their concrete types. Selectors
// are consulted first, in registration order, then constructors keyed by
// content type, then the default.
type PartFactory struct {
	selectors   []PartSelector
	byType      map[string]PartConstructor
	defaultCtor PartConstructor
}

// NewPartFactory returns a factory that loads core properties as
// CorePropertiesPart and everything else as BasePart.
func NewPartFactory() *PartFactory {
	f := &PartFactory{
		byType:      make(map[string]PartConstructor),
		defaultCtor: LoadBasePart,
	}
	f.Register(CTOpcCoreProperties, LoadCorePropertiesPart)
	return f
}

// Register binds contentType to ctor, replacing any earlier binding.
func (f *PartFactory) Register(contentType string, ctor PartConstructor) {
	f.byType[contentType] = ctor
}

// RegisterSelector adds sel ahead of the content type table.
func (f *PartFactory) RegisterSelector(sel PartSelector) {
	f.selectors = append(f.selectors, sel)
}

// SetDefault replaces the constructor used when nothing else matches.
func (f *PartFactory) SetDefault(ctor PartConstructor) {
	f.defaultCtor = ctor
}

// New builds the part for partname.
func (f *PartFactory) New(partname PackURI, contentType, relType string, blob []byte, pkg *Package) (Part, error) {
	return f.constructor(contentType, relType, pkg.Logger())(partname, contentType, blob, pkg)
}

func (f *PartFactory) constructor(contentType, relType string, logger *logrus.Logger) PartConstructor {
	for _, sel := range f.selectors {
		if ctor := sel(contentType, relType); ctor != nil {
			return ctor
		}
	}
	if ctor, ok := f.byType[contentType]; ok {
		return ctor
	}
	logger.WithFields(Fields{
		"content_type": contentType,
		"reltype":      relType,
	}).Debug("no registered part type, using default")
	return f.defaultCtor
}
