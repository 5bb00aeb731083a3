package opc

import (
	"io"
)

// writePackage stores the manifest, the package relationships and every
// part with its non-empty relationships.
func writePackage(w io.Writer, pkgRels *Relationships, parts []Part, method uint16) error {
	zw := newZipPhysWriter(w, method)

	manifest, err := contentTypesFromParts(parts).xml()
	if err != nil {
		return err
	}
	if err := zw.write(ContentTypesURI, manifest); err != nil {
		return err
	}

	relsBlob, err := pkgRels.XML()
	if err != nil {
		return err
	}
	if err := zw.write(PackageURI.RelsURI(), relsBlob); err != nil {
		return err
	}

	for _, part := range parts {
		blob, err := part.Blob()
		if err != nil {
			return wrapPartError(part.Partname(), err)
		}
		if err := zw.write(part.Partname(), blob); err != nil {
			return err
		}
		if part.Rels().Len() == 0 {
			continue
		}
		relsBlob, err := part.Rels().XML()
		if err != nil {
			return wrapPartError(part.Partname(), err)
		}
		if err := zw.write(part.Partname().RelsURI(), relsBlob); err != nil {
			return err
		}
	}

	return zw.Close()
}
