package opc

// Namespaces of the package-level XML parts.
const (
	NamespaceRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"
	NamespaceContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"

	// NamespaceOfficeRelationships is the namespace of r:id and r:embed
	// style attributes that cite relationships from part XML.
	NamespaceOfficeRelationships = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// TargetModeExternal marks a relationship whose target lies outside the
// package.
const TargetModeExternal = "External"

// Content types.
const (
	CTBmp                   = "image/bmp"
	CTGif                   = "image/gif"
	CTJpeg                  = "image/jpeg"
	CTMsPhoto               = "image/vnd.ms-photo"
	CTPng                   = "image/png"
	CTTiff                  = "image/tiff"
	CTXEmf                  = "image/x-emf"
	CTXWmf                  = "image/x-wmf"
	CTXFontData             = "application/x-fontdata"
	CTXML                   = "application/xml"
	CTOpcCoreProperties     = "application/vnd.openxmlformats-package.core-properties+xml"
	CTOpcRelationships      = "application/vnd.openxmlformats-package.relationships+xml"
	CTOfcCustomProperties   = "application/vnd.openxmlformats-officedocument.custom-properties+xml"
	CTOfcExtendedProperties = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
	CTOfcTheme              = "application/vnd.openxmlformats-officedocument.theme+xml"
	CTSmlSheet              = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	CTPmlPrinterSettings    = "application/vnd.openxmlformats-officedocument.presentationml.printerSettings"
	CTSmlPrinterSettings    = "application/vnd.openxmlformats-officedocument.spreadsheetml.printerSettings"
	CTWmlPrinterSettings    = "application/vnd.openxmlformats-officedocument.wordprocessingml.printerSettings"

	CTWmlDocumentMain  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
	CTWmlTemplateMain  = "application/vnd.openxmlformats-officedocument.wordprocessingml.template.main+xml"
	CTWmlDocumentMacro = "application/vnd.ms-word.document.macroEnabled.main+xml"
	CTWmlTemplateMacro = "application/vnd.ms-word.template.macroEnabledTemplate.main+xml"
	CTWmlStyles        = "application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"
	CTWmlHeader        = "application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml"
	CTWmlFooter        = "application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"
	CTWmlSettings      = "application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"
	CTWmlNumbering     = "application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"
	CTWmlFontTable     = "application/vnd.openxmlformats-officedocument.wordprocessingml.fontTable+xml"
	CTWmlWebSettings   = "application/vnd.openxmlformats-officedocument.wordprocessingml.webSettings+xml"
	CTWmlFootnotes     = "application/vnd.openxmlformats-officedocument.wordprocessingml.footnotes+xml"
	CTWmlEndnotes      = "application/vnd.openxmlformats-officedocument.wordprocessingml.endnotes+xml"
	CTWmlComments      = "application/vnd.openxmlformats-officedocument.wordprocessingml.comments+xml"
)

// Relationship types.
const (
	RTOfficeDocument     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	RTCoreProperties     = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	RTExtendedProperties = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	RTCustomProperties   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/custom-properties"
	RTThumbnail          = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/thumbnail"
	RTStyles             = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	RTSettings           = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/settings"
	RTNumbering          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering"
	RTFontTable          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/fontTable"
	RTWebSettings        = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/webSettings"
	RTTheme              = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	RTHeader             = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/header"
	RTFooter             = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer"
	RTFootnotes          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/footnotes"
	RTEndnotes           = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/endnotes"
	RTComments           = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/comments"
	RTImage              = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	RTHyperlink          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
)

// defaultContentTypes lists the (extension, content type) pairs written as
// Default entries of the manifest rather than per-part Overrides.
var defaultContentTypes = []struct{ ext, contentType string }{
	{"bin", CTPmlPrinterSettings},
	{"bin", CTSmlPrinterSettings},
	{"bin", CTWmlPrinterSettings},
	{"bmp", CTBmp},
	{"emf", CTXEmf},
	{"fntdata", CTXFontData},
	{"gif", CTGif},
	{"jpe", CTJpeg},
	{"jpeg", CTJpeg},
	{"jpg", CTJpeg},
	{"png", CTPng},
	{"rels", CTOpcRelationships},
	{"tif", CTTiff},
	{"tiff", CTTiff},
	{"wdp", CTMsPhoto},
	{"wmf", CTXWmf},
	{"xlsx", CTSmlSheet},
	{"xml", CTXML},
}

func isDefaultContentType(ext, contentType string) bool {
	for _, d := range defaultContentTypes {
		if d.ext == ext && d.contentType == contentType {
			return true
		}
	}
	return false
}

// ImageContentType returns the content type for an image file extension,
// "" when the extension is not a known image format.
func ImageContentType(ext string) string {
	switch ext {
	case "bmp":
		return CTBmp
	case "gif":
		return CTGif
	case "jpe", "jpeg", "jpg":
		return CTJpeg
	case "png":
		return CTPng
	case "tif", "tiff":
		return CTTiff
	case "emf":
		return CTXEmf
	case "wmf":
		return CTXWmf
	case "wdp":
		return CTMsPhoto
	}
	return ""
}
