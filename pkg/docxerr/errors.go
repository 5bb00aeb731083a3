// Package docxerr provides the error types shared by the OPC package engine
// and the element framework.
//
// Every error belongs to one of three categories, each with a sentinel that
// errors.Is matches:
//
//   - ErrPackageNotFound: the package to open is missing or unreadable.
//   - ErrInvalidXML: a required attribute or child is absent, or a value
//     fails a simple-type format or range check.
//   - ErrInvalidArgument: a malformed pack URI, a relationship-type lookup
//     matching zero or several relationships, or an external relationship
//     treated as if it had a target part.
package docxerr

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, one per category.
var (
	ErrPackageNotFound = errors.New("package not found")
	ErrInvalidXML      = errors.New("invalid xml")
	ErrInvalidArgument = errors.New("invalid argument")
)

// PackageNotFoundError reports a package that could not be opened.
type PackageNotFoundError struct {
	Path  string
	Cause error
}

func (e *PackageNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("package not found at '%s': %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("package not found at '%s'", e.Path)
}

func (e *PackageNotFoundError) Unwrap() error { return e.Cause }

// Is reports whether target is ErrPackageNotFound.
func (e *PackageNotFoundError) Is(target error) bool { return target == ErrPackageNotFound }

// NewPackageNotFound creates a PackageNotFoundError.
func NewPackageNotFound(path string, cause error) error {
	return &PackageNotFoundError{Path: path, Cause: cause}
}

// InvalidXMLError reports document corruption: a missing required attribute
// or child, or a value rejected by a converter.
type InvalidXMLError struct {
	Tag     string
	Attr    string
	Value   string
	Message string
	Cause   error
}

func (e *InvalidXMLError) Error() string {
	var b strings.Builder
	b.WriteString("invalid xml")
	if e.Tag != "" {
		fmt.Fprintf(&b, " in <%s>", e.Tag)
	}
	if e.Attr != "" {
		fmt.Fprintf(&b, " attribute '%s'", e.Attr)
	}
	if e.Value != "" {
		fmt.Fprintf(&b, " value '%s'", e.Value)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *InvalidXMLError) Unwrap() error { return e.Cause }

// Is reports whether target is ErrInvalidXML.
func (e *InvalidXMLError) Is(target error) bool { return target == ErrInvalidXML }

// NewInvalidXML creates an InvalidXMLError with a formatted message.
func NewInvalidXML(format string, args ...interface{}) error {
	return &InvalidXMLError{Message: fmt.Sprintf(format, args...)}
}

// InvalidValue reports a value that failed a converter's format or range
// check.
func InvalidValue(typeName, value, reason string) error {
	return &InvalidXMLError{
		Value:   value,
		Message: fmt.Sprintf("not a valid %s: %s", typeName, reason),
	}
}

// MissingAttr reports a required attribute absent from an element.
func MissingAttr(tag, attr string) error {
	return &InvalidXMLError{Tag: tag, Attr: attr, Message: "required attribute not present"}
}

// MissingChild reports a required child absent from an element.
func MissingChild(tag, child string) error {
	return &InvalidXMLError{Tag: tag, Message: fmt.Sprintf("required <%s> child element not present", child)}
}

// WithTag returns err annotated with the element tag and attribute name when
// err is an InvalidXMLError that does not carry them yet.
func WithTag(err error, tag, attr string) error {
	var ix *InvalidXMLError
	if !errors.As(err, &ix) {
		return err
	}
	annotated := *ix
	if annotated.Tag == "" {
		annotated.Tag = tag
	}
	if annotated.Attr == "" {
		annotated.Attr = attr
	}
	return &annotated
}

// InvalidArgumentError reports a caller-supplied value the engine cannot
// act on.
type InvalidArgumentError struct {
	Arg     string
	Value   string
	Message string
}

func (e *InvalidArgumentError) Error() string {
	switch {
	case e.Arg != "" && e.Value != "":
		return fmt.Sprintf("invalid argument %s '%s': %s", e.Arg, e.Value, e.Message)
	case e.Arg != "":
		return fmt.Sprintf("invalid argument %s: %s", e.Arg, e.Message)
	default:
		return fmt.Sprintf("invalid argument: %s", e.Message)
	}
}

// Is reports whether target is ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// NewInvalidArgument creates an InvalidArgumentError.
func NewInvalidArgument(arg, value, message string) error {
	return &InvalidArgumentError{Arg: arg, Value: value, Message: message}
}

// IsPackageNotFound checks if an error is a package-not-found error
func IsPackageNotFound(err error) bool {
	return errors.Is(err, ErrPackageNotFound)
}

// IsInvalidXML checks if an error is an invalid-xml error
func IsInvalidXML(err error) bool {
	return errors.Is(err, ErrInvalidXML)
}

// IsInvalidArgument checks if an error is an invalid-argument error
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
