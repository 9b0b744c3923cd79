package customization

import (
	"fmt"

	pkgerrors "github.com/Kingleseu/GestionStocke/pkg/errors"
)

// Field names a single editable slot of a customization draft.
type Field string

const (
	FieldEngraving     Field = "engraving"
	FieldMessage       Field = "message"
	FieldMaterial      Field = "material"
	FieldSize          Field = "size"
	FieldUploadedImage Field = "uploadedImage"
)

func (f Field) String() string {
	return string(f)
}

func (f Field) IsValid() bool {
	switch f {
	case FieldEngraving, FieldMessage, FieldMaterial, FieldSize, FieldUploadedImage:
		return true
	}
	return false
}

// ParseField converts a raw string into a Field.
func ParseField(raw string) (Field, error) {
	f := Field(raw)
	if !f.IsValid() {
		return "", pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown customization field %q", raw))
	}
	return f, nil
}
