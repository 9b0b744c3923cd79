package types

import "github.com/Kingleseu/GestionStocke/pkg/enums"

// CustomizationSnapshot is the immutable copy of a customization draft taken
// when a line item enters the cart. Later edits to the live draft never flow
// back into it. Stored as a JSON column on mirrored cart rows.
type CustomizationSnapshot struct {
	Engraving     string            `json:"engraving"`
	Message       string            `json:"message"`
	Material      string            `json:"material"`
	Size          enums.ProductSize `json:"size"`
	UploadedImage string            `json:"uploaded_image,omitempty"`
}
