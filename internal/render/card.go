package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/Kingleseu/GestionStocke/internal/catalog"
	"github.com/Kingleseu/GestionStocke/internal/customization"
	"github.com/Kingleseu/GestionStocke/pkg/enums"
)

// One template produces both the collapsed card and the expanded card with
// its customization form, switched by the Expanded flag. Keeping a single
// source prevents the two views from diverging in structure.
const cardTemplate = `<div class="product-card{{if .Expanded}} expanded{{end}}" data-product-id="{{.Product.ID}}">
  <div class="product-image">
    <img src="{{.Product.ImageURL}}" alt="{{.Product.Name}}">
    {{- if .Product.Badge}}
    <div class="product-badge badge-{{.BadgeClass}}">{{.Product.Badge}}</div>
    {{- end}}
    {{- if .LowStock}}
    <div class="stock-badge">Plus que {{.Product.Stock}} en stock</div>
    {{- end}}
  </div>
  <div class="product-info">
    <h3>{{.Product.Name}}</h3>
    <p class="product-meta">{{.Product.Material}} &bull; {{.Product.Category}}</p>
    <div class="product-footer">
      <p class="product-price">&euro;{{.Price}}</p>
      {{- if .Product.Customizable}}
      <span class="customizable-badge">Personnalisable</span>
      {{- end}}
    </div>
    {{- if not .Expanded}}
    <button class="product-btn" data-action="toggle">{{if .Product.Customizable}}Personnaliser{{else}}Ajouter au panier{{end}}</button>
    {{- end}}
  </div>
  {{- if .Expanded}}
  <div class="customization-form">
    <div class="form-header">
      <h4>Personnalisation</h4>
      <button class="close-form-btn" data-action="close"></button>
    </div>
    {{- if .Product.Customizable}}
    <div class="form-field">
      <label>Gravure personnalis&eacute;e</label>
      <input type="text" name="engraving" value="{{.Draft.Engraving}}" placeholder="Ex: Initiales, date..." maxlength="30">
    </div>
    <div class="form-field">
      <label>Message (Optionnel)</label>
      <textarea name="message" rows="2" placeholder="Un petit mot doux...">{{.Draft.Message}}</textarea>
    </div>
    <div class="form-field">
      <label>Mati&egrave;re</label>
      <div class="material-selector">
        {{- range .Materials}}
        <button class="material-btn{{if eq . $.Draft.Material}} active{{end}}" data-material="{{.}}">{{.}}</button>
        {{- end}}
      </div>
    </div>
    <div class="form-field">
      <label>Taille</label>
      <select name="size">
        <option value="">S&eacute;lectionner une taille</option>
        {{- range .Sizes}}
        <option value="{{.}}"{{if eq . $.Draft.Size}} selected{{end}}>{{.}}</option>
        {{- end}}
      </select>
    </div>
    {{- end}}
    <div class="form-field">
      <label>Quantit&eacute;</label>
      <div class="quantity-controls">
        <button class="qty-btn" data-delta="-1">&minus;</button>
        <input type="number" class="qty-input" value="{{.Draft.Quantity}}" min="1" max="{{.Product.Stock}}" readonly>
        <button class="qty-btn" data-delta="1">+</button>
      </div>
    </div>
    <button class="add-to-cart-btn{{if not .Complete}} disabled{{end}}" data-action="add"{{if not .Complete}} disabled{{end}}>
      Ajouter au panier &bull; &euro;{{.LineTotal}}
    </button>
  </div>
  {{- end}}
</div>`

var defaultMaterials = []string{"Or", "Argent", "Or rose"}

var card = template.Must(template.New("card").Parse(cardTemplate))

type cardData struct {
	Product    catalog.Product
	Draft      customization.Draft
	Expanded   bool
	Complete   bool
	LowStock   bool
	BadgeClass string
	Price      string
	LineTotal  string
	Materials  []string
	Sizes      []enums.ProductSize
}

// CardMarkup renders the canonical card markup for a product. Collapsed and
// expanded views come from the same template, parameterized by expanded.
func CardMarkup(product catalog.Product, draft customization.Draft, expanded bool) (string, error) {
	if draft.Quantity < 1 {
		draft.Quantity = 1
	}

	sizes := product.Sizes
	if len(sizes) == 0 {
		sizes = []enums.ProductSize{enums.ProductSizeS, enums.ProductSizeM, enums.ProductSizeL, enums.ProductSizeXL}
	}

	data := cardData{
		Product:    product,
		Draft:      draft,
		Expanded:   expanded,
		Complete:   !product.Customizable || draft.Size != enums.ProductSizeUnset,
		LowStock:   product.Stock < catalog.LowStockThreshold,
		BadgeClass: strings.ToLower(product.Badge),
		Price:      formatPrice(product.Price),
		LineTotal:  formatPrice(product.Price * float64(draft.Quantity)),
		Materials:  defaultMaterials,
		Sizes:      sizes,
	}

	var out strings.Builder
	if err := card.Execute(&out, data); err != nil {
		return "", fmt.Errorf("rendering product card: %w", err)
	}
	return out.String(), nil
}

func formatPrice(value float64) string {
	s := fmt.Sprintf("%.2f", value)
	return strings.TrimSuffix(s, ".00")
}
