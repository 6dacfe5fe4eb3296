package models

// PriceRecord is one market row. Prices stay as the display text of the
// source page; nothing does arithmetic on them.
type PriceRecord struct {
	Location   string `json:"location" validate:"required"`
	Crop       string `json:"crop" validate:"required"`
	MinPrice   string `json:"min_price"`
	ModalPrice string `json:"modal_price"`
	MaxPrice   string `json:"max_price"`
}

// CropQuery is the body of a market price lookup.
type CropQuery struct {
	Crop string `json:"crop" validate:"required"`
}
