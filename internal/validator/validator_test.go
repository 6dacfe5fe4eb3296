package validator

import (
	"errors"
	"testing"

	"github.com/pauljones0/farmassist-api/internal/models"
)

func TestValidator_ValidateStruct(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		value   any
		wantErr bool
		field   string
	}{
		{
			name:  "Valid Crop Query",
			value: models.CropQuery{Crop: "Wheat"},
		},
		{
			name:    "Missing Crop",
			value:   models.CropQuery{},
			wantErr: true,
			field:   "crop",
		},
		{
			name:  "Valid Scheme",
			value: models.Scheme{Name: "PM-KISAN"},
		},
		{
			name:    "Scheme Without Name",
			value:   models.Scheme{Description: "Income support"},
			wantErr: true,
			field:   "scheme_name",
		},
		{
			name:    "Price Without Location",
			value:   models.PriceRecord{Crop: "Wheat", MinPrice: "1"},
			wantErr: true,
			field:   "location",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			field, ok := MissingField(err)
			if !ok || field != tt.field {
				t.Errorf("MissingField() = %q, %v, want %q", field, ok, tt.field)
			}
		})
	}
}

func TestMissingField_OtherErrors(t *testing.T) {
	if _, ok := MissingField(errors.New("boom")); ok {
		t.Error("MissingField() should not match unrelated errors")
	}
}
