package validation

import (
	"strings"
	"testing"
)

type dishInput struct {
	RestaurantID string `json:"restaurant_id" validate:"required,uuid"`
	Name         string `json:"name" validate:"required,max=120"`
	Rating       *int   `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Status       string `json:"status" validate:"omitempty,oneof=want_to_go been_there"`
	Color        string `json:"color" validate:"omitempty,hexcolor"`
}

func intPtr(v int) *int { return &v }

func TestValidateStruct(t *testing.T) {
	valid := dishInput{RestaurantID: "9b2f7c1e-3d4a-4b5c-8d9e-0f1a2b3c4d5e", Name: "Temaki", Rating: intPtr(5)}

	tests := []struct {
		name      string
		input     dishInput
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{name: "valid", input: valid},
		{name: "missing name", input: func() dishInput { d := valid; d.Name = ""; return d }(), wantField: "name", wantTag: "required", wantMsg: "name é obrigatório"},
		{name: "bad uuid", input: func() dishInput { d := valid; d.RestaurantID = "42"; return d }(), wantField: "restaurant_id", wantTag: "uuid"},
		{name: "rating too high", input: func() dishInput { d := valid; d.Rating = intPtr(6); return d }(), wantField: "rating", wantTag: "lte", wantMsg: "rating deve ser menor ou igual a 5"},
		{name: "rating zero", input: func() dishInput { d := valid; d.Rating = intPtr(0); return d }(), wantField: "rating", wantTag: "gte"},
		{name: "unknown status", input: func() dishInput { d := valid; d.Status = "all"; return d }(), wantField: "status", wantTag: "oneof"},
		{name: "bad color", input: func() dishInput { d := valid; d.Color = "red"; return d }(), wantField: "color", wantTag: "hexcolor"},
		{name: "long name", input: func() dishInput { d := valid; d.Name = strings.Repeat("a", 121); return d }(), wantField: "name", wantTag: "max", wantMsg: "name deve ter no máximo 120 caracteres"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(tt.input)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("unexpected validation error: %v", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("expected validation error")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors: %+v", len(errs), errs)
			}
			if errs[0].Field != tt.wantField || errs[0].Tag != tt.wantTag {
				t.Errorf("error = %+v, want field %s tag %s", errs[0], tt.wantField, tt.wantTag)
			}
			if tt.wantMsg != "" && errs[0].Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", errs[0].Message, tt.wantMsg)
			}
		})
	}
}

func TestRequestValidationErrorJoinsMessages(t *testing.T) {
	verr := ValidateStruct(dishInput{})
	if verr == nil {
		t.Fatal("expected errors for empty input")
	}
	if len(verr.Errors()) != 2 {
		t.Fatalf("errors = %+v", verr.Errors())
	}
	if got := verr.Error(); !strings.Contains(got, "restaurant_id é obrigatório") || !strings.Contains(got, "; ") {
		t.Errorf("Error() = %q", got)
	}
}

func TestGetValidatorSingleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator should return the same instance")
	}
}
