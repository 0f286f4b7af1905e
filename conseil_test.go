package brvmwatch

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAdviceType(t *testing.T) {
	tests := []struct {
		in      string
		want    AdviceType
		wantErr bool
	}{
		{in: "ACHAT", want: Buy},
		{in: "buy", want: Buy},
		{in: "VENTE", want: Sell},
		{in: "neutre", want: Neutral},
		{in: "HOLD", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseAdviceType(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseAdviceType(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseAdviceType(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestAdviceTypeWireFormat(t *testing.T) {
	b, err := json.Marshal(Sell)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"VENTE"` {
		t.Errorf("Marshal(Sell) = %s, want the French wire value", b)
	}
	var back AdviceType
	if err := json.Unmarshal([]byte(`"NEUTRE"`), &back); err != nil || back != Neutral {
		t.Errorf("Unmarshal(NEUTRE) = %v, %v", back, err)
	}
}

func TestNewConseilValidate(t *testing.T) {
	valid := NewConseil{
		Symbol: "SGBC",
		Type:   Buy,
		Entry:  decimal.RequireFromString("9500"),
		Target: decimal.RequireFromString("11000"),
		Stop:   decimal.RequireFromString("9000"),
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	noSymbol := valid
	noSymbol.Symbol = "  "
	if err := noSymbol.Validate(); err == nil {
		t.Error("a blank symbol should be rejected before reaching the network")
	}

	badPrice := valid
	badPrice.Stop = decimal.Zero
	if err := badPrice.Validate(); err == nil {
		t.Error("a non-positive price should be rejected")
	}
}

func TestParseSector(t *testing.T) {
	if got := ParseSector("fin"); got != SectorFinance {
		t.Errorf("ParseSector(fin) = %v, want finance", got)
	}
	// The mapping is total: unknown codes degrade to SectorUnknown instead
	// of leaking free-form strings into the display.
	if got := ParseSector("XXX"); got != SectorUnknown {
		t.Errorf("ParseSector(XXX) = %v, want unknown", got)
	}
	if got := SectorUnknown.Label(); got == "" {
		t.Error("even the unknown sector needs a display label")
	}
}
