package chip

import (
	"errors"
	"testing"
)

func TestPartitionSize(t *testing.T) {
	tests := map[string]struct {
		variant Variant
		ctrl    int
		size    int
		ok      bool
	}{
		"SM750/0":       {SM750, 0, 8 << 20, true},
		"SM750/1":       {SM750, 1, 8 << 20, true},
		"SM750/2":       {SM750, 2, 0, false},
		"SM768/0":       {SM768, 0, 32 << 20, true},
		"SM768/1":       {SM768, 1, 32 << 20, true},
		"SM768/2":       {SM768, 2, 0, false},
		"SM768/-1":      {SM768, -1, 0, false},
		"unknown":       {variantLast, 0, 0, false},
		"unknownHigher": {Variant(42), 1, 0, false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			size, ok := PartitionSize(tc.variant, tc.ctrl)
			if size != tc.size || ok != tc.ok {
				t.Fatalf("expected (%d, %v), got (%d, %v)", tc.size, tc.ok, size, ok)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	for _, v := range []Variant{SM750, SM768} {
		c, err := Lookup(v)
		if err != nil {
			t.Fatal(err)
		}
		if c.Variant != v {
			t.Errorf("%v: got capability set of %v", v, c.Variant)
		}
		if c.Controllers > MaxControllers || c.Outputs > MaxOutputs {
			t.Errorf("%v: exceeds family limits", v)
		}
		if c.Outputs < c.Controllers {
			t.Errorf("%v: fewer outputs than controllers", v)
		}
		if c.MaxPitch < 16*KiB-1 {
			t.Errorf("%v: max pitch %#x", v, c.MaxPitch)
		}
	}

	if _, err := Lookup(variantLast); !errors.Is(err, ErrUnknownTopology) {
		t.Fatalf("expected ErrUnknownTopology, got %v", err)
	}
}

func TestSharedPath(t *testing.T) {
	tests := map[string]struct {
		variant Variant
		active  ConnectorMask
		ctrl    int
		err     error
	}{
		"HDMI":       {SM768, HDMI, 0, nil},
		"DVI+HDMI":   {SM768, DVI | HDMI, 1, nil},
		"VGA+HDMI":   {SM768, VGA | HDMI, 0, nil},
		"All":        {SM768, AllConnectors, 1, nil},
		"NoHDMI":     {SM768, DVI | VGA, 0, ErrUnknownTopology},
		"None":       {SM768, 0, 0, ErrUnknownTopology},
		"SM750":      {SM750, HDMI, 0, ErrUnknownTopology},
		"badVariant": {variantLast, HDMI, 0, ErrUnknownTopology},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			ctrl, err := SharedPath(tc.variant, tc.active)
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
			if err == nil && ctrl != tc.ctrl {
				t.Fatalf("expected controller %d, got %d", tc.ctrl, ctrl)
			}
		})
	}
}

func TestSharedPathControllersValid(t *testing.T) {
	for v := SM750; v < variantLast; v++ {
		c, _ := Lookup(v)
		for m := ConnectorMask(0); m <= AllConnectors; m++ {
			ctrl, err := c.SharedPath(m)
			if err == nil && !c.ValidController(ctrl) {
				t.Errorf("%v %v: invalid controller %d", v, m, ctrl)
			}
		}
	}
}

func TestConnectorMaskString(t *testing.T) {
	tests := map[ConnectorMask]string{
		0:             "none",
		DVI:           "DVI",
		VGA | HDMI:    "VGA|HDMI",
		AllConnectors: "DVI|VGA|HDMI",
		HDMI | 0x10:   "HDMI|0x10",
	}
	for m, expected := range tests {
		if got := m.String(); got != expected {
			t.Errorf("%d: expected %q, got %q", uint8(m), expected, got)
		}
	}
}

func TestParseVariant(t *testing.T) {
	tests := map[string]struct {
		expected Variant
		err      error
	}{
		"SM750": {SM750, nil},
		"sm768": {SM768, nil},
		"SM712": {0, ErrUnknownTopology},
		"":      {0, ErrUnknownTopology},
	}
	for s, tc := range tests {
		v, err := ParseVariant(s)
		if !errors.Is(err, tc.err) || v != tc.expected {
			t.Errorf("%q: expected (%v, %v), got (%v, %v)", s, tc.expected, tc.err, v, err)
		}
	}
}
