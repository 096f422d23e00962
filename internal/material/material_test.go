package material

import (
	"errors"
	"slices"
	"testing"
)

func TestCatalogEntriesValid(t *testing.T) {
	for _, key := range Keys() {
		spec, err := Lookup(key)
		if err != nil {
			t.Fatalf("lookup %q: %v", key, err)
		}
		if spec.Key != key {
			t.Fatalf("lookup %q returned spec for %q", key, spec.Key)
		}
		if err := spec.Validate(); err != nil {
			t.Fatalf("catalog entry invalid: %v", err)
		}
		if spec.TransitionLabel == "" {
			t.Fatalf("material %q has no transition label", key)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("plasma")
	if !errors.Is(err, ErrUnknownMaterial) {
		t.Fatalf("expected ErrUnknownMaterial, got %v", err)
	}
	if _, err := Lookup(""); !errors.Is(err, ErrUnknownMaterial) {
		t.Fatalf("empty key must not default, got %v", err)
	}
}

func TestKeysOrderAndNames(t *testing.T) {
	want := []Key{Ice, Wood, Metal}
	if !slices.Equal(Keys(), want) {
		t.Fatalf("Keys() = %v, want %v", Keys(), want)
	}
	if !slices.Equal(Names(), []string{"ice", "wood", "metal"}) {
		t.Fatalf("Names() = %v", Names())
	}
}

func TestMaterialsDistinct(t *testing.T) {
	ice, _ := Lookup(Ice)
	wood, _ := Lookup(Wood)
	metal, _ := Lookup(Metal)
	if ice.MeltPoint == wood.MeltPoint || wood.MeltPoint == metal.MeltPoint {
		t.Fatal("melt points must differ per material")
	}
	if ice.SpecificHeat == wood.SpecificHeat || wood.SpecificHeat == metal.SpecificHeat {
		t.Fatal("specific heats must differ per material")
	}
	if ice.Conductivity == wood.Conductivity || wood.Conductivity == metal.Conductivity {
		t.Fatal("conductivities must differ per material")
	}
	if wood.TransitionLabel != "Charred" || ice.TransitionLabel != "Melted" || metal.TransitionLabel != "Melted" {
		t.Fatalf("unexpected labels: ice=%q wood=%q metal=%q", ice.TransitionLabel, wood.TransitionLabel, metal.TransitionLabel)
	}
}

func TestValidateRejectsBadSpecs(t *testing.T) {
	base, _ := Lookup(Ice)

	bad := base
	bad.SpecificHeat = 0
	if bad.Validate() == nil {
		t.Fatal("zero specific heat must be rejected")
	}
	bad = base
	bad.Conductivity = -1
	if bad.Validate() == nil {
		t.Fatal("negative conductivity must be rejected")
	}
	bad = base
	bad.MaxProgress = 0
	if bad.Validate() == nil {
		t.Fatal("zero max progress must be rejected")
	}
	ok := base
	ok.Conductivity = 0
	if err := ok.Validate(); err != nil {
		t.Fatalf("zero conductivity is allowed: %v", err)
	}
}
