package featureflags

import (
	"errors"
	"reflect"
	"testing"
)

func resetRegistry() {
	flagRegistry = make(map[string]*FeatureFlag)
}

func TestFlagDefaults(t *testing.T) {
	resetRegistry()
	on := new("OnByDefault", true)
	off := new("OffByDefault", false)
	if !on.Enabled() {
		t.Error("OnByDefault: Enabled() = false, want true")
	}
	if off.Enabled() {
		t.Error("OffByDefault: Enabled() = true, want false")
	}
}

func TestUpdateEnable(t *testing.T) {
	resetRegistry()
	ff := new("TestFlag", false)
	if err := Update("TestFlag"); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if !ff.Enabled() {
		t.Error("Enabled() = false, want true")
	}
}

func TestUpdateDisable(t *testing.T) {
	resetRegistry()
	ff := new("TestFlag", true)
	if err := Update("-TestFlag"); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if ff.Enabled() {
		t.Error("Enabled() = true, want false")
	}
}

func TestUpdateMultipleFlags(t *testing.T) {
	resetRegistry()
	new("Flag1", false)
	new("Flag2", true)
	new("Flag3", false)
	if err := Update("Flag1,-Flag2,Flag3"); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	want := map[string]bool{"Flag1": true, "Flag2": false, "Flag3": true}
	if got := State(); !reflect.DeepEqual(want, got) {
		t.Errorf("State() = %v, want %v", got, want)
	}
}

func TestUpdateEmptyStringIsNoop(t *testing.T) {
	resetRegistry()
	new("Flag1", true)
	if err := Update(""); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if !State()["Flag1"] {
		t.Error("empty update changed flag state")
	}
}

func TestUpdateUndefinedFlag(t *testing.T) {
	resetRegistry()
	err := Update("NoSuchFlag")
	if !errors.Is(err, ErrUndefinedFlag) {
		t.Errorf("Update() error = %v, want ErrUndefinedFlag", err)
	}
}
