package pmove

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMoveVarsAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movevars.toml")
	dat := []byte("gravity = 600.0\nmax_speed = 270.0\n")
	if err := os.WriteFile(path, dat, 0644); err != nil {
		t.Fatal(err)
	}

	vars, err := LoadMoveVars(path)
	if err != nil {
		t.Fatal(err)
	}

	if vars.Gravity != 600 || vars.MaxSpeed != 270 {
		t.Fatalf("expected overridden gravity/max_speed, got %v/%v", vars.Gravity, vars.MaxSpeed)
	}
	def := DefaultMoveVars()
	if vars.AirSpeedCap != def.AirSpeedCap || vars.JumpSpeed != def.JumpSpeed {
		t.Fatalf("expected untouched fields to keep defaults, got %+v", vars)
	}
}

func TestLoadMoveVarsRejectsDegenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movevars.toml")
	if err := os.WriteFile(path, []byte("max_speed = 0.0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadMoveVars(path); err == nil {
		t.Fatal("expected validation error for zero max_speed")
	}
}

func TestLoadMoveVarsMissingFile(t *testing.T) {
	if _, err := LoadMoveVars(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestMoveVarsSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movevars.toml")

	want := DefaultMoveVars()
	want.Friction = 5.2
	want.StepSize = 16
	if err := want.Save(path); err != nil {
		t.Fatal(err)
	}

	got, err := LoadMoveVars(path)
	if err != nil {
		t.Fatal(err)
	}
	if *got != *want {
		t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", want, got)
	}
}
