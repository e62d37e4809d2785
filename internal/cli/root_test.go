package cli

import "testing"

func TestGenerateCommandFlags(t *testing.T) {
	cmd := newGenerateCommand()

	for flag, def := range map[string]string{
		"config": "oneof.yml",
		"output": "-",
		"format": "json",
	} {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			t.Errorf("missing flag --%s", flag)
			continue
		}
		if f.DefValue != def {
			t.Errorf("--%s default = %q, want %q", flag, f.DefValue, def)
		}
	}
}

func TestGenerateCommandRunsEndToEnd(t *testing.T) {
	cmd := newGenerateCommand()
	cmd.SetArgs([]string{"--config", "testdata/shapes.yml", "--output", t.TempDir() + "/out.json"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
}
