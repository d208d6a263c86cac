package assets

import (
	"io/fs"
	"testing"
)

func TestMigrationsAreSortedAndReadable(t *testing.T) {
	files, err := Migrations()
	if err != nil {
		t.Fatalf("migrations: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("expected at least one migration")
	}
	for i, f := range files {
		if i > 0 && files[i-1] >= f {
			t.Fatalf("migrations out of order: %q before %q", files[i-1], f)
		}
		b, err := fs.ReadFile(FS, f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if len(b) == 0 {
			t.Fatalf("%s is empty", f)
		}
	}
}
