// enumgen generates enum type packages from a YAML manifest.
// Run: go run ./cmd/enumgen -manifest enums.yaml -out ./shop
package main

import (
	"context"
	"flag"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/rossjcooper/laravel-enum/gen"
)

func main() {
	var (
		manifest = flag.String("manifest", "enums.yaml", "path to the enum manifest")
		out      = flag.String("out", ".", "output directory for generated files")
		watch    = flag.Bool("watch", false, "regenerate whenever the manifest changes")
	)
	flag.Parse()

	ctx := context.Background()
	if err := run(ctx, *manifest, *out); err != nil {
		log.Fatalf("enumgen: %v", err)
	}
	if !*watch {
		return
	}
	if err := watchManifest(ctx, *manifest, *out); err != nil {
		log.Fatalf("enumgen: watch: %v", err)
	}
}

// run loads the manifest and generates all enum files.
func run(ctx context.Context, manifest, out string) error {
	m, err := gen.LoadManifest(manifest)
	if err != nil {
		return err
	}
	if err := gen.Generate(ctx, m, out); err != nil {
		return err
	}
	log.Printf("generated %d enums in %s", len(m.Enums), out)
	return nil
}

// watchManifest regenerates on every write to the manifest. The watch is on
// the parent directory because editors typically replace the file, which
// drops a watch registered on the path itself.
func watchManifest(ctx context.Context, manifest, out string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	abs, err := filepath.Abs(manifest)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	log.Printf("watching %s", abs)
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Name != abs || !ev.Op.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if err := run(ctx, manifest, out); err != nil {
				log.Printf("regenerate: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		}
	}
}
