package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/vincera/internal/share"
	"github.com/claude/vincera/internal/storage"
	"github.com/claude/vincera/internal/store"
)

// vincera-share exports a split from a data directory to a .vincera file, or
// imports one into it. Run against the same data_dir the server uses, while
// the server is stopped.
func main() {
	dataDir := flag.String("data", "", "path to the Vincera data directory (required)")
	exportID := flag.String("export", "", "split id to export")
	importPath := flag.String("import", "", "path to a .vincera file to import")
	outDir := flag.String("out", ".", "directory to write exported files to")
	compact := flag.Bool("compact", false, "print the compact string instead of writing a file")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *dataDir == "" || (*exportID == "" && *importPath == "") {
		fmt.Fprintf(os.Stderr, "Usage: vincera-share -data /path/to/data (-export SPLIT_ID [-out DIR] [-compact] | -import file.vincera)\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	rs, err := storage.New(*dataDir)
	if err != nil {
		log.Error("failed to open record store", "error", err)
		os.Exit(1)
	}
	splits := store.NewSplitStore(rs)

	switch {
	case *exportID != "":
		split, ok := splits.Get(*exportID)
		if !ok {
			log.Error("split not found", "id", *exportID)
			os.Exit(1)
		}
		if *compact {
			fmt.Println(share.CompressSplit(split))
			return
		}
		path, err := share.ExportFile(split, *outDir)
		if err != nil {
			log.Error("export failed", "error", err)
			os.Exit(1)
		}
		log.Info("split exported", "id", split.ID, "file", path)

	case *importPath != "":
		split, err := share.ImportFile(*importPath)
		if err != nil {
			log.Error("import failed", "error", err)
			os.Exit(1)
		}
		if err := splits.Create(split); err != nil {
			log.Error("saving imported split failed", "error", err)
			os.Exit(1)
		}
		out, _ := json.Marshal(split)
		log.Info("split imported", "id", split.ID, "name", split.Name)
		fmt.Println(string(out))
	}
}
