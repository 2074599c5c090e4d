// Command cdgrender exports a CDGMagic project file to a .cdg packet
// stream, optionally diffing the result against a reference file.
package main

import (
	"flag"
	"fmt"
	"os"

	"cdgmagic/internal/config"
	"cdgmagic/internal/exporter"
	"cdgmagic/internal/packet"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("cdgrender", flag.ContinueOnError)
	noTextClips := fs.Bool("no-text-clips", false, "exclude text clips (isolates transition behavior)")
	configPath := fs.String("config", "", "path to a TOML config file")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <input.cmp> <output.cdg> [reference.cdg]\n", fs.Name())
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}

	rest := fs.Args()
	if len(rest) < 2 {
		fs.Usage()
		return 1
	}
	inputPath, outputPath := rest[0], rest[1]
	var referencePath string
	if len(rest) >= 3 {
		referencePath = rest[2]
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		return 1
	}

	exp := exporter.New(cfg, nil)
	exp.ExcludeTextClips(*noTextClips)
	result, err := exp.ExportFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "export error: %v\n", err)
		return 1
	}

	for _, d := range result.Diagnostics {
		fmt.Fprintln(os.Stderr, d.Error())
	}

	if err := os.WriteFile(outputPath, result.Bytes, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "write error: %v\n", err)
		return 1
	}

	if referencePath == "" {
		return 0
	}

	reference, err := os.ReadFile(referencePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reference read error: %v\n", err)
		return 1
	}
	return compareAgainstReference(result.Bytes, reference)
}

func compareAgainstReference(got, want []byte) int {
	if len(got) != len(want) {
		fmt.Fprintf(os.Stderr, "length mismatch: got %d bytes, reference has %d\n", len(got), len(want))
		return 1
	}
	for i := 0; i < len(got); i += packet.Size {
		a := got[i : i+packet.Size]
		b := want[i : i+packet.Size]
		if string(a) != string(b) {
			fmt.Fprintf(os.Stderr, "mismatch at packet %d (byte offset %d)\n", i/packet.Size, i)
			return 1
		}
	}
	fmt.Println("match")
	return 0
}
