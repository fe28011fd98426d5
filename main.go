package main

import (
	"fmt"
	"io"
	"os"
	"pngdims/pngheader"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

const imagePath = "assets/images/characters/hf_shirou_spritesheet_final_v2_1767279221195.png"

// newProgress draws on stderr so stdout only ever carries the result line.
func newProgress() *progressbar.ProgressBar {
	return progressbar.NewOptions64(
		pngheader.PrefixLength,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetVisibility(term.IsTerminal(int(os.Stderr.Fd()))),
		progressbar.OptionSetDescription("reading png header"),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
	)
}

func run(w io.Writer, path string, reader *pngheader.Reader) error {
	if _, err := os.Stat(path); err != nil {
		_, err = fmt.Fprintln(w, "File not found")
		return err
	}

	dims, err := reader.Read(path)
	if err != nil {
		return fmt.Errorf("failed to read image dimensions: %w", err)
	}

	_, err = fmt.Fprintf(w, "Dimensions: %s\n", dims)
	return err
}

func main() {
	progress := newProgress()
	err := run(os.Stdout, imagePath, &pngheader.Reader{Progress: progress})
	_ = progress.Finish()

	if err != nil {
		panic(err)
	}
}
