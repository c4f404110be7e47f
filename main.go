package main

import (
	"fmt"
	"io"
	"os"
)

const outputDir = "extension/icons"

var iconSizes = []int{16, 48, 128}

func iconName(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

// generate renders and saves one icon per size. The first failure stops the run.
func generate(store IconStore, sizes []int, out io.Writer) error {
	for _, size := range sizes {
		img, err := RenderIcon(size)
		if err != nil {
			return err
		}
		logger.Debug().Int("size", size).Msg("rendered icon")

		name := iconName(size)
		if err := store.Save(name, img); err != nil {
			return err
		}
		fmt.Fprintf(out, "Created %s\n", name)
	}
	fmt.Fprintln(out, "All icons created successfully!")
	return nil
}

func main() {
	if err := generate(DirStore{Dir: outputDir}, iconSizes, os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("icon generation failed")
	}
}
