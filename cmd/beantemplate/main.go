// Command beantemplate creates the DOCX report template bean renders into.
// Run it once before the first /save.
package main

import (
	"flag"
	"fmt"
	"os"

	"bean/internal/render"
)

func main() {
	path := flag.String("out", render.DefaultTemplatePath, "where to write the template")
	flag.Parse()

	if err := render.WriteTemplate(*path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Template saved to %s\n", *path)
}
